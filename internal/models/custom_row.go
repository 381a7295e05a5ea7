// Package models defines the GORM persistence models for cabledb.
package models

import "time"

// CustomRow persists one user-defined branch row. Seq preserves creation
// order, which determines the row's place on the backbone.
type CustomRow struct {
	ID                uint   `gorm:"primaryKey;autoIncrement"`
	Prefix            string `gorm:"size:8;uniqueIndex;not null"`
	StartNum          int    `gorm:"not null"`
	EndNum            int    `gorm:"not null"`
	EndpointReference string `gorm:"size:64"`
	EndpointMode      string `gorm:"size:16"`
	FixedOffset       int
	Seq               int `gorm:"index;not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
