package models

import "time"

// Cable is one physical cable record from the facility cable database.
// Length is in cable length units; zero means not yet measured, and the
// fill pass may populate it from the distance matrix.
type Cable struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Number     int    `gorm:"uniqueIndex;not null"`
	Drawing    string `gorm:"size:64"`
	Origin     string `gorm:"size:64;index"`
	Dest       string `gorm:"size:64;index"`
	AltDrawing string `gorm:"size:64"`
	WireType   string `gorm:"size:64"`
	Length     int
	Note       string `gorm:"type:text"`
	ProjectID  string `gorm:"size:64;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
