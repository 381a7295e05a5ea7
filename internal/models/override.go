package models

import "time"

// Override persists one editable matrix cell that diverges from the
// computed value. The pair (RowPos, ColPos) is directional: manual edits
// do not mirror. Last write wins.
type Override struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	RowPos    string `gorm:"size:8;uniqueIndex:idx_cell;not null"`
	ColPos    string `gorm:"size:8;uniqueIndex:idx_cell;not null"`
	Value     int    `gorm:"not null"`
	UpdatedAt time.Time
}
