package db

import (
	"fmt"

	"github.com/tinrooster/cabledb/internal/models"
	"gorm.io/gorm"
)

// AllModels returns the list of all GORM models for migration.
func AllModels() []interface{} {
	return []interface{}{
		&models.CustomRow{},
		&models.Override{},
		&models.Cable{},
	}
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}

// Reset drops and recreates all tables.
func Reset(db *gorm.DB) error {
	for _, m := range AllModels() {
		if err := db.Migrator().DropTable(m); err != nil {
			return fmt.Errorf("db: drop table for %T: %w", m, err)
		}
	}
	return AutoMigrate(db)
}
