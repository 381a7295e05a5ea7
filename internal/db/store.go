package db

import (
	"fmt"

	"github.com/tinrooster/cabledb/internal/matrix"
	"github.com/tinrooster/cabledb/internal/models"
	"github.com/tinrooster/cabledb/internal/topology"
	"gorm.io/gorm"
)

// LoadCustomRows returns the persisted custom rows in creation order.
func LoadCustomRows(db *gorm.DB) ([]topology.CustomRow, error) {
	var records []models.CustomRow
	if err := db.Order("seq ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("db: load custom rows: %w", err)
	}
	rows := make([]topology.CustomRow, len(records))
	for i, r := range records {
		rows[i] = topology.CustomRow{
			Prefix:            r.Prefix,
			StartNum:          r.StartNum,
			EndNum:            r.EndNum,
			EndpointReference: r.EndpointReference,
			EndpointMode:      topology.EndpointMode(r.EndpointMode),
			FixedOffset:       r.FixedOffset,
		}
	}
	return rows, nil
}

// ReplaceCustomRows overwrites the persisted custom-row set with the given
// ordered list in one transaction.
func ReplaceCustomRows(db *gorm.DB, rows []topology.CustomRow) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.CustomRow{}).Error; err != nil {
			return err
		}
		for i, row := range rows {
			record := models.CustomRow{
				Prefix:            row.Prefix,
				StartNum:          row.StartNum,
				EndNum:            row.EndNum,
				EndpointReference: row.EndpointReference,
				EndpointMode:      string(row.EndpointMode),
				FixedOffset:       row.FixedOffset,
				Seq:               i,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("db: replace custom rows: %w", err)
	}
	return nil
}

// LoadOverrides returns the persisted matrix overrides.
func LoadOverrides(db *gorm.DB) ([]matrix.Override, error) {
	var records []models.Override
	if err := db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("db: load overrides: %w", err)
	}
	out := make([]matrix.Override, len(records))
	for i, r := range records {
		out[i] = matrix.Override{Row: r.RowPos, Col: r.ColPos, Value: r.Value}
	}
	return out, nil
}

// ReplaceOverrides overwrites the persisted override set wholesale. Called
// with the session's current divergence after edits, and with an empty set
// after a topology change reseeds the editable matrix.
func ReplaceOverrides(db *gorm.DB, overrides []matrix.Override) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Override{}).Error; err != nil {
			return err
		}
		for _, o := range overrides {
			record := models.Override{RowPos: o.Row, ColPos: o.Col, Value: o.Value}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("db: replace overrides: %w", err)
	}
	return nil
}
