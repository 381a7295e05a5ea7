package cable

import (
	"fmt"

	"github.com/tinrooster/cabledb/internal/matrix"
	"github.com/tinrooster/cabledb/internal/models"
	"gorm.io/gorm"
)

// FillResult reports the outcome of a length fill pass.
type FillResult struct {
	Updated int
	Skipped []int // cable numbers whose racks could not be resolved
}

// FillLengths populates the Length of every cable record in the given
// cable-number range that has no length yet, looking up the origin and
// destination racks in the editable matrix. Records whose racks cannot be
// resolved are skipped and reported, never written as zero.
func FillLengths(db *gorm.DB, snap *matrix.Snapshot, startNumber, endNumber int) (FillResult, error) {
	var result FillResult
	var cables []models.Cable
	err := db.Where("number >= ? AND number <= ? AND length = 0", startNumber, endNumber).
		Order("number ASC").Find(&cables).Error
	if err != nil {
		return result, fmt.Errorf("cable: load range %d-%d: %w", startNumber, endNumber, err)
	}

	for _, c := range cables {
		origin, ok := NormalizeRack(c.Origin, snap)
		if !ok {
			result.Skipped = append(result.Skipped, c.Number)
			continue
		}
		dest, ok := NormalizeRack(c.Dest, snap)
		if !ok {
			result.Skipped = append(result.Skipped, c.Number)
			continue
		}
		length, ok := snap.Lookup(origin, dest)
		if !ok {
			result.Skipped = append(result.Skipped, c.Number)
			continue
		}
		if err := db.Model(&models.Cable{}).Where("id = ?", c.ID).Update("length", length).Error; err != nil {
			return result, fmt.Errorf("cable: update %d: %w", c.Number, err)
		}
		result.Updated++
	}
	return result, nil
}
