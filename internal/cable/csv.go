package cable

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tinrooster/cabledb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// csvHeader is the canonical column order for cable record interchange,
// matching the facility cable list spreadsheet.
var csvHeader = []string{"NUMBER", "DWG", "ORIGIN", "DEST", "ALT DWG", "WIRE TYPE", "LENGTH", "NOTE", "PROJECT ID"}

// ImportCSV reads cable records and upserts them by cable number. Returns
// the number of records imported.
func ImportCSV(db *gorm.DB, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("cable: read csv header: %w", err)
	}
	for i, want := range csvHeader {
		if header[i] != want {
			return 0, fmt.Errorf("cable: csv column %d is %q, want %q", i, header[i], want)
		}
	}

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("cable: read csv: %w", err)
		}
		number, err := strconv.Atoi(record[0])
		if err != nil {
			return count, fmt.Errorf("cable: bad cable number %q: %w", record[0], err)
		}
		// Blank or non-numeric length means not yet measured.
		length, _ := strconv.Atoi(record[6])

		c := models.Cable{
			Number:     number,
			Drawing:    record[1],
			Origin:     record[2],
			Dest:       record[3],
			AltDrawing: record[4],
			WireType:   record[5],
			Length:     length,
			Note:       record[7],
			ProjectID:  record[8],
		}
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "number"}},
			DoUpdates: clause.AssignmentColumns([]string{"drawing", "origin", "dest", "alt_drawing", "wire_type", "length", "note", "project_id"}),
		}).Create(&c)
		if result.Error != nil {
			return count, fmt.Errorf("cable: import %d: %w", number, result.Error)
		}
		count++
	}
	return count, nil
}

// ExportCSV writes all cable records in number order.
func ExportCSV(db *gorm.DB, w io.Writer) error {
	var cables []models.Cable
	if err := db.Order("number ASC").Find(&cables).Error; err != nil {
		return fmt.Errorf("cable: load records: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("cable: write csv header: %w", err)
	}
	for _, c := range cables {
		length := ""
		if c.Length != 0 {
			length = strconv.Itoa(c.Length)
		}
		row := []string{
			strconv.Itoa(c.Number), c.Drawing, c.Origin, c.Dest,
			c.AltDrawing, c.WireType, length, c.Note, c.ProjectID,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("cable: write record %d: %w", c.Number, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("cable: flush csv: %w", err)
	}
	return nil
}
