package matrix

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the matrix with a leading header row and a leading
// position column, the layout the facility spreadsheet uses.
func (s *Snapshot) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	header := make([]string, 0, len(s.Positions)+1)
	header = append(header, "")
	header = append(header, s.Positions...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("matrix: write csv header: %w", err)
	}

	row := make([]string, len(s.Positions)+1)
	for i, name := range s.Positions {
		row[0] = name
		for j, v := range s.Cells[i] {
			row[j+1] = strconv.Itoa(v)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("matrix: write csv row %s: %w", name, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("matrix: flush csv: %w", err)
	}
	return nil
}
