package shotcsv

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"shotline/internal/domain/models"
	"shotline/internal/shotcode"
)

// exportColumns is the fixed export column order.
var exportColumns = []string{
	"id", "code", "reel", "version", "description", "assigned_to",
	"due_date", "status", "plate_path", "mov_path", "exr_path",
}

// Export renders shots as UTF-8 CSV in the fixed column order. Reel is
// the code's second underscore segment (blank when the code has none)
// and version is the derived label, so an export re-imported through
// the alias table reconstructs the same shots.
func Export(shots []models.Shot) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportColumns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for i := range shots {
		s := &shots[i]
		record := []string{
			s.ID,
			s.Code,
			shotcode.ReelSegment(s.Code),
			s.DisplayVersion(),
			s.Description,
			s.AssignedTo,
			s.DueDate,
			s.Status,
			s.PlatePath,
			s.MovPath,
			s.ExrPath,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
