package shotcsv

import (
	"shotline/internal/shotcode"
)

// Row is one accepted CSV data row, resolved to canonical fields.
// Line is the 1-based line number in the uploaded file.
type Row struct {
	Line        int
	Code        string
	Reel        string
	Description string
	AssignedTo  string
	StartDate   string
	DueDate     string
	Status      string
	PlatePath   string
	MovPath     string
	ExrPath     string
	Version     string
}

// RowError reports why a single row was not accepted.
type RowError struct {
	Line  int    `json:"line,omitempty"`
	Error string `json:"error"`
}

// ExtractRows resolves every data row of the file through the mapping.
// Malformed rows never abort the batch: each row either becomes one Row
// or one RowError. Rows with no code are rejected; empty status gets
// the default; empty version is derived from the code.
func ExtractRows(records [][]string, m *Mapping) ([]Row, []RowError) {
	rows := []Row{}
	errs := []RowError{}

	start := 0
	if m.HasHeaders {
		start = 1
	}

	for i := start; i < len(records); i++ {
		record := records[i]
		line := i + 1
		if rowEmpty(record) {
			continue
		}

		fields := m.Resolve(record)
		if fields[FieldCode] == "" {
			errs = append(errs, RowError{Line: line, Error: "missing code"})
			continue
		}

		row := Row{
			Line:        line,
			Code:        fields[FieldCode],
			Reel:        fields[FieldReel],
			Description: fields[FieldDescription],
			AssignedTo:  fields[FieldAssignedTo],
			StartDate:   fields[FieldStartDate],
			DueDate:     fields[FieldDueDate],
			Status:      fields[FieldStatus],
			PlatePath:   fields[FieldPlatePath],
			MovPath:     fields[FieldMovPath],
			ExrPath:     fields[FieldExrPath],
			Version:     fields[FieldVersion],
		}
		if row.Status == "" {
			row.Status = DefaultStatus
		}
		if row.Version == "" {
			row.Version = shotcode.ExtractVersion(row.Code, "")
		}
		rows = append(rows, row)
	}

	return rows, errs
}
