package shotcsv

import (
	"strings"
	"testing"

	"shotline/internal/domain/models"
)

func TestExportColumnOrder(t *testing.T) {
	shots := []models.Shot{
		{
			ID:          "a1",
			Code:        "DCP_01_beach_v003",
			Description: "rough comp",
			AssignedTo:  "jdoe",
			DueDate:     "2024-02-01",
			Status:      "In Progress",
			PlatePath:   "/plates/a",
			MovPath:     "/mov/a.mov",
			ExrPath:     "/exr/a",
		},
		{ID: "b2", Code: "solo", Version: "V009", Status: "Not Started"},
	}

	out, err := Export(shots)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d", len(lines))
	}
	if lines[0] != "id,code,reel,version,description,assigned_to,due_date,status,plate_path,mov_path,exr_path" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "a1,DCP_01_beach_v003,01,V003,rough comp,jdoe,2024-02-01,In Progress,/plates/a,/mov/a.mov,/exr/a" {
		t.Errorf("row 1 = %q", lines[1])
	}
	// No underscore in the code: blank reel, stored version shown.
	if lines[2] != "b2,solo,,V009,,,,Not Started,,," {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestExportReimportRoundTrip(t *testing.T) {
	shots := []models.Shot{
		{ID: "a1", Code: "DCP_01_beach_v003", Description: "rough comp",
			AssignedTo: "jdoe", DueDate: "2024-02-01", Status: "In Progress",
			PlatePath: "/p", MovPath: "/m", ExrPath: "/e"},
		{ID: "b2", Code: "DCP_02_cliff", Description: "roto", Status: "Final"},
	}

	out, err := Export(shots)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	records, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rows, errs := ExtractRows(records, InferMapping(records))
	if len(errs) != 0 {
		t.Fatalf("errs = %v", errs)
	}
	if len(rows) != len(shots) {
		t.Fatalf("rows = %d", len(rows))
	}

	for i, row := range rows {
		want := shots[i]
		if row.Code != want.Code || row.Description != want.Description ||
			row.AssignedTo != want.AssignedTo || row.Status != want.Status ||
			row.PlatePath != want.PlatePath || row.MovPath != want.MovPath ||
			row.ExrPath != want.ExrPath {
			t.Errorf("row %d = %+v, want fields of %+v", i, row, want)
		}
	}
}
