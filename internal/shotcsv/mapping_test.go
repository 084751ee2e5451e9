package shotcsv

import (
	"testing"
)

func TestInferMappingHeadered(t *testing.T) {
	records := [][]string{
		{"Shot_Code", "Artist", "Due", "Status"},
		{"SH010", "jdoe", "2024-05-01", "In Progress"},
	}

	m := InferMapping(records)
	if !m.HasHeaders {
		t.Fatal("expected header row to be detected")
	}

	fields := m.Resolve(records[1])
	if fields[FieldCode] != "SH010" {
		t.Errorf("code = %q", fields[FieldCode])
	}
	if fields[FieldAssignedTo] != "jdoe" {
		t.Errorf("assigned_to = %q", fields[FieldAssignedTo])
	}
	if fields[FieldDueDate] != "2024-05-01" {
		t.Errorf("due_date = %q", fields[FieldDueDate])
	}
	if fields[FieldReel] != "" {
		t.Errorf("reel should be unresolved, got %q", fields[FieldReel])
	}
}

func TestInferMappingAliasPriority(t *testing.T) {
	// "code" outranks "shot" but an empty cell falls through to the
	// next matching alias.
	records := [][]string{
		{"code", "shot"},
		{"SH010", "SH_OLD"},
		{"", "SH020"},
	}

	m := InferMapping(records)
	if got := m.Resolve(records[1])[FieldCode]; got != "SH010" {
		t.Errorf("row 1 code = %q, want SH010", got)
	}
	if got := m.Resolve(records[2])[FieldCode]; got != "SH020" {
		t.Errorf("row 2 code = %q, want SH020", got)
	}
}

func TestInferMappingHeaderless(t *testing.T) {
	records := [][]string{
		{"SH010", "rough comp", "jdoe", "2024-01-01", "2024-02-01", "In Progress"},
		{"SH020", "final comp", "asmith", "2024-01-01", "2024-02-01", "Not Started"},
	}

	m := InferMapping(records)
	if m.HasHeaders {
		t.Fatal("unexpected header detection")
	}

	fields := m.Resolve(records[0])
	if fields[FieldCode] != "SH010" {
		t.Errorf("code = %q", fields[FieldCode])
	}
	if fields[FieldDescription] != "rough comp" {
		t.Errorf("description = %q", fields[FieldDescription])
	}
	if fields[FieldAssignedTo] != "jdoe" {
		t.Errorf("assigned_to = %q", fields[FieldAssignedTo])
	}
	if fields[FieldStatus] != "In Progress" {
		t.Errorf("status = %q", fields[FieldStatus])
	}
}

func TestInferMappingIndexAndReelColumns(t *testing.T) {
	// Leading numeric index column plus a zero-padded reel column:
	// both heuristics must fire and reel must not fold into the
	// description.
	records := [][]string{
		{"1", "SH010", "01", "rough comp", "jdoe", "2024-01-01", "2024-02-01"},
		{"2", "SH020", "01", "final comp", "asmith", "2024-01-01", "2024-02-01"},
		{"3", "SH030", "02", "paint fix", "jdoe", "2024-01-01", "2024-02-01"},
	}

	m := InferMapping(records)
	if m.HasHeaders {
		t.Fatal("unexpected header detection")
	}

	fields := m.Resolve(records[0])
	if fields[FieldCode] != "SH010" {
		t.Errorf("code = %q, want SH010", fields[FieldCode])
	}
	if fields[FieldReel] != "01" {
		t.Errorf("reel = %q, want 01", fields[FieldReel])
	}
	if fields[FieldDescription] != "rough comp" {
		t.Errorf("description = %q, want rough comp", fields[FieldDescription])
	}
	if fields[FieldAssignedTo] != "jdoe" {
		t.Errorf("assigned_to = %q, want jdoe", fields[FieldAssignedTo])
	}
}

func TestDetectIndexColumnTolerance(t *testing.T) {
	// One non-numeric first cell out of four still counts as an index
	// column (>= n-1 rule).
	sample := [][]string{
		{"1", "SH010"},
		{"2", "SH020"},
		{"x", "SH030"},
		{"4", "SH040"},
	}
	if got := detectIndexColumn(sample); got != 1 {
		t.Errorf("detectIndexColumn = %d, want 1", got)
	}

	// Codes in the first column must not be mistaken for an index.
	sample = [][]string{
		{"SH010", "a"},
		{"SH020", "b"},
	}
	if got := detectIndexColumn(sample); got != 0 {
		t.Errorf("detectIndexColumn = %d, want 0", got)
	}
}

func TestDetectReelColumnRules(t *testing.T) {
	tests := []struct {
		name   string
		sample [][]string
		want   int
	}{
		{
			"padded numbers qualify",
			[][]string{{"SH010", "01"}, {"SH020", "02"}},
			1,
		},
		{
			"plain integers do not",
			[][]string{{"SH010", "1"}, {"SH020", "2"}},
			-1,
		},
		{
			"dates do not",
			[][]string{{"SH010", "2024-01-01"}, {"SH020", "2024-01-02"}},
			-1,
		},
		{
			"long text does not",
			[][]string{{"SH010", "a very long description"}, {"SH020", "another one"}},
			-1,
		},
		{
			"single sample is not enough",
			[][]string{{"SH010", "R1"}},
			-1,
		},
		{
			"alnum tokens qualify",
			[][]string{{"SH010", "R1"}, {"SH020", "R1"}, {"SH030", "R2"}},
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectReelColumn(tt.sample, 0); got != tt.want {
				t.Errorf("detectReelColumn = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInferMappingEmpty(t *testing.T) {
	m := InferMapping(nil)
	if m.HasHeaders {
		t.Error("empty input must not claim headers")
	}
	if m.CodeResolvable() {
		t.Error("empty input must not resolve code")
	}
}
