package services

import (
	"context"

	"shotline/internal/shotcsv"
)

// ImportError is one row-level problem found during a CSV import.
type ImportError struct {
	Line   int    `json:"line,omitempty"`
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// ImportResult reports how a CSV import went. Row problems never abort
// the batch; they accumulate here instead.
type ImportResult struct {
	Imported int           `json:"imported"`
	Errors   []ImportError `json:"errors"`
}

// ImportService handles CSV shot ingestion for a project
type ImportService interface {
	// ImportCSV parses the upload, maps rows to shots, skips
	// duplicate codes and bulk-inserts the rest atomically
	ImportCSV(ctx context.Context, projectID string, data []byte) (*ImportResult, error)

	// PreviewCSV proposes a field mapping without writing anything
	PreviewCSV(ctx context.Context, data []byte) (*shotcsv.PreviewResult, error)
}
