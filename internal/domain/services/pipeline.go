package services

import (
	"context"

	"shotline/internal/domain"
	"shotline/internal/pipeline"
)

// PipelineService derives filesystem locations from shot and project
// records and performs the convention-based disk operations.
type PipelineService interface {
	// NukePath returns the comp script path for a shot, preferring a
	// stored override and deriving one otherwise
	NukePath(ctx context.Context, shotID string) (string, error)

	// GenerateComp creates the next versioned comp script on disk and
	// persists its path on the shot
	GenerateComp(ctx context.Context, shotID string) (string, error)

	// GenerateStructure creates the standard folder set for a shot
	GenerateStructure(ctx context.Context, shotID string) (*StructureResult, error)

	// SendToClient copies the shot's deliverables into a dated
	// client delivery batch
	SendToClient(ctx context.Context, shotID string) (*pipeline.DeliveryResult, error)
}

// StructureResult lists what GenerateStructure managed to create.
type StructureResult struct {
	Created []string           `json:"created"`
	Errors  []domain.ItemError `json:"errors"`
}
