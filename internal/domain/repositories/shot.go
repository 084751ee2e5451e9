package repositories

import (
	"context"

	"shotline/internal/domain/models"
)

// ShotFilter narrows a project's shot listing. Reel, Code, Description
// and Artist are substring matches; Due and Status are exact.
type ShotFilter struct {
	Reel        string
	Code        string
	Description string
	Artist      string
	Due         string
	Status      string
}

// ShotRepository defines data access operations for shots
type ShotRepository interface {
	// Create creates a new shot
	Create(ctx context.Context, shot *models.Shot) error

	// GetByID retrieves a shot by ID
	GetByID(ctx context.Context, id string) (*models.Shot, error)

	// ListByProject retrieves a project's shots (filtered), ordered by
	// creation
	ListByProject(ctx context.Context, projectID string, filter ShotFilter) ([]models.Shot, error)

	// CodesByProject returns the set of shot codes already present in
	// a project
	CodesByProject(ctx context.Context, projectID string) (map[string]bool, error)

	// BulkInsert inserts shots in one batch; any failure rolls the
	// whole batch back when run inside a transaction
	BulkInsert(ctx context.Context, shots []models.Shot) (int, error)

	// Update persists changed shot fields
	Update(ctx context.Context, shot *models.Shot) error

	// Delete removes a shot and, through the schema's cascade, its
	// comments
	Delete(ctx context.Context, id string) error
}
