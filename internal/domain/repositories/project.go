package repositories

import (
	"context"

	"shotline/internal/domain/models"
)

// ProjectRepository defines data access operations for projects
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, project *models.Project) error

	// GetByID retrieves a project by ID
	GetByID(ctx context.Context, id string) (*models.Project, error)

	// List retrieves all projects ordered by name
	List(ctx context.Context) ([]models.Project, error)

	// Update persists changed project fields
	Update(ctx context.Context, project *models.Project) error

	// Delete removes a project and, through the schema's cascades, its
	// shots and their comments
	Delete(ctx context.Context, id string) error
}
