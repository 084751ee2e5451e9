package services

import (
	"context"

	"shotline/internal/domain/models"
)

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Short       string `json:"short"`
	StartDate   string `json:"start_date"`
	DetailsText string `json:"details_text"`
	FolderPath  string `json:"folder_path"`
}

// UpdateProjectRequest represents a partial project update; nil fields
// are left unchanged.
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Short       *string `json:"short"`
	StartDate   *string `json:"start_date"`
	DetailsText *string `json:"details_text"`
	FolderPath  *string `json:"folder_path"`
}

// ProjectService defines business logic operations for projects
type ProjectService interface {
	// CreateProject creates a new project
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*models.Project, error)

	// GetProject retrieves a project by ID
	GetProject(ctx context.Context, id string) (*models.Project, error)

	// ListProjects retrieves all projects
	ListProjects(ctx context.Context) ([]models.Project, error)

	// UpdateProject applies a partial update to a project
	UpdateProject(ctx context.Context, id string, req *UpdateProjectRequest) (*models.Project, error)

	// DeleteProject removes a project and its shots
	DeleteProject(ctx context.Context, id string) error
}
