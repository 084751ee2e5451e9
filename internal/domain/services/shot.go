package services

import (
	"context"

	"shotline/internal/domain/models"
	"shotline/internal/domain/repositories"
)

// CreateShotRequest represents a request to create a shot
type CreateShotRequest struct {
	Code        string `json:"code"`
	Reel        string `json:"reel"`
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to"`
	StartDate   string `json:"start_date"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
	PlatePath   string `json:"plate_path"`
	MovPath     string `json:"mov_path"`
	ExrPath     string `json:"exr_path"`
	Version     string `json:"version"`
}

// UpdateShotRequest represents a partial shot update; nil fields are
// left unchanged.
type UpdateShotRequest struct {
	Code        *string `json:"code"`
	Reel        *string `json:"reel"`
	Description *string `json:"description"`
	AssignedTo  *string `json:"assigned_to"`
	StartDate   *string `json:"start_date"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
	PlatePath   *string `json:"plate_path"`
	MovPath     *string `json:"mov_path"`
	ExrPath     *string `json:"exr_path"`
	Version     *string `json:"version"`
	NukePath    *string `json:"nuke_path"`
}

// ShotService defines business logic operations for shots
type ShotService interface {
	// CreateShot creates a new shot in a project
	CreateShot(ctx context.Context, projectID string, req *CreateShotRequest) (*models.Shot, error)

	// GetShot retrieves a shot by ID
	GetShot(ctx context.Context, id string) (*models.Shot, error)

	// ListShots retrieves a project's shots, filtered
	ListShots(ctx context.Context, projectID string, filter repositories.ShotFilter) ([]models.Shot, error)

	// UpdateShot applies a partial update to a shot
	UpdateShot(ctx context.Context, id string, req *UpdateShotRequest) (*models.Shot, error)

	// DeleteShot removes a shot and its comments
	DeleteShot(ctx context.Context, id string) error

	// ExportCSV renders a project's (filtered) shots as CSV
	ExportCSV(ctx context.Context, projectID string, filter repositories.ShotFilter) ([]byte, error)
}
