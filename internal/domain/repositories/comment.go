package repositories

import (
	"context"

	"shotline/internal/domain/models"
)

// CommentRepository defines data access operations for shot comments
type CommentRepository interface {
	// Create creates a new comment
	Create(ctx context.Context, comment *models.Comment) error

	// GetByID retrieves a comment by ID
	GetByID(ctx context.Context, id string) (*models.Comment, error)

	// ListByShot retrieves a shot's comments in creation order
	ListByShot(ctx context.Context, shotID string) ([]models.Comment, error)

	// UpdateText replaces a comment's text
	UpdateText(ctx context.Context, id, text string) (*models.Comment, error)

	// Delete removes a comment
	Delete(ctx context.Context, id string) error
}
