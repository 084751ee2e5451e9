package services

import (
	"context"

	"shotline/internal/domain/models"
)

// CommentService defines business logic operations for shot comments.
// Edits and deletes are restricted to the comment's author or an
// admin; the requesting user is passed in for that check.
type CommentService interface {
	// CreateComment adds a comment to a shot, snapshotting the
	// author's name and role
	CreateComment(ctx context.Context, shotID string, author *models.User, text string) (*models.Comment, error)

	// ListComments retrieves a shot's comments in creation order
	ListComments(ctx context.Context, shotID string) ([]models.Comment, error)

	// UpdateComment replaces a comment's text
	UpdateComment(ctx context.Context, id string, requester *models.User, text string) (*models.Comment, error)

	// DeleteComment removes a comment
	DeleteComment(ctx context.Context, id string, requester *models.User) error
}
