package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"shotline/internal/domain"
	"shotline/internal/domain/models"
	"shotline/internal/domain/repositories"
	"shotline/internal/domain/services"
)

// commentService implements the CommentService interface
type commentService struct {
	commentRepo repositories.CommentRepository
	shotRepo    repositories.ShotRepository
	logger      *slog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(
	commentRepo repositories.CommentRepository,
	shotRepo repositories.ShotRepository,
	logger *slog.Logger,
) services.CommentService {
	return &commentService{
		commentRepo: commentRepo,
		shotRepo:    shotRepo,
		logger:      logger,
	}
}

// CreateComment adds a comment to a shot, snapshotting the author's
// display name and role
func (s *commentService) CreateComment(ctx context.Context, shotID string, author *models.User, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text cannot be blank", domain.ErrValidation)
	}

	if _, err := s.shotRepo.GetByID(ctx, shotID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:             uuid.NewString(),
		ShotID:         shotID,
		Author:         author.DisplayName,
		AuthorUsername: author.Username,
		AuthorRole:     author.Role,
		Text:           text,
		CreatedAt:      time.Now(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment created",
		"id", comment.ID,
		"shot_id", shotID,
		"author", comment.Author,
	)

	return comment, nil
}

// ListComments retrieves a shot's comments in creation order
func (s *commentService) ListComments(ctx context.Context, shotID string) ([]models.Comment, error) {
	return s.commentRepo.ListByShot(ctx, shotID)
}

// UpdateComment replaces a comment's text. Only the author or an
// admin may edit.
func (s *commentService) UpdateComment(ctx context.Context, id string, requester *models.User, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text cannot be blank", domain.ErrValidation)
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.canModify(comment, requester) {
		return nil, &domain.ForbiddenError{Message: "only the author or an admin may edit a comment"}
	}

	updated, err := s.commentRepo.UpdateText(ctx, id, text)
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment updated", "id", id, "by", requester.Username)

	return updated, nil
}

// DeleteComment removes a comment. Only the author or an admin may
// delete.
func (s *commentService) DeleteComment(ctx context.Context, id string, requester *models.User) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.canModify(comment, requester) {
		return &domain.ForbiddenError{Message: "only the author or an admin may delete a comment"}
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("comment deleted", "id", id, "by", requester.Username)

	return nil
}

// canModify checks the requester against the author's username
// snapshot. Display names are neither unique nor stable, so they never
// decide ownership. Admins always pass.
func (s *commentService) canModify(comment *models.Comment, requester *models.User) bool {
	if requester.Role == models.RoleAdmin {
		return true
	}
	return comment.AuthorUsername == requester.Username
}
