package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"shotline/internal/domain"
	"shotline/internal/domain/models"
	"shotline/internal/domain/repositories"
	"shotline/internal/domain/services"
	"shotline/internal/shotcode"
	"shotline/internal/shotcsv"
)

// shotService implements the ShotService interface
type shotService struct {
	shotRepo    repositories.ShotRepository
	projectRepo repositories.ProjectRepository
	logger      *slog.Logger
}

// NewShotService creates a new shot service
func NewShotService(
	shotRepo repositories.ShotRepository,
	projectRepo repositories.ProjectRepository,
	logger *slog.Logger,
) services.ShotService {
	return &shotService{
		shotRepo:    shotRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// CreateShot creates a new shot in a project. A blank version is
// back-filled from the code's version marker when it has one, and a
// blank status gets the initial pipeline status.
func (s *shotService) CreateShot(ctx context.Context, projectID string, req *services.CreateShotRequest) (*models.Shot, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Fail with a not-found before the insert's FK does
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = shotcsv.DefaultStatus
	}
	version := req.Version
	if version == "" {
		version = shotcode.ExtractVersion(req.Code, "")
	}

	shot := &models.Shot{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		Code:        req.Code,
		Reel:        req.Reel,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		Status:      status,
		PlatePath:   req.PlatePath,
		MovPath:     req.MovPath,
		ExrPath:     req.ExrPath,
		Version:     version,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.shotRepo.Create(ctx, shot); err != nil {
		return nil, err
	}

	s.logger.Info("shot created",
		"id", shot.ID,
		"code", shot.Code,
		"project_id", projectID,
	)

	return shot, nil
}

// GetShot retrieves a shot by ID
func (s *shotService) GetShot(ctx context.Context, id string) (*models.Shot, error) {
	return s.shotRepo.GetByID(ctx, id)
}

// ListShots retrieves a project's shots, filtered
func (s *shotService) ListShots(ctx context.Context, projectID string, filter repositories.ShotFilter) ([]models.Shot, error) {
	return s.shotRepo.ListByProject(ctx, projectID, filter)
}

// UpdateShot applies a partial update to a shot
func (s *shotService) UpdateShot(ctx context.Context, id string, req *services.UpdateShotRequest) (*models.Shot, error) {
	shot, err := s.shotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		if *req.Code == "" {
			return nil, fmt.Errorf("%w: code cannot be blank", domain.ErrValidation)
		}
		shot.Code = *req.Code
	}
	if req.Reel != nil {
		shot.Reel = *req.Reel
	}
	if req.Description != nil {
		shot.Description = *req.Description
	}
	if req.AssignedTo != nil {
		shot.AssignedTo = *req.AssignedTo
	}
	if req.StartDate != nil {
		shot.StartDate = *req.StartDate
	}
	if req.DueDate != nil {
		shot.DueDate = *req.DueDate
	}
	if req.Status != nil {
		shot.Status = *req.Status
	}
	if req.PlatePath != nil {
		shot.PlatePath = *req.PlatePath
	}
	if req.MovPath != nil {
		shot.MovPath = *req.MovPath
	}
	if req.ExrPath != nil {
		shot.ExrPath = *req.ExrPath
	}
	if req.Version != nil {
		shot.Version = *req.Version
	}
	if req.NukePath != nil {
		shot.NukePath = *req.NukePath
	}
	shot.UpdatedAt = time.Now()

	if err := s.shotRepo.Update(ctx, shot); err != nil {
		return nil, err
	}

	s.logger.Info("shot updated", "id", shot.ID, "code", shot.Code)

	return shot, nil
}

// DeleteShot removes a shot and its comments
func (s *shotService) DeleteShot(ctx context.Context, id string) error {
	if err := s.shotRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("shot deleted", "id", id)

	return nil
}

// ExportCSV renders a project's (filtered) shots as CSV
func (s *shotService) ExportCSV(ctx context.Context, projectID string, filter repositories.ShotFilter) ([]byte, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	shots, err := s.shotRepo.ListByProject(ctx, projectID, filter)
	if err != nil {
		return nil, err
	}

	return shotcsv.Export(shots)
}

// validateCreateRequest validates a shot creation request
func (s *shotService) validateCreateRequest(req *services.CreateShotRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Code,
			validation.Required,
			validation.Length(1, 128),
		),
	)
}
