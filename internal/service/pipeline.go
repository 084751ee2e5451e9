package service

import (
	"context"
	"log/slog"
	"time"

	"shotline/internal/domain"
	"shotline/internal/domain/models"
	"shotline/internal/domain/repositories"
	"shotline/internal/domain/services"
	"shotline/internal/pipeline"
)

// pipelineService implements the PipelineService interface
type pipelineService struct {
	shotRepo    repositories.ShotRepository
	projectRepo repositories.ProjectRepository
	deriver     *pipeline.Deriver
	logger      *slog.Logger
}

// NewPipelineService creates a new pipeline service
func NewPipelineService(
	shotRepo repositories.ShotRepository,
	projectRepo repositories.ProjectRepository,
	deriver *pipeline.Deriver,
	logger *slog.Logger,
) services.PipelineService {
	return &pipelineService{
		shotRepo:    shotRepo,
		projectRepo: projectRepo,
		deriver:     deriver,
		logger:      logger,
	}
}

// load fetches a shot together with its project
func (s *pipelineService) load(ctx context.Context, shotID string) (*models.Shot, *models.Project, error) {
	shot, err := s.shotRepo.GetByID(ctx, shotID)
	if err != nil {
		return nil, nil, err
	}
	project, err := s.projectRepo.GetByID(ctx, shot.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	return shot, project, nil
}

// NukePath returns the comp script path for a shot, preferring a
// stored override and deriving one otherwise
func (s *pipelineService) NukePath(ctx context.Context, shotID string) (string, error) {
	shot, project, err := s.load(ctx, shotID)
	if err != nil {
		return "", err
	}
	return s.deriver.CompScriptPath(project, shot)
}

// GenerateComp creates the next versioned comp script on disk and
// persists its path on the shot
func (s *pipelineService) GenerateComp(ctx context.Context, shotID string) (string, error) {
	shot, project, err := s.load(ctx, shotID)
	if err != nil {
		return "", err
	}

	path, err := s.deriver.GenerateNextCompScript(project, shot)
	if err != nil {
		return "", err
	}

	shot.NukePath = path
	shot.UpdatedAt = time.Now()
	if err := s.shotRepo.Update(ctx, shot); err != nil {
		return "", err
	}

	s.logger.Info("comp script generated",
		"shot_id", shotID,
		"code", shot.Code,
		"path", path,
	)

	return path, nil
}

// GenerateStructure creates the standard folder set for a shot
func (s *pipelineService) GenerateStructure(ctx context.Context, shotID string) (*services.StructureResult, error) {
	shot, project, err := s.load(ctx, shotID)
	if err != nil {
		return nil, err
	}

	created, itemErrs := s.deriver.GenerateStandardStructure(project, shot)
	if created == nil {
		created = []string{}
	}
	if itemErrs == nil {
		itemErrs = []domain.ItemError{}
	}

	s.logger.Info("shot structure generated",
		"shot_id", shotID,
		"code", shot.Code,
		"created", len(created),
		"errors", len(itemErrs),
	)

	return &services.StructureResult{Created: created, Errors: itemErrs}, nil
}

// SendToClient copies the shot's deliverables into a dated client
// delivery batch
func (s *pipelineService) SendToClient(ctx context.Context, shotID string) (*pipeline.DeliveryResult, error) {
	shot, project, err := s.load(ctx, shotID)
	if err != nil {
		return nil, err
	}

	result, err := s.deriver.DeliverToClient(project, shot)
	if err != nil {
		return nil, err
	}

	s.logger.Info("delivery batch written",
		"shot_id", shotID,
		"code", shot.Code,
		"target", result.TargetFolder,
		"errors", len(result.Errors),
	)

	return result, nil
}
