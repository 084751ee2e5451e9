package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"shotline/internal/domain"
	"shotline/internal/domain/models"
	"shotline/internal/domain/repositories"
	"shotline/internal/domain/services"
)

// projectService implements the ProjectService interface
type projectService struct {
	projectRepo repositories.ProjectRepository
	logger      *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo repositories.ProjectRepository, logger *slog.Logger) services.ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// CreateProject creates a new project. A blank short code is derived
// from the name.
func (s *projectService) CreateProject(ctx context.Context, req *services.CreateProjectRequest) (*models.Project, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	short := req.Short
	if short == "" {
		short = deriveShort(req.Name)
	}

	project := &models.Project{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Short:       short,
		StartDate:   req.StartDate,
		DetailsText: req.DetailsText,
		FolderPath:  req.FolderPath,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"id", project.ID,
		"name", project.Name,
		"short", project.Short,
	)

	return project, nil
}

// GetProject retrieves a project by ID
func (s *projectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// ListProjects retrieves all projects
func (s *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.List(ctx)
}

// UpdateProject applies a partial update to a project
func (s *projectService) UpdateProject(ctx context.Context, id string, req *services.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be blank", domain.ErrValidation)
		}
		project.Name = *req.Name
	}
	if req.Short != nil {
		project.Short = *req.Short
	}
	if req.StartDate != nil {
		project.StartDate = *req.StartDate
	}
	if req.DetailsText != nil {
		project.DetailsText = *req.DetailsText
	}
	if req.FolderPath != nil {
		project.FolderPath = *req.FolderPath
	}
	project.UpdatedAt = time.Now()

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project updated", "id", project.ID, "name", project.Name)

	return project, nil
}

// DeleteProject removes a project and its shots
func (s *projectService) DeleteProject(ctx context.Context, id string) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("project deleted", "id", id)

	return nil
}

// validateCreateRequest validates a project creation request
func (s *projectService) validateCreateRequest(req *services.CreateProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, 128),
		),
		validation.Field(&req.Short, validation.Length(0, 16)),
	)
}

// deriveShort builds a short code from a project name: the first six
// characters, uppercased, with spaces removed.
func deriveShort(name string) string {
	compact := strings.ReplaceAll(name, " ", "")
	if len(compact) > 6 {
		compact = compact[:6]
	}
	return strings.ToUpper(compact)
}
