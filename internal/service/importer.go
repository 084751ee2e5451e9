package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"shotline/internal/domain"
	"shotline/internal/domain/models"
	"shotline/internal/domain/repositories"
	"shotline/internal/domain/services"
	"shotline/internal/shotcsv"
)

// importService implements the ImportService interface
type importService struct {
	shotRepo    repositories.ShotRepository
	projectRepo repositories.ProjectRepository
	txManager   repositories.TransactionManager
	logger      *slog.Logger
}

// NewImportService creates a new import service
func NewImportService(
	shotRepo repositories.ShotRepository,
	projectRepo repositories.ProjectRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.ImportService {
	return &importService{
		shotRepo:    shotRepo,
		projectRepo: projectRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// ImportCSV parses the upload, infers the column mapping, drops rows
// whose code already exists in the project or earlier in the file, and
// bulk-inserts the rest in a single transaction. Row problems are
// reported per row; an insert failure voids the whole batch.
func (s *importService) ImportCSV(ctx context.Context, projectID string, data []byte) (*services.ImportResult, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	records, err := shotcsv.Parse(data)
	if err != nil {
		return nil, &domain.DecodeError{Message: err.Error()}
	}

	mapping := shotcsv.InferMapping(records)
	if !mapping.CodeResolvable() {
		return nil, &domain.ValidationError{Message: "could not locate a shot code column"}
	}

	rows, rowErrs := shotcsv.ExtractRows(records, mapping)

	result := &services.ImportResult{Errors: []services.ImportError{}}
	for _, re := range rowErrs {
		result.Errors = append(result.Errors, services.ImportError{Line: re.Line, Error: re.Error})
	}

	existing, err := s.shotRepo.CodesByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	// First occurrence wins; later rows with the same code are skipped
	// in file order.
	seen := make(map[string]bool, len(rows))
	now := time.Now()
	shots := make([]models.Shot, 0, len(rows))
	for _, row := range rows {
		if existing[row.Code] || seen[row.Code] {
			result.Errors = append(result.Errors, services.ImportError{
				Line:  row.Line,
				Error: fmt.Sprintf("Skipped duplicate code: %s", row.Code),
			})
			continue
		}
		seen[row.Code] = true
		shots = append(shots, models.Shot{
			ID:          uuid.NewString(),
			ProjectID:   projectID,
			Code:        row.Code,
			Reel:        row.Reel,
			Description: row.Description,
			AssignedTo:  row.AssignedTo,
			StartDate:   row.StartDate,
			DueDate:     row.DueDate,
			Status:      row.Status,
			PlatePath:   row.PlatePath,
			MovPath:     row.MovPath,
			ExrPath:     row.ExrPath,
			Version:     row.Version,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if len(shots) > 0 {
		var inserted int
		err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
			n, err := s.shotRepo.BulkInsert(txCtx, shots)
			inserted = n
			return err
		})
		if err != nil {
			// The transaction rolled back; nothing from this file landed
			s.logger.Error("csv import failed", "project_id", projectID, "error", err)
			return &services.ImportResult{
				Imported: 0,
				Errors: []services.ImportError{{
					Error:  "import failed, no shots were added",
					Detail: err.Error(),
				}},
			}, nil
		}
		result.Imported = inserted
	}

	s.logger.Info("csv import finished",
		"project_id", projectID,
		"imported", result.Imported,
		"row_errors", len(result.Errors),
	)

	return result, nil
}

// PreviewCSV proposes a field mapping without writing anything
func (s *importService) PreviewCSV(ctx context.Context, data []byte) (*shotcsv.PreviewResult, error) {
	preview, err := shotcsv.Preview(data)
	if err != nil {
		return nil, &domain.DecodeError{Message: err.Error()}
	}
	return preview, nil
}
