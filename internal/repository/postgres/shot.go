package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"shotline/internal/domain"
	"shotline/internal/domain/models"
	"shotline/internal/domain/repositories"
)

// PostgresShotRepository implements the ShotRepository interface
type PostgresShotRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewShotRepository creates a new shot repository
func NewShotRepository(config *RepositoryConfig) repositories.ShotRepository {
	return &PostgresShotRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const shotColumns = `id, project_id, code, reel, description, assigned_to,
	start_date, due_date, status, plate_path, mov_path, exr_path,
	version, nuke_path, created_at, updated_at`

func scanShot(row interface{ Scan(...any) error }, s *models.Shot) error {
	return row.Scan(&s.ID, &s.ProjectID, &s.Code, &s.Reel, &s.Description,
		&s.AssignedTo, &s.StartDate, &s.DueDate, &s.Status, &s.PlatePath,
		&s.MovPath, &s.ExrPath, &s.Version, &s.NukePath, &s.CreatedAt, &s.UpdatedAt)
}

func shotArgs(s *models.Shot) []any {
	return []any{s.ID, s.ProjectID, s.Code, s.Reel, s.Description,
		s.AssignedTo, s.StartDate, s.DueDate, s.Status, s.PlatePath,
		s.MovPath, s.ExrPath, s.Version, s.NukePath, s.CreatedAt, s.UpdatedAt}
}

// Create creates a new shot. A duplicate (project_id, code) pair is
// rejected by the unique constraint and surfaces as a ConflictError.
func (r *PostgresShotRepository) Create(ctx context.Context, shot *models.Shot) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`, r.tables.Shots, shotColumns)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query, shotArgs(shot)...)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("shot code '%s' already exists in project", shot.Code),
				ResourceType: "shot",
			}
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("project %s: %w", shot.ProjectID, domain.ErrNotFound)
		}
		return fmt.Errorf("create shot: %w", err)
	}

	return nil
}

// GetByID retrieves a shot by ID
func (r *PostgresShotRepository) GetByID(ctx context.Context, id string) (*models.Shot, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, shotColumns, r.tables.Shots)

	var shot models.Shot
	executor := GetExecutor(ctx, r.pool)
	if err := scanShot(executor.QueryRow(ctx, query, id), &shot); err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("shot %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get shot: %w", err)
	}

	return &shot, nil
}

// ListByProject retrieves a project's shots, optionally filtered.
// Reel, code, description and artist filters are substring matches;
// due date and status are exact.
func (r *PostgresShotRepository) ListByProject(ctx context.Context, projectID string, filter repositories.ShotFilter) ([]models.Shot, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `SELECT %s FROM %s WHERE project_id = $1`, shotColumns, r.tables.Shots)
	args := []any{projectID}

	addLike := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, "%"+value+"%")
		fmt.Fprintf(&sb, " AND %s ILIKE $%d", column, len(args))
	}
	addEq := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		fmt.Fprintf(&sb, " AND %s = $%d", column, len(args))
	}

	// Reel filtering matches the code, like the original listing did;
	// shots imported without an explicit reel still match.
	addLike("code", filter.Reel)
	addLike("code", filter.Code)
	addLike("description", filter.Description)
	addLike("assigned_to", filter.Artist)
	addEq("due_date", filter.Due)
	addEq("status", filter.Status)

	sb.WriteString(" ORDER BY created_at, id")

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list shots: %w", err)
	}
	defer rows.Close()

	shots := []models.Shot{}
	for rows.Next() {
		var shot models.Shot
		if err := scanShot(rows, &shot); err != nil {
			return nil, fmt.Errorf("scan shot: %w", err)
		}
		shots = append(shots, shot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shots: %w", err)
	}

	return shots, nil
}

// CodesByProject returns the set of shot codes already present in a
// project, for import deduplication.
func (r *PostgresShotRepository) CodesByProject(ctx context.Context, projectID string) (map[string]bool, error) {
	query := fmt.Sprintf(`SELECT code FROM %s WHERE project_id = $1`, r.tables.Shots)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list shot codes: %w", err)
	}
	defer rows.Close()

	codes := make(map[string]bool)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan shot code: %w", err)
		}
		codes[code] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shot codes: %w", err)
	}

	return codes, nil
}

// bulkInsertChunk bounds the rows per INSERT statement. The wire
// protocol caps bind parameters at 65535 per statement, so at 16
// columns a single statement tops out below 4096 rows; 1000 keeps a
// wide margin.
const bulkInsertChunk = 1000

// bulkInsertQuery builds a multi-row INSERT for n rows with
// placeholders numbered from $1.
func bulkInsertQuery(table string, n int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `INSERT INTO %s (%s) VALUES `, table, shotColumns)
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < 16; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", i*16+j+1)
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// BulkInsert inserts shots in multi-row statements of at most
// bulkInsertChunk rows each. Run it inside ExecTx so a failure in any
// chunk rolls back the whole batch.
func (r *PostgresShotRepository) BulkInsert(ctx context.Context, shots []models.Shot) (int, error) {
	executor := GetExecutor(ctx, r.pool)

	inserted := 0
	for len(shots) > 0 {
		n := len(shots)
		if n > bulkInsertChunk {
			n = bulkInsertChunk
		}

		args := make([]any, 0, n*16)
		for i := 0; i < n; i++ {
			args = append(args, shotArgs(&shots[i])...)
		}

		tag, err := executor.Exec(ctx, bulkInsertQuery(r.tables.Shots, n), args...)
		if err != nil {
			if IsPgDuplicateError(err) {
				return 0, &domain.ConflictError{
					Message:      "duplicate shot code in batch",
					ResourceType: "shot",
				}
			}
			return 0, fmt.Errorf("bulk insert shots: %w", err)
		}

		inserted += int(tag.RowsAffected())
		shots = shots[n:]
	}

	return inserted, nil
}

// Update persists changed shot fields
func (r *PostgresShotRepository) Update(ctx context.Context, shot *models.Shot) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET code = $1, reel = $2, description = $3, assigned_to = $4,
			start_date = $5, due_date = $6, status = $7, plate_path = $8,
			mov_path = $9, exr_path = $10, version = $11, nuke_path = $12,
			updated_at = $13
		WHERE id = $14
	`, r.tables.Shots)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		shot.Code, shot.Reel, shot.Description, shot.AssignedTo,
		shot.StartDate, shot.DueDate, shot.Status, shot.PlatePath,
		shot.MovPath, shot.ExrPath, shot.Version, shot.NukePath,
		shot.UpdatedAt, shot.ID,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("shot code '%s' already exists in project", shot.Code),
				ResourceType: "shot",
			}
		}
		return fmt.Errorf("update shot: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("shot %s: %w", shot.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a shot; its comments go with it via the schema's
// ON DELETE CASCADE.
func (r *PostgresShotRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Shots)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete shot: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("shot %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
