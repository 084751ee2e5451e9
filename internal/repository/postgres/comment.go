package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"shotline/internal/domain"
	"shotline/internal/domain/models"
	"shotline/internal/domain/repositories"
)

// PostgresCommentRepository implements the CommentRepository interface
type PostgresCommentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(config *RepositoryConfig) repositories.CommentRepository {
	return &PostgresCommentRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const commentColumns = "id, shot_id, author, author_username, author_role, text, created_at"

func scanComment(row interface{ Scan(...any) error }, c *models.Comment) error {
	return row.Scan(&c.ID, &c.ShotID, &c.Author, &c.AuthorUsername, &c.AuthorRole,
		&c.Text, &c.CreatedAt)
}

// Create creates a new comment
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, shot_id, author, author_username, author_role, text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.tables.Comments)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		comment.ID,
		comment.ShotID,
		comment.Author,
		comment.AuthorUsername,
		comment.AuthorRole,
		comment.Text,
		comment.CreatedAt,
	)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("shot %s: %w", comment.ShotID, domain.ErrNotFound)
		}
		return fmt.Errorf("create comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment by ID
func (r *PostgresCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, commentColumns, r.tables.Comments)

	var comment models.Comment
	executor := GetExecutor(ctx, r.pool)
	if err := scanComment(executor.QueryRow(ctx, query, id), &comment); err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}

	return &comment, nil
}

// ListByShot retrieves a shot's comments in creation order
func (r *PostgresCommentRepository) ListByShot(ctx context.Context, shotID string) ([]models.Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE shot_id = $1 ORDER BY created_at, id
	`, commentColumns, r.tables.Comments)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, shotID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var comment models.Comment
		if err := scanComment(rows, &comment); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, nil
}

// UpdateText replaces a comment's text and returns the updated row
func (r *PostgresCommentRepository) UpdateText(ctx context.Context, id, text string) (*models.Comment, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET text = $1 WHERE id = $2
		RETURNING %s
	`, r.tables.Comments, commentColumns)

	var comment models.Comment
	executor := GetExecutor(ctx, r.pool)
	if err := scanComment(executor.QueryRow(ctx, query, text, id), &comment); err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update comment: %w", err)
	}

	return &comment, nil
}

// Delete removes a comment
func (r *PostgresCommentRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Comments)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
