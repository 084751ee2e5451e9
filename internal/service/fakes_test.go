package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"shotline/internal/domain"
	"shotline/internal/domain/models"
	"shotline/internal/domain/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeProjectRepo is an in-memory ProjectRepository for service tests.
type fakeProjectRepo struct {
	projects map[string]*models.Project
}

func newFakeProjectRepo(projects ...*models.Project) *fakeProjectRepo {
	r := &fakeProjectRepo{projects: map[string]*models.Project{}}
	for _, p := range projects {
		r.projects[p.ID] = p
	}
	return r
}

func (r *fakeProjectRepo) Create(ctx context.Context, p *models.Project) error {
	r.projects[p.ID] = p
	return nil
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

func (r *fakeProjectRepo) List(ctx context.Context) ([]models.Project, error) {
	out := []models.Project{}
	for _, p := range r.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, p *models.Project) error {
	if _, ok := r.projects[p.ID]; !ok {
		return fmt.Errorf("project %s: %w", p.ID, domain.ErrNotFound)
	}
	r.projects[p.ID] = p
	return nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	delete(r.projects, id)
	return nil
}

// fakeShotRepo is an in-memory ShotRepository. Shots are kept in
// insertion order so listing matches the created_at ordering of the
// real repository.
type fakeShotRepo struct {
	shots      []models.Shot
	failInsert bool
}

func (r *fakeShotRepo) Create(ctx context.Context, shot *models.Shot) error {
	for _, s := range r.shots {
		if s.ProjectID == shot.ProjectID && s.Code == shot.Code {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("shot code '%s' already exists in project", shot.Code),
				ResourceType: "shot",
			}
		}
	}
	r.shots = append(r.shots, *shot)
	return nil
}

func (r *fakeShotRepo) GetByID(ctx context.Context, id string) (*models.Shot, error) {
	for i := range r.shots {
		if r.shots[i].ID == id {
			s := r.shots[i]
			return &s, nil
		}
	}
	return nil, fmt.Errorf("shot %s: %w", id, domain.ErrNotFound)
}

func (r *fakeShotRepo) ListByProject(ctx context.Context, projectID string, filter repositories.ShotFilter) ([]models.Shot, error) {
	out := []models.Shot{}
	for _, s := range r.shots {
		if s.ProjectID == projectID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeShotRepo) CodesByProject(ctx context.Context, projectID string) (map[string]bool, error) {
	codes := map[string]bool{}
	for _, s := range r.shots {
		if s.ProjectID == projectID {
			codes[s.Code] = true
		}
	}
	return codes, nil
}

func (r *fakeShotRepo) BulkInsert(ctx context.Context, shots []models.Shot) (int, error) {
	if r.failInsert {
		return 0, fmt.Errorf("insert shots: connection reset")
	}
	r.shots = append(r.shots, shots...)
	return len(shots), nil
}

func (r *fakeShotRepo) Update(ctx context.Context, shot *models.Shot) error {
	for i := range r.shots {
		if r.shots[i].ID == shot.ID {
			r.shots[i] = *shot
			return nil
		}
	}
	return fmt.Errorf("shot %s: %w", shot.ID, domain.ErrNotFound)
}

func (r *fakeShotRepo) Delete(ctx context.Context, id string) error {
	for i := range r.shots {
		if r.shots[i].ID == id {
			r.shots = append(r.shots[:i], r.shots[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("shot %s: %w", id, domain.ErrNotFound)
}

// fakeCommentRepo is an in-memory CommentRepository.
type fakeCommentRepo struct {
	comments []models.Comment
}

func (r *fakeCommentRepo) Create(ctx context.Context, c *models.Comment) error {
	r.comments = append(r.comments, *c)
	return nil
}

func (r *fakeCommentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	for i := range r.comments {
		if r.comments[i].ID == id {
			c := r.comments[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
}

func (r *fakeCommentRepo) ListByShot(ctx context.Context, shotID string) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, c := range r.comments {
		if c.ShotID == shotID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) UpdateText(ctx context.Context, id, text string) (*models.Comment, error) {
	for i := range r.comments {
		if r.comments[i].ID == id {
			r.comments[i].Text = text
			c := r.comments[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
}

func (r *fakeCommentRepo) Delete(ctx context.Context, id string) error {
	for i := range r.comments {
		if r.comments[i].ID == id {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
}

// fakeTxManager runs the function directly; the fakes have no real
// transactions to manage.
type fakeTxManager struct{}

func (m *fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}
