// Package project implements the project repository using PostgreSQL.
package project

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"taskhub/internal/adapter/postgres"
	"taskhub/internal/domain"
)

const columns = "project_id, name, description, status, creator, tags"

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new project repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a project and returns the stored row.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert("projects").
		Columns("project_id", "name", "description", "status", "creator", "tags").
		Values(p.ID, p.Name, p.Description, p.Status, p.Creator, p.Tags).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert project: %w", err)
	}

	var out domain.Project
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "project", p.ID)
	}
	return &out, nil
}

// GetByID returns a project by primary key.
// Returns domain.ErrNotFound if the project does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns).
		From("projects").
		Where(squirrel.Eq{"project_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select project: %w", err)
	}

	var out domain.Project
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return &out, nil
}

// ListAll returns every project ordered by name.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Project, error) {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns).
		From("projects").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list projects: %w", err)
	}

	projects := []domain.Project{}
	if err := pgxscan.Select(ctx, q, &projects, sql, args...); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

const listForUserSQL = `
SELECT p.project_id, p.name, p.description, p.status, p.creator, p.tags
FROM projects p
WHERE p.project_id IN (SELECT pm.project_id FROM project_members pm WHERE pm.user_id = $1)
   OR p.creator = $2
   OR p.creator = $3
ORDER BY p.name`

// ListForUser returns projects the user is a member of, plus projects whose
// creator field matches the user's display name or email (legacy rows created
// before memberships existed).
func (r *Repo) ListForUser(ctx context.Context, userID int64, name, email string) ([]domain.Project, error) {
	q := postgres.FromCtx(ctx, r.db)

	projects := []domain.Project{}
	if err := pgxscan.Select(ctx, q, &projects, listForUserSQL, userID, name, email); err != nil {
		return nil, fmt.Errorf("list projects for user: %w", err)
	}
	return projects, nil
}

// Delete removes a project row. Members and tasks are removed by the service
// inside the same transaction before this is called.
func (r *Repo) Delete(ctx context.Context, id string) error {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Delete("projects").
		Where(squirrel.Eq{"project_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete project: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "project", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
