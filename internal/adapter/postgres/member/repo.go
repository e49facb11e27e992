// Package member implements the project membership repository using
// PostgreSQL. The (project_id, user_id) pair is unique; duplicate adds
// surface as domain.ErrAlreadyExists via the constraint.
package member

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"taskhub/internal/adapter/postgres"
	"taskhub/internal/domain"
)

const columns = "id, project_id, user_id, role, joined_at"

// Repo provides membership persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new membership repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Add inserts a membership row. A duplicate (project, user) pair returns
// domain.ErrAlreadyExists.
func (r *Repo) Add(ctx context.Context, m *domain.ProjectMember) (*domain.ProjectMember, error) {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert("project_members").
		Columns("project_id", "user_id", "role", "joined_at").
		Values(m.ProjectID, m.UserID, m.Role, m.JoinedAt).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert member: %w", err)
	}

	var out domain.ProjectMember
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "member", m.ProjectID)
	}
	return &out, nil
}

// Ensure inserts a membership row unless the pair already exists.
// Used during project creation where the creator may also appear in the
// selected member list.
func (r *Repo) Ensure(ctx context.Context, m *domain.ProjectMember) error {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert("project_members").
		Columns("project_id", "user_id", "role", "joined_at").
		Values(m.ProjectID, m.UserID, m.Role, m.JoinedAt).
		Suffix("ON CONFLICT (project_id, user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build ensure member: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "member", m.ProjectID)
	}
	return nil
}

const listByProjectSQL = `
SELECT pm.id, pm.user_id, pm.role, pm.joined_at, u.name, u.email
FROM project_members pm
JOIN users u ON u.user_id = pm.user_id
WHERE pm.project_id = $1
ORDER BY pm.joined_at, pm.id`

// ListByProject returns the project's members joined with their profiles.
func (r *Repo) ListByProject(ctx context.Context, projectID string) ([]domain.ProjectMemberInfo, error) {
	q := postgres.FromCtx(ctx, r.db)

	members := []domain.ProjectMemberInfo{}
	if err := pgxscan.Select(ctx, q, &members, listByProjectSQL, projectID); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

// Remove deletes one membership row. Returns domain.ErrNotFound if the user
// is not a member of the project.
func (r *Repo) Remove(ctx context.Context, projectID string, userID int64) error {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Delete("project_members").
		Where(squirrel.Eq{"project_id": projectID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove member: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "member", projectID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("member %d of project %s: %w", userID, projectID, domain.ErrNotFound)
	}
	return nil
}

// RemoveByProject deletes all memberships of a project (project deletion cascade).
func (r *Repo) RemoveByProject(ctx context.Context, projectID string) error {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Delete("project_members").
		Where(squirrel.Eq{"project_id": projectID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove project members: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "project members", projectID)
	}
	return nil
}

// RemoveByUser deletes all memberships of a user (user deletion cascade).
func (r *Repo) RemoveByUser(ctx context.Context, userID int64) error {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Delete("project_members").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove user members: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "user members", strconv.FormatInt(userID, 10))
	}
	return nil
}
