// Package comment implements the task comment repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"taskhub/internal/adapter/postgres"
	"taskhub/internal/domain"
)

const columns = "comment_id, task_id, text, author, created_at"

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new comment repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a comment and returns the stored row.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert("comments").
		Columns("comment_id", "task_id", "text", "author", "created_at").
		Values(c.ID, c.TaskID, c.Text, c.Author, c.CreatedAt).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert comment: %w", err)
	}

	var out domain.Comment
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "comment", c.ID)
	}
	return &out, nil
}

// GetByID returns a single comment.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns).
		From("comments").
		Where(squirrel.Eq{"comment_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select comment: %w", err)
	}

	var out domain.Comment
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	return &out, nil
}

// ListByTask returns a task's comments oldest first.
func (r *Repo) ListByTask(ctx context.Context, taskID string) ([]domain.Comment, error) {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns).
		From("comments").
		Where(squirrel.Eq{"task_id": taskID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list comments: %w", err)
	}

	comments := []domain.Comment{}
	if err := pgxscan.Select(ctx, q, &comments, sql, args...); err != nil {
		return nil, fmt.Errorf("list comments for task %s: %w", taskID, err)
	}
	return comments, nil
}

// Delete removes a comment row.
func (r *Repo) Delete(ctx context.Context, id string) error {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Delete("comments").
		Where(squirrel.Eq{"comment_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete comment: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "comment", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByTask removes all comments attached to a task.
func (r *Repo) DeleteByTask(ctx context.Context, taskID string) error {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Delete("comments").
		Where(squirrel.Eq{"task_id": taskID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete comments: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete comments for task %s: %w", taskID, err)
	}
	return nil
}
