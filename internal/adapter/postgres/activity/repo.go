// Package activity implements the append-only activity ledger using PostgreSQL.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"taskhub/internal/adapter/postgres"
	"taskhub/internal/domain"
)

const columns = "id, project_id, user_name, message, type, timestamp"

// Repo provides activity ledger persistence backed by PostgreSQL.
// Rows are only ever inserted or read, never updated.
type Repo struct {
	db postgres.DB
}

// New creates a new activity repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Insert appends an entry to the ledger. A zero id or timestamp is stamped
// here; actor, message and type are required.
func (r *Repo) Insert(ctx context.Context, e *domain.ActivityLog) error {
	var errs []domain.FieldError
	if e.User == "" {
		errs = append(errs, domain.FieldError{Field: "user", Message: "required"})
	}
	if e.Message == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if e.Type == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}

	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert("activity_logs").
		Columns("id", "project_id", "user_name", "message", "type", "timestamp").
		Values(e.ID, e.ProjectID, e.User, e.Message, e.Type, e.Timestamp).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert activity: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "activity", e.ID.String())
	}
	return nil
}

// Recent returns the newest entries, optionally scoped to one project.
func (r *Repo) Recent(ctx context.Context, projectID *string, limit int) ([]domain.ActivityLog, error) {
	q := postgres.FromCtx(ctx, r.db)

	b := postgres.Builder.
		Select(columns).
		From("activity_logs").
		OrderBy("timestamp DESC").
		Limit(uint64(limit))
	if projectID != nil {
		b = b.Where(squirrel.Eq{"project_id": *projectID})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activity: %w", err)
	}

	entries := []domain.ActivityLog{}
	if err := pgxscan.Select(ctx, q, &entries, sql, args...); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return entries, nil
}
