// Package task implements the task repository using PostgreSQL.
package task

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"taskhub/internal/adapter/postgres"
	"taskhub/internal/domain"
)

const columns = "task_id, title, description, status, priority, due_date, assignee, project_id, creator, parent_task_id"

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new task repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a task and returns the stored row.
func (r *Repo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert("tasks").
		Columns("task_id", "title", "description", "status", "priority",
			"due_date", "assignee", "project_id", "creator", "parent_task_id").
		Values(t.ID, t.Title, t.Description, t.Status, t.Priority,
			t.DueDate, t.Assignee, t.ProjectID, t.Creator, t.ParentTaskID).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert task: %w", err)
	}

	var out domain.Task
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "task", t.ID)
	}
	return &out, nil
}

// GetByID returns a task by primary key.
// Returns domain.ErrNotFound if the task does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns).
		From("tasks").
		Where(squirrel.Eq{"task_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select task: %w", err)
	}

	var out domain.Task
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return &out, nil
}

// List returns tasks, optionally filtered by project, ordered by title.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, projectID *string) ([]domain.Task, error) {
	q := postgres.FromCtx(ctx, r.db)

	query := postgres.Builder.
		Select(columns).
		From("tasks").
		OrderBy("title ASC")
	if projectID != nil {
		query = query.Where(squirrel.Eq{"project_id": *projectID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tasks: %w", err)
	}

	tasks := []domain.Task{}
	if err := pgxscan.Select(ctx, q, &tasks, sql, args...); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// CompareAndSetStatus transitions a task's status only if the stored status
// still equals expected. Zero affected rows means a concurrent transition won
// (or the task vanished) and the caller's gating decision is stale.
func (r *Repo) CompareAndSetStatus(ctx context.Context, id string, expected, next domain.TaskStatus) error {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Update("tasks").
		Set("status", next).
		Where(squirrel.Eq{"task_id": id, "status": expected}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update status: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "task", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: status changed concurrently: %w", id, domain.ErrConflict)
	}
	return nil
}

// SetAssignee updates a task's assignee (nil clears it) and returns the row.
// Returns domain.ErrNotFound if the task does not exist.
func (r *Repo) SetAssignee(ctx context.Context, id string, assignee *string) (*domain.Task, error) {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Update("tasks").
		Set("assignee", assignee).
		Where(squirrel.Eq{"task_id": id}).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update assignee: %w", err)
	}

	var out domain.Task
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return &out, nil
}

// Delete removes a task. Child tasks keep their parent link; a dangling link
// no longer gates them.
func (r *Repo) Delete(ctx context.Context, id string) error {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Delete("tasks").
		Where(squirrel.Eq{"task_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete task: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "task", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByProject removes every task of a project (project deletion cascade).
func (r *Repo) DeleteByProject(ctx context.Context, projectID string) error {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Delete("tasks").
		Where(squirrel.Eq{"project_id": projectID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete project tasks: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "project tasks", projectID)
	}
	return nil
}

const unassignSQL = `UPDATE tasks SET assignee = NULL WHERE assignee = ANY($1)`

// Unassign clears the assignee on every task assigned to any of the given
// display names (used when a user is deleted: tasks survive, unassigned).
func (r *Repo) Unassign(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	q := postgres.FromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, unassignSQL, names); err != nil {
		return fmt.Errorf("unassign tasks: %w", err)
	}
	return nil
}
