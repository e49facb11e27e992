// Package user implements the user repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"taskhub/internal/adapter/postgres"
	"taskhub/internal/domain"
)

const columns = "user_id, email, name, profile_picture, role, created_at, updated_at"

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a user and returns the stored row (with the generated id).
// A duplicate email returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert("users").
		Columns("email", "name", "profile_picture", "role", "created_at", "updated_at").
		Values(u.Email, u.Name, u.ProfilePicture, u.Role, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	var out domain.User
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return &out, nil
}

// GetByEmail returns a user by the immutable business key.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns).
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	var out domain.User
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return &out, nil
}

// GetByID returns a user by numeric id.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns).
		From("users").
		Where(squirrel.Eq{"user_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	var out domain.User
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", strconv.FormatInt(id, 10))
	}
	return &out, nil
}

// Count returns the total number of users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select("COUNT(*)").
		From("users").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count users: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// List returns all users ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns).
		From("users").
		OrderBy("user_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	users := []domain.User{}
	if err := pgxscan.Select(ctx, q, &users, sql, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateName refreshes the display name on identity sync.
func (r *Repo) UpdateName(ctx context.Context, id int64, name string, now time.Time) (*domain.User, error) {
	return r.update(ctx, id, map[string]any{"name": name, "updated_at": now})
}

// UpdateRole sets a user's role.
func (r *Repo) UpdateRole(ctx context.Context, id int64, role domain.Role, now time.Time) (*domain.User, error) {
	return r.update(ctx, id, map[string]any{"role": role, "updated_at": now})
}

func (r *Repo) update(ctx context.Context, id int64, set map[string]any) (*domain.User, error) {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Update("users").
		SetMap(set).
		Where(squirrel.Eq{"user_id": id}).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user: %w", err)
	}

	var out domain.User
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", strconv.FormatInt(id, 10))
	}
	return &out, nil
}

// Delete removes a user row.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.FromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Delete("users").
		Where(squirrel.Eq{"user_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete user: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", strconv.FormatInt(id, 10))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
