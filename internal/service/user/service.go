// Package user implements user directory and identity sync business logic.
package user

import (
	"context"
	"log/slog"
	"time"

	"taskhub/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateName(ctx context.Context, id int64, name string, now time.Time) (*domain.User, error)
	UpdateRole(ctx context.Context, id int64, role domain.Role, now time.Time) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type memberRepo interface {
	RemoveByUser(ctx context.Context, userID int64) error
}

type taskRepo interface {
	Unassign(ctx context.Context, names []string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the user business logic.
type Service struct {
	log     *slog.Logger
	users   userRepo
	members memberRepo
	tasks   taskRepo
	tx      txManager
}

// NewService creates a new User service.
func NewService(logger *slog.Logger, users userRepo, members memberRepo, tasks taskRepo, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "user"),
		users:   users,
		members: members,
		tasks:   tasks,
		tx:      tx,
	}
}
