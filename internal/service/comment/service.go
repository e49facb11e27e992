// Package comment implements task comment business logic.
package comment

import (
	"context"
	"log/slog"

	"taskhub/internal/domain"
)

type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByTask(ctx context.Context, taskID string) ([]domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

type taskRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
}

type ledger interface {
	Insert(ctx context.Context, e *domain.ActivityLog) error
}

type notifier interface {
	Publish(projectID string, sig domain.Signal)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the comment business logic.
type Service struct {
	log      *slog.Logger
	comments commentRepo
	tasks    taskRepo
	ledger   ledger
	notifier notifier
	tx       txManager
}

// NewService creates a new Comment service.
func NewService(logger *slog.Logger, comments commentRepo, tasks taskRepo, ledger ledger, notifier notifier, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "comment"),
		comments: comments,
		tasks:    tasks,
		ledger:   ledger,
		notifier: notifier,
		tx:       tx,
	}
}

func (s *Service) publish(entry *domain.ActivityLog, message string) {
	if entry.ProjectID == nil {
		return
	}
	s.notifier.Publish(*entry.ProjectID, domain.NewSignal(entry, message))
}
