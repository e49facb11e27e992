// Package task implements the task board business logic: creation, the
// status state machine with parent gating, assignment and deletion.
package task

import (
	"context"
	"log/slog"

	"taskhub/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type taskRepo interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, projectID *string) ([]domain.Task, error)
	CompareAndSetStatus(ctx context.Context, id string, expected, next domain.TaskStatus) error
	SetAssignee(ctx context.Context, id string, assignee *string) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type commentRepo interface {
	DeleteByTask(ctx context.Context, taskID string) error
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

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the task business logic.
type Service struct {
	log      *slog.Logger
	tasks    taskRepo
	comments commentRepo
	ledger   ledger
	notifier notifier
	tx       txManager
}

// NewService creates a new Task service.
func NewService(logger *slog.Logger, tasks taskRepo, comments commentRepo, ledger ledger, notifier notifier, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "task"),
		tasks:    tasks,
		comments: comments,
		ledger:   ledger,
		notifier: notifier,
		tx:       tx,
	}
}

// publish fans a ledger entry out to the project group. Delivery is best
// effort: the mutation already committed, so a dead hub only costs the toast.
func (s *Service) publish(entry *domain.ActivityLog, message string) {
	if entry.ProjectID == nil {
		return
	}
	s.notifier.Publish(*entry.ProjectID, domain.NewSignal(entry, message))
}
