// Package project implements project lifecycle and membership management.
package project

import (
	"context"
	"log/slog"

	"taskhub/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type projectRepo interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	ListAll(ctx context.Context) ([]domain.Project, error)
	ListForUser(ctx context.Context, userID int64, name, email string) ([]domain.Project, error)
	Delete(ctx context.Context, id string) error
}

type memberRepo interface {
	Add(ctx context.Context, m *domain.ProjectMember) (*domain.ProjectMember, error)
	Ensure(ctx context.Context, m *domain.ProjectMember) error
	ListByProject(ctx context.Context, projectID string) ([]domain.ProjectMemberInfo, error)
	Remove(ctx context.Context, projectID string, userID int64) error
	RemoveByProject(ctx context.Context, projectID string) error
}

type taskRepo interface {
	DeleteByProject(ctx context.Context, projectID string) error
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

// Service implements the project business logic.
type Service struct {
	log      *slog.Logger
	projects projectRepo
	members  memberRepo
	tasks    taskRepo
	ledger   ledger
	notifier notifier
	tx       txManager
}

// NewService creates a new Project service.
func NewService(logger *slog.Logger, projects projectRepo, members memberRepo, tasks taskRepo, ledger ledger, notifier notifier, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "project"),
		projects: projects,
		members:  members,
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
