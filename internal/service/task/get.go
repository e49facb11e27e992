package task

import (
	"context"

	"taskhub/internal/domain"
	"taskhub/pkg/ctxutil"
)

// Get returns a single task by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Task, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == "" {
		return nil, domain.NewValidationError("taskId", "required")
	}
	return s.tasks.GetByID(ctx, id)
}

// List returns tasks, optionally scoped to one project.
func (s *Service) List(ctx context.Context, projectID *string) ([]domain.Task, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.tasks.List(ctx, projectID)
}
