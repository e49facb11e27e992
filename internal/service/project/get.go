package project

import (
	"context"

	"taskhub/internal/domain"
	"taskhub/internal/permission"
	"taskhub/pkg/ctxutil"
)

// Get returns a single project by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Project, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == "" {
		return nil, domain.NewValidationError("projectId", "required")
	}
	return s.projects.GetByID(ctx, id)
}

// List returns the projects visible to the caller. Roles with analytics
// rights see every project; everyone else sees projects they are a member of
// or created.
func (s *Service) List(ctx context.Context) ([]domain.Project, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if permission.For(identity.Role).CanViewAnalytics {
		return s.projects.ListAll(ctx)
	}
	return s.projects.ListForUser(ctx, identity.UserID, identity.Name, identity.Email)
}
