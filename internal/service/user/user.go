package user

import (
	"context"
	"fmt"
	"time"

	"taskhub/internal/domain"
	"taskhub/internal/permission"
	"taskhub/pkg/ctxutil"
)

// List returns every account in the directory.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.users.List(ctx)
}

// Get returns a single account by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if id <= 0 {
		return nil, domain.NewValidationError("userId", "required")
	}
	return s.users.GetByID(ctx, id)
}

// UpdateRole changes an account's system role.
func (s *Service) UpdateRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !permission.For(identity.Role).CanManageUsers {
		return nil, fmt.Errorf("update role: %w", domain.ErrForbidden)
	}
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "invalid value")
	}

	updated, err := s.users.UpdateRole(ctx, id, role, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.log.Info("user role changed", "user_id", id, "role", role, "user", identity.Email)
	return updated, nil
}

// Delete removes an account. The user's project memberships go with it and
// their tasks are left in place but unassigned, matched by display name or
// email since assignment is free text.
func (s *Service) Delete(ctx context.Context, id int64) error {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !permission.For(identity.Role).CanManageUsers {
		return fmt.Errorf("delete user: %w", domain.ErrForbidden)
	}

	target, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	// Admin accounts must be demoted before removal so the system never
	// loses its last administrator.
	if target.Role == domain.RoleAdmin {
		return fmt.Errorf("delete user: admin account: %w", domain.ErrForbidden)
	}

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tasks.Unassign(txCtx, []string{target.Name, target.Email}); err != nil {
			return fmt.Errorf("unassign tasks: %w", err)
		}
		if err := s.members.RemoveByUser(txCtx, id); err != nil {
			return fmt.Errorf("remove memberships: %w", err)
		}
		return s.users.Delete(txCtx, id)
	})
	if txErr != nil {
		return txErr
	}

	s.log.Info("user deleted", "user_id", id, "user", identity.Email)
	return nil
}
