package project

import (
	"context"
	"fmt"

	"taskhub/internal/domain"
	"taskhub/internal/permission"
	"taskhub/pkg/ctxutil"
)

// Delete removes a project together with its tasks and memberships.
// Removal is not recorded in the ledger and nothing is broadcast.
func (s *Service) Delete(ctx context.Context, id string) error {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !permission.For(identity.Role).CanDeleteProject {
		return fmt.Errorf("delete project: %w", domain.ErrForbidden)
	}
	if id == "" {
		return domain.NewValidationError("projectId", "required")
	}

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tasks.DeleteByProject(txCtx, id); err != nil {
			return fmt.Errorf("delete project tasks: %w", err)
		}
		if err := s.members.RemoveByProject(txCtx, id); err != nil {
			return fmt.Errorf("delete project members: %w", err)
		}
		return s.projects.Delete(txCtx, id)
	})
	if txErr != nil {
		return txErr
	}

	s.log.Info("project deleted", "project_id", id, "user", identity.Email)
	return nil
}
