package task

import (
	"context"
	"fmt"

	"taskhub/internal/domain"
	"taskhub/internal/permission"
	"taskhub/pkg/ctxutil"
)

// Delete removes a task and its comments. Deletion is not recorded in the
// activity ledger and nothing is broadcast; the ledger tracks work on tasks,
// not their removal.
func (s *Service) Delete(ctx context.Context, id string) error {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !permission.For(identity.Role).CanDeleteTask {
		return fmt.Errorf("delete task: %w", domain.ErrForbidden)
	}
	if id == "" {
		return domain.NewValidationError("taskId", "required")
	}

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.comments.DeleteByTask(txCtx, id); err != nil {
			return fmt.Errorf("delete task comments: %w", err)
		}
		return s.tasks.Delete(txCtx, id)
	})
	if txErr != nil {
		return txErr
	}

	s.log.Info("task deleted", "task_id", id, "user", identity.Email)
	return nil
}
