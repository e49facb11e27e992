package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskhub/internal/domain"
	"taskhub/internal/permission"
	"taskhub/pkg/ctxutil"
)

// SetAssignee assigns a task to a display name, or clears the assignment
// when input.Assignee is nil. Clearing an already unassigned task still
// appends a ledger entry; the ledger records requests, not diffs.
func (s *Service) SetAssignee(ctx context.Context, input SetAssigneeInput) (*domain.Task, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !permission.For(identity.Role).CanAssignTask {
		return nil, fmt.Errorf("assign task: %w", domain.ErrForbidden)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.tasks.GetByID(ctx, input.TaskID)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("unassigned '%s'", current.Title)
	if input.Assignee != nil {
		message = fmt.Sprintf("assigned '%s' to %s", current.Title, *input.Assignee)
	}

	entry := &domain.ActivityLog{
		ID:        uuid.New(),
		ProjectID: current.ProjectID,
		User:      identity.Name,
		Message:   message,
		Type:      domain.ActivityTypeAssigneeUpdate,
		Timestamp: time.Now().UTC(),
	}

	var updated *domain.Task
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.tasks.SetAssignee(txCtx, current.ID, input.Assignee)
		if err != nil {
			return err
		}
		if err := s.ledger.Insert(txCtx, entry); err != nil {
			return fmt.Errorf("append activity: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.Info("task assignee changed", "task_id", current.ID, "user", identity.Email)
	s.publish(entry, entry.Message)

	return updated, nil
}
