package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskhub/internal/domain"
	"taskhub/pkg/ctxutil"
)

// SetStatus transitions a task to a new board status.
//
// A task with an unfinished parent is locked: it cannot leave ToDo until the
// parent reaches Done. Only the direct parent is consulted; a parent link
// pointing at a deleted task gates nothing. The write itself is a
// compare-and-set against the status the decision was made on, so two racing
// transitions cannot both win.
func (s *Service) SetStatus(ctx context.Context, input SetStatusInput) (*domain.Task, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.tasks.GetByID(ctx, input.TaskID)
	if err != nil {
		return nil, err
	}

	// The gate applies to every move, even one restating the current status:
	// a child can sit in InProgress while its parent was reopened to ToDo,
	// and confirming that status must still come back Locked.
	if input.Status != domain.TaskStatusToDo && current.ParentTaskID != nil {
		parent, perr := s.tasks.GetByID(ctx, *current.ParentTaskID)
		switch {
		case perr == nil:
			if parent.Status != domain.TaskStatusDone {
				return nil, fmt.Errorf("task %s: parent %q is %s: %w",
					current.ID, parent.Title, parent.Status, domain.ErrLocked)
			}
		case errors.Is(perr, domain.ErrNotFound):
			// Dangling link, the prerequisite no longer exists.
		default:
			return nil, fmt.Errorf("load parent: %w", perr)
		}
	}

	entry := &domain.ActivityLog{
		ID:        uuid.New(),
		ProjectID: current.ProjectID,
		User:      identity.Name,
		Message:   fmt.Sprintf("moved '%s' to %s", current.Title, input.Status),
		Type:      domain.ActivityTypeStatusUpdate,
		Timestamp: time.Now().UTC(),
	}

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tasks.CompareAndSetStatus(txCtx, current.ID, current.Status, input.Status); err != nil {
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

	s.log.Info("task status changed",
		"task_id", current.ID, "from", current.Status, "to", input.Status, "user", identity.Email)
	s.publish(entry, entry.Message)

	updated := *current
	updated.Status = input.Status
	return &updated, nil
}
