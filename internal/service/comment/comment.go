package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskhub/internal/domain"
	"taskhub/internal/permission"
	"taskhub/pkg/ctxutil"
)

// CreateInput holds the parameters for commenting on a task.
type CreateInput struct {
	TaskID string
	Text   string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.TaskID == "" {
		errs = append(errs, domain.FieldError{Field: "taskId", Message: "required"})
	}
	if i.Text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if len(i.Text) > 5000 {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long (max 5000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Create adds a comment to a task and records it in the activity ledger.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Comment, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !permission.For(identity.Role).CanManageDocuments {
		return nil, fmt.Errorf("comment: %w", domain.ErrForbidden)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	task, err := s.tasks.GetByID(ctx, input.TaskID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		ID:        uuid.NewString(),
		TaskID:    task.ID,
		Text:      input.Text,
		Author:    identity.Name,
		CreatedAt: now,
	}

	entry := &domain.ActivityLog{
		ID:        uuid.New(),
		ProjectID: task.ProjectID,
		User:      identity.Name,
		Message:   fmt.Sprintf("commented on '%s': %s", task.Title, input.Text),
		Type:      domain.ActivityTypeComment,
		Timestamp: now,
	}

	var created *domain.Comment
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.comments.Create(txCtx, comment)
		if err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
		if err := s.ledger.Insert(txCtx, entry); err != nil {
			return fmt.Errorf("append activity: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.Info("comment created", "task_id", task.ID, "user", identity.Email)
	// The toast names the author but never carries the comment body.
	s.publish(entry, fmt.Sprintf("%s commented on %s", identity.Name, task.Title))

	return created, nil
}

// ListByTask returns a task's comments oldest first.
func (s *Service) ListByTask(ctx context.Context, taskID string) ([]domain.Comment, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if taskID == "" {
		return nil, domain.NewValidationError("taskId", "required")
	}
	return s.comments.ListByTask(ctx, taskID)
}

// Delete removes a comment. Deletions are not ledgered.
func (s *Service) Delete(ctx context.Context, id string) error {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !permission.For(identity.Role).CanManageDocuments {
		return fmt.Errorf("delete comment: %w", domain.ErrForbidden)
	}
	if id == "" {
		return domain.NewValidationError("commentId", "required")
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("comment deleted", "comment_id", id, "user", identity.Email)
	return nil
}
