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

// Create creates a task and records the creation in the activity ledger.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Task, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !permission.For(identity.Role).CanCreateTask {
		return nil, fmt.Errorf("create task: %w", domain.ErrForbidden)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusToDo
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}

	creator := identity.Name
	task := &domain.Task{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		Status:       status,
		Priority:     priority,
		DueDate:      input.DueDate,
		Assignee:     input.Assignee,
		ProjectID:    input.ProjectID,
		Creator:      &creator,
		ParentTaskID: input.ParentTaskID,
	}

	entry := &domain.ActivityLog{
		ID:        uuid.New(),
		ProjectID: input.ProjectID,
		User:      identity.Name,
		Message:   fmt.Sprintf("created task: %s", input.Title),
		Type:      domain.ActivityTypeTaskCreated,
		Timestamp: time.Now().UTC(),
	}

	var created *domain.Task
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.tasks.Create(txCtx, task)
		if err != nil {
			return fmt.Errorf("create task: %w", err)
		}
		if err := s.ledger.Insert(txCtx, entry); err != nil {
			return fmt.Errorf("append activity: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.Info("task created", "task_id", created.ID, "user", identity.Email)
	s.publish(entry, entry.Message)

	return created, nil
}
