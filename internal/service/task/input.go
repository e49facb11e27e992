package task

import (
	"time"

	"taskhub/internal/domain"
)

// CreateInput holds the parameters for creating a task.
type CreateInput struct {
	Title        string
	Description  *string
	Status       domain.TaskStatus
	Priority     domain.TaskPriority
	DueDate      *time.Time
	Assignee     *string
	ProjectID    *string
	ParentTaskID *string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 200)"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if i.Description != nil && len(*i.Description) > 5000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 5000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SetStatusInput holds the parameters for a status transition.
type SetStatusInput struct {
	TaskID string
	Status domain.TaskStatus
}

// Validate checks all fields and collects all errors.
func (i *SetStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.TaskID == "" {
		errs = append(errs, domain.FieldError{Field: "taskId", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SetAssigneeInput holds the parameters for assigning a task.
// A nil Assignee clears the assignment.
type SetAssigneeInput struct {
	TaskID   string
	Assignee *string
}

// Validate checks all fields and collects all errors.
func (i *SetAssigneeInput) Validate() error {
	var errs []domain.FieldError

	if i.TaskID == "" {
		errs = append(errs, domain.FieldError{Field: "taskId", Message: "required"})
	}
	if i.Assignee != nil && *i.Assignee == "" {
		errs = append(errs, domain.FieldError{Field: "assignee", Message: "must be a name or null"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
