package project

import "taskhub/internal/domain"

// CreateInput holds the parameters for creating a project.
// MemberIDs are the users joined at creation time; the creator becomes a
// member regardless of whether they appear in the list.
type CreateInput struct {
	Name        string
	Description *string
	Tags        *string
	MemberIDs   []int64
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 200)"})
	}
	if i.Description != nil && len(*i.Description) > 5000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 5000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddMemberInput holds the parameters for adding a project member.
type AddMemberInput struct {
	ProjectID string
	UserID    int64
	Role      domain.MemberRole
}

// Validate checks all fields and collects all errors.
func (i *AddMemberInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == "" {
		errs = append(errs, domain.FieldError{Field: "projectId", Message: "required"})
	}
	if i.UserID <= 0 {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}
	if i.Role != "" && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
