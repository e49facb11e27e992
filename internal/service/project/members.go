package project

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskhub/internal/domain"
	"taskhub/internal/permission"
	"taskhub/pkg/ctxutil"
)

// AddMember enrolls a user into a project. Adding a user who is already a
// member returns domain.ErrConflict.
func (s *Service) AddMember(ctx context.Context, input AddMemberInput) (*domain.ProjectMember, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !permission.For(identity.Role).CanCreateProject {
		return nil, fmt.Errorf("add member: %w", domain.ErrForbidden)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.projects.GetByID(ctx, input.ProjectID); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.MemberRoleMember
	}

	added, err := s.members.Add(ctx, &domain.ProjectMember{
		ProjectID: input.ProjectID,
		UserID:    input.UserID,
		Role:      role,
		JoinedAt:  time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("user %d already in project %s: %w", input.UserID, input.ProjectID, domain.ErrConflict)
		}
		return nil, err
	}

	s.log.Info("member added", "project_id", input.ProjectID, "member", input.UserID, "user", identity.Email)
	return added, nil
}

// RemoveMember removes a user from a project.
func (s *Service) RemoveMember(ctx context.Context, projectID string, userID int64) error {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !permission.For(identity.Role).CanCreateProject {
		return fmt.Errorf("remove member: %w", domain.ErrForbidden)
	}
	if projectID == "" || userID <= 0 {
		return domain.NewValidationError("projectId", "required")
	}

	if err := s.members.Remove(ctx, projectID, userID); err != nil {
		return err
	}

	s.log.Info("member removed", "project_id", projectID, "member", userID, "user", identity.Email)
	return nil
}

// ListMembers returns a project's members with their profiles.
func (s *Service) ListMembers(ctx context.Context, projectID string) ([]domain.ProjectMemberInfo, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if projectID == "" {
		return nil, domain.NewValidationError("projectId", "required")
	}

	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.members.ListByProject(ctx, projectID)
}
