package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskhub/internal/domain"
	"taskhub/internal/permission"
	"taskhub/pkg/ctxutil"
)

// Create creates a project, enrolls the creator as Owner plus the selected
// members, and records the creation in the activity ledger.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Project, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !permission.For(identity.Role).CanCreateProject {
		return nil, fmt.Errorf("create project: %w", domain.ErrForbidden)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	creator := identity.Name
	project := &domain.Project{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Status:      domain.ProjectStatusActive,
		Creator:     &creator,
		Tags:        input.Tags,
	}

	now := time.Now().UTC()
	entry := &domain.ActivityLog{
		ID:        uuid.New(),
		ProjectID: &project.ID,
		User:      identity.Name,
		Message:   fmt.Sprintf("created a new project: %s", input.Name),
		Type:      domain.ActivityTypeProjectCreated,
		Timestamp: now,
	}

	var created *domain.Project
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.projects.Create(txCtx, project)
		if err != nil {
			return fmt.Errorf("create project: %w", err)
		}

		if err := s.members.Ensure(txCtx, &domain.ProjectMember{
			ProjectID: created.ID,
			UserID:    identity.UserID,
			Role:      domain.MemberRoleOwner,
			JoinedAt:  now,
		}); err != nil {
			return fmt.Errorf("enroll creator: %w", err)
		}

		for _, userID := range input.MemberIDs {
			if userID == identity.UserID {
				continue
			}
			if err := s.members.Ensure(txCtx, &domain.ProjectMember{
				ProjectID: created.ID,
				UserID:    userID,
				Role:      domain.MemberRoleMember,
				JoinedAt:  now,
			}); err != nil {
				return fmt.Errorf("enroll member %d: %w", userID, err)
			}
		}

		if err := s.ledger.Insert(txCtx, entry); err != nil {
			return fmt.Errorf("append activity: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.Info("project created", "project_id", created.ID, "user", identity.Email)
	s.publish(entry, entry.Message)

	return created, nil
}
