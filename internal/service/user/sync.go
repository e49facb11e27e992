package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskhub/internal/domain"
)

// SyncInput holds the verified identity claims for a sync.
type SyncInput struct {
	Email          string
	Name           string
	ProfilePicture *string
}

// Validate checks all fields and collects all errors.
func (i *SyncInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Sync upserts the account for a verified external identity. The very first
// account in the system becomes Admin; everyone after that starts as
// TeamMember. An existing account only gets its display name refreshed, the
// role is never touched on sync.
func (s *Service) Sync(ctx context.Context, input SyncInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case err == nil:
		if existing.Name == input.Name {
			return existing, nil
		}
		return s.users.UpdateName(ctx, existing.ID, input.Name, time.Now().UTC())
	case errors.Is(err, domain.ErrNotFound):
		// fall through to creation
	default:
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	var created *domain.User
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		count, err := s.users.Count(txCtx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}

		role := domain.RoleTeamMember
		if count == 0 {
			role = domain.RoleAdmin
		}

		now := time.Now().UTC()
		created, err = s.users.Create(txCtx, &domain.User{
			Email:          input.Email,
			Name:           input.Name,
			ProfilePicture: input.ProfilePicture,
			Role:           role,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if txErr != nil {
		// A concurrent sync may have created the account between the lookup
		// and the insert; serve the winner's row.
		if errors.Is(txErr, domain.ErrAlreadyExists) {
			return s.users.GetByEmail(ctx, input.Email)
		}
		return nil, txErr
	}

	s.log.Info("user synced", "user_id", created.ID, "email", created.Email, "role", created.Role)
	return created, nil
}
