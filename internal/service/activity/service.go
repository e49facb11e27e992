// Package activity serves the recent activity feed from the ledger.
package activity

import (
	"context"
	"log/slog"

	"taskhub/internal/domain"
	"taskhub/pkg/ctxutil"
)

// feedLimit caps the feed regardless of what the client asks for.
const feedLimit = 20

type activityRepo interface {
	Recent(ctx context.Context, projectID *string, limit int) ([]domain.ActivityLog, error)
}

// Service implements the activity feed business logic.
type Service struct {
	log     *slog.Logger
	entries activityRepo
}

// NewService creates a new Activity service.
func NewService(logger *slog.Logger, entries activityRepo) *Service {
	return &Service{
		log:     logger.With("service", "activity"),
		entries: entries,
	}
}

// Recent returns the newest ledger entries, newest first, optionally scoped
// to one project. At most 20 entries are returned.
func (s *Service) Recent(ctx context.Context, projectID *string) ([]domain.ActivityLog, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.entries.Recent(ctx, projectID, feedLimit)
}
