package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog is one row of the append-only activity ledger. Rows are never
// updated or deleted; the ledger is the source of truth for the recent
// activity feed and the anchor for broadcast signals.
type ActivityLog struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	ProjectID *string      `json:"projectId" db:"project_id"`
	User      string       `json:"user" db:"user_name"`
	Message   string       `json:"message" db:"message"`
	Type      ActivityType `json:"type" db:"type"`
	Timestamp time.Time    `json:"timestamp" db:"timestamp"`
}
