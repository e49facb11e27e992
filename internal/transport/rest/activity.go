package rest

import (
	"context"
	"log/slog"
	"net/http"

	"taskhub/internal/domain"
)

// activityService defines the minimal interface needed by ActivityHandler.
type activityService interface {
	Recent(ctx context.Context, projectID *string) ([]domain.ActivityLog, error)
}

// ActivityHandler serves the activity feed endpoint.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

// Recent handles GET /api/activity with an optional projectId query parameter.
func (h *ActivityHandler) Recent(w http.ResponseWriter, r *http.Request) {
	var projectID *string
	if p := r.URL.Query().Get("projectId"); p != "" {
		projectID = &p
	}

	entries, err := h.svc.Recent(r.Context(), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
