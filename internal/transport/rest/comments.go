package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"taskhub/internal/domain"
	"taskhub/internal/service/comment"
)

// commentService defines the minimal interface needed by CommentHandler.
type commentService interface {
	Create(ctx context.Context, input comment.CreateInput) (*domain.Comment, error)
	ListByTask(ctx context.Context, taskID string) ([]domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

// CommentHandler serves comment REST endpoints.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comments")}
}

type createCommentRequest struct {
	TaskID string `json:"taskId"`
	Text   string `json:"text"`
}

// Create handles POST /api/comments.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), comment.CreateInput{
		TaskID: req.TaskID,
		Text:   req.Text,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListByTask handles GET /api/comments with a required taskId query parameter.
func (h *CommentHandler) ListByTask(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get("taskId")
	if taskID == "" {
		writeError(w, http.StatusBadRequest, "taskId query parameter is required")
		return
	}

	comments, err := h.svc.ListByTask(r.Context(), taskID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// Delete handles DELETE /api/comments/{id}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
