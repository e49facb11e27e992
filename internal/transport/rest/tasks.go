package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"taskhub/internal/domain"
	"taskhub/internal/service/task"
)

// taskService defines the minimal interface needed by TaskHandler.
type taskService interface {
	Create(ctx context.Context, input task.CreateInput) (*domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, projectID *string) ([]domain.Task, error)
	SetStatus(ctx context.Context, input task.SetStatusInput) (*domain.Task, error)
	SetAssignee(ctx context.Context, input task.SetAssigneeInput) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

// TaskHandler serves task REST endpoints.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "tasks")}
}

type createTaskRequest struct {
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	DueDate      *time.Time `json:"dueDate"`
	Assignee     *string    `json:"assignee"`
	ProjectID    *string    `json:"projectId"`
	ParentTaskID *string    `json:"parentTaskId"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type setAssigneeRequest struct {
	Assignee *string `json:"assignee"`
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), task.CreateInput{
		Title:        req.Title,
		Description:  req.Description,
		Status:       domain.TaskStatus(req.Status),
		Priority:     domain.TaskPriority(req.Priority),
		DueDate:      req.DueDate,
		Assignee:     req.Assignee,
		ProjectID:    req.ProjectID,
		ParentTaskID: req.ParentTaskID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	got, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, got)
}

// List handles GET /api/tasks with an optional projectId query parameter.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	var projectID *string
	if p := r.URL.Query().Get("projectId"); p != "" {
		projectID = &p
	}

	tasks, err := h.svc.List(r.Context(), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// SetStatus handles PATCH /api/tasks/{id}/status.
func (h *TaskHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.SetStatus(r.Context(), task.SetStatusInput{
		TaskID: r.PathValue("id"),
		Status: domain.TaskStatus(req.Status),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// SetAssignee handles PATCH /api/tasks/{id}/assignee.
func (h *TaskHandler) SetAssignee(w http.ResponseWriter, r *http.Request) {
	var req setAssigneeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.SetAssignee(r.Context(), task.SetAssigneeInput{
		TaskID:   r.PathValue("id"),
		Assignee: req.Assignee,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
