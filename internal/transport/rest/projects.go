package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"taskhub/internal/domain"
	"taskhub/internal/service/project"
)

// projectService defines the minimal interface needed by ProjectHandler.
type projectService interface {
	Create(ctx context.Context, input project.CreateInput) (*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Delete(ctx context.Context, id string) error
	AddMember(ctx context.Context, input project.AddMemberInput) (*domain.ProjectMember, error)
	RemoveMember(ctx context.Context, projectID string, userID int64) error
	ListMembers(ctx context.Context, projectID string) ([]domain.ProjectMemberInfo, error)
}

// ProjectHandler serves project REST endpoints.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "projects")}
}

type createProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Tags        *string `json:"tags"`
	MemberIDs   []int64 `json:"memberIds"`
}

type addMemberRequest struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), project.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Tags:        req.Tags,
		MemberIDs:   req.MemberIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	got, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, got)
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// Delete handles DELETE /api/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddMember handles POST /api/projects/{id}/members.
func (h *ProjectHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	role := domain.MemberRole(req.Role)
	if role == "" {
		role = domain.MemberRoleMember
	}

	member, err := h.svc.AddMember(r.Context(), project.AddMemberInput{
		ProjectID: r.PathValue("id"),
		UserID:    req.UserID,
		Role:      role,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

// RemoveMember handles DELETE /api/projects/{id}/members/{userId}.
func (h *ProjectHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.svc.RemoveMember(r.Context(), r.PathValue("id"), userID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListMembers handles GET /api/projects/{id}/members.
func (h *ProjectHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.ListMembers(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}
