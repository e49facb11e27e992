package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"taskhub/internal/domain"
	"taskhub/internal/service/user"
	"taskhub/pkg/ctxutil"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	Sync(ctx context.Context, input user.SyncInput) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	UpdateRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserHandler serves user REST endpoints, including identity sync.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "users")}
}

type syncUserRequest struct {
	ProfilePicture *string `json:"profilePicture"`
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

// Sync handles POST /api/auth/sync-user. The identity comes from the verified
// token on the request, the body may carry an optional profile picture URL.
func (h *UserHandler) Sync(w http.ResponseWriter, r *http.Request) {
	identity, ok := ctxutil.IdentityFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req syncUserRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	synced, err := h.svc.Sync(r.Context(), user.SyncInput{
		Email:          identity.Email,
		Name:           identity.Name,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, synced)
}

// Me handles GET /api/users/me. A verified identity that has not synced yet
// has no account row and gets a 404.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := ctxutil.IdentityFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if identity.UserID == 0 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	me, err := h.svc.Get(r.Context(), identity.UserID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, me)
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	got, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, got)
}

// UpdateRole handles PATCH /api/users/{id}/role.
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateRole(r.Context(), id, domain.Role(req.Role))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
