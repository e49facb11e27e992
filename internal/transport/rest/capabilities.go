package rest

import (
	"log/slog"
	"net/http"

	"taskhub/internal/permission"
	"taskhub/pkg/ctxutil"
)

// CapabilityHandler exposes the caller's capability set.
type CapabilityHandler struct {
	log *slog.Logger
}

// NewCapabilityHandler creates a CapabilityHandler.
func NewCapabilityHandler(logger *slog.Logger) *CapabilityHandler {
	return &CapabilityHandler{log: logger.With("handler", "capabilities")}
}

type capabilitiesResponse struct {
	Role         string                  `json:"role"`
	Capabilities permission.Capabilities `json:"capabilities"`
}

// Get handles GET /api/capabilities. Callers without a role, including
// verified identities that have not synced yet, receive an empty set.
func (h *CapabilityHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := ctxutil.IdentityFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	writeJSON(w, http.StatusOK, capabilitiesResponse{
		Role:         string(identity.Role),
		Capabilities: permission.For(identity.Role),
	})
}
