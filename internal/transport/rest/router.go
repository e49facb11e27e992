package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Tasks        *TaskHandler
	Projects     *ProjectHandler
	Comments     *CommentHandler
	Activity     *ActivityHandler
	Users        *UserHandler
	Capabilities *CapabilityHandler
	Health       *HealthHandler
	Hub          http.HandlerFunc
}

// NewRouter mounts all routes on a fresh mux. Middleware wrapping is the
// caller's job.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /live", h.Health.Live)

	mux.HandleFunc("POST /api/auth/sync-user", h.Users.Sync)
	mux.HandleFunc("GET /api/capabilities", h.Capabilities.Get)

	mux.HandleFunc("GET /api/users", h.Users.List)
	mux.HandleFunc("GET /api/users/me", h.Users.Me)
	mux.HandleFunc("GET /api/users/{id}", h.Users.Get)
	mux.HandleFunc("PATCH /api/users/{id}/role", h.Users.UpdateRole)
	mux.HandleFunc("DELETE /api/users/{id}", h.Users.Delete)

	mux.HandleFunc("POST /api/projects", h.Projects.Create)
	mux.HandleFunc("GET /api/projects", h.Projects.List)
	mux.HandleFunc("GET /api/projects/{id}", h.Projects.Get)
	mux.HandleFunc("DELETE /api/projects/{id}", h.Projects.Delete)
	mux.HandleFunc("POST /api/projects/{id}/members", h.Projects.AddMember)
	mux.HandleFunc("GET /api/projects/{id}/members", h.Projects.ListMembers)
	mux.HandleFunc("DELETE /api/projects/{id}/members/{userId}", h.Projects.RemoveMember)

	mux.HandleFunc("POST /api/tasks", h.Tasks.Create)
	mux.HandleFunc("GET /api/tasks", h.Tasks.List)
	mux.HandleFunc("GET /api/tasks/{id}", h.Tasks.Get)
	mux.HandleFunc("DELETE /api/tasks/{id}", h.Tasks.Delete)
	mux.HandleFunc("PATCH /api/tasks/{id}/status", h.Tasks.SetStatus)
	mux.HandleFunc("PATCH /api/tasks/{id}/assignee", h.Tasks.SetAssignee)

	mux.HandleFunc("POST /api/comments", h.Comments.Create)
	mux.HandleFunc("GET /api/comments", h.Comments.ListByTask)
	mux.HandleFunc("DELETE /api/comments/{id}", h.Comments.Delete)

	mux.HandleFunc("GET /api/activity", h.Activity.Recent)

	if h.Hub != nil {
		mux.HandleFunc("GET /hubs/notifications", h.Hub)
	}

	return mux
}
