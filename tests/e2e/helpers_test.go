//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"taskhub/internal/adapter/postgres"
	activityrepo "taskhub/internal/adapter/postgres/activity"
	commentrepo "taskhub/internal/adapter/postgres/comment"
	memberrepo "taskhub/internal/adapter/postgres/member"
	projectrepo "taskhub/internal/adapter/postgres/project"
	taskrepo "taskhub/internal/adapter/postgres/task"
	"taskhub/internal/adapter/postgres/testhelper"
	userrepo "taskhub/internal/adapter/postgres/user"
	"taskhub/internal/auth"
	"taskhub/internal/config"
	"taskhub/internal/hub"
	activitysvc "taskhub/internal/service/activity"
	commentsvc "taskhub/internal/service/comment"
	projectsvc "taskhub/internal/service/project"
	tasksvc "taskhub/internal/service/task"
	usersvc "taskhub/internal/service/user"
	"taskhub/internal/transport/middleware"
	"taskhub/internal/transport/rest"
	"taskhub/internal/transport/ws"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *auth.JWTVerifier
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper). The database is wiped first,
// so each test starts from an empty system where the first synced user
// becomes Admin.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	testhelper.TruncateAll(t, pool)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	projects := projectrepo.New(pool)
	members := memberrepo.New(pool)
	tasks := taskrepo.New(pool)
	comments := commentrepo.New(pool)
	entries := activityrepo.New(pool)

	notifications := hub.New(logger, 16)

	taskService := tasksvc.NewService(logger, tasks, comments, entries, notifications, txm)
	projectService := projectsvc.NewService(logger, projects, members, tasks, entries, notifications, txm)
	commentService := commentsvc.NewService(logger, comments, tasks, entries, notifications, txm)
	activityService := activitysvc.NewService(logger, entries)
	userService := usersvc.NewService(logger, users, members, tasks, txm)

	verifier := auth.NewJWTVerifier("test-secret-at-least-32-chars-long!!", "test-issuer")

	hubCfg := config.HubConfig{
		SendBuffer:   16,
		WriteTimeout: 2 * time.Second,
		PingInterval: 30 * time.Second,
		ReadLimit:    4096,
	}

	mux := rest.NewRouter(rest.Handlers{
		Tasks:        rest.NewTaskHandler(taskService, logger),
		Projects:     rest.NewProjectHandler(projectService, logger),
		Comments:     rest.NewCommentHandler(commentService, logger),
		Activity:     rest.NewActivityHandler(activityService, logger),
		Users:        rest.NewUserHandler(userService, logger),
		Capabilities: rest.NewCapabilityHandler(logger),
		Health:       rest.NewHealthHandler(pool, "e2e"),
		Hub:          ws.NewHandler(notifications, hubCfg, logger).Serve,
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Auth(verifier, users),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    verifier,
	}
}

// tokenFor signs a short-lived bearer token for the given synthetic identity.
func (s *testServer) tokenFor(t *testing.T, email, name string) string {
	t.Helper()

	token, err := s.jwt.Sign(auth.Claims{Email: email, Name: name}, 15*time.Minute)
	require.NoError(t, err)
	return token
}

// do issues a JSON request with the given bearer token and decodes the
// response body into out when out is non-nil.
func (s *testServer) do(t *testing.T, method, path, token string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		if len(raw) > 0 {
			require.NoError(t, json.Unmarshal(raw, out),
				"decode %s %s response: %s", method, path, string(raw))
		}
	}
	return resp.StatusCode
}

// syncUser registers an identity through the sync endpoint and returns its
// bearer token for subsequent requests.
func (s *testServer) syncUser(t *testing.T, email, name string) string {
	t.Helper()

	token := s.tokenFor(t, email, name)
	status := s.do(t, http.MethodPost, "/api/auth/sync-user", token, nil, nil)
	require.Equal(t, http.StatusOK, status, "sync-user for %s", email)
	return token
}
