// Package app wires configuration, storage, services, and transports into a
// running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"taskhub/internal/adapter/postgres"
	activityrepo "taskhub/internal/adapter/postgres/activity"
	commentrepo "taskhub/internal/adapter/postgres/comment"
	memberrepo "taskhub/internal/adapter/postgres/member"
	projectrepo "taskhub/internal/adapter/postgres/project"
	taskrepo "taskhub/internal/adapter/postgres/task"
	userrepo "taskhub/internal/adapter/postgres/user"
	"taskhub/internal/auth"
	"taskhub/internal/config"
	"taskhub/internal/hub"
	"taskhub/internal/service/activity"
	"taskhub/internal/service/comment"
	"taskhub/internal/service/project"
	"taskhub/internal/service/task"
	"taskhub/internal/service/user"
	"taskhub/internal/transport/middleware"
	"taskhub/internal/transport/rest"
	"taskhub/internal/transport/ws"
)

// Run is the application entry point. It blocks until ctx is cancelled,
// then drains in-flight requests before returning.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("database migrations applied")
	}

	users := userrepo.New(pool)
	projects := projectrepo.New(pool)
	members := memberrepo.New(pool)
	tasks := taskrepo.New(pool)
	comments := commentrepo.New(pool)
	entries := activityrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	notifications := hub.New(logger, cfg.Hub.SendBuffer)

	taskSvc := task.NewService(logger, tasks, comments, entries, notifications, tx)
	projectSvc := project.NewService(logger, projects, members, tasks, entries, notifications, tx)
	commentSvc := comment.NewService(logger, comments, tasks, entries, notifications, tx)
	activitySvc := activity.NewService(logger, entries)
	userSvc := user.NewService(logger, users, members, tasks, tx)

	verifier := auth.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	mux := rest.NewRouter(rest.Handlers{
		Tasks:        rest.NewTaskHandler(taskSvc, logger),
		Projects:     rest.NewProjectHandler(projectSvc, logger),
		Comments:     rest.NewCommentHandler(commentSvc, logger),
		Activity:     rest.NewActivityHandler(activitySvc, logger),
		Users:        rest.NewUserHandler(userSvc, logger),
		Capabilities: rest.NewCapabilityHandler(logger),
		Health:       rest.NewHealthHandler(pool, Version),
		Hub:          ws.NewHandler(notifications, cfg.Hub, logger).Serve,
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(verifier, users),
	)(mux)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	// Read/Write timeouts stay unset: they would sever long-lived websocket
	// connections. The websocket handler enforces its own deadlines.
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
