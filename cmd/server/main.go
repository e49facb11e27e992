// Command server runs the collaboration backend: the JSON API, the
// notification websocket hub, and database migrations on startup.
//
// Configuration comes from CONFIG_PATH (YAML) and environment variables;
// a .env file in the working directory is loaded first if present.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"taskhub/internal/app"
)

func main() {
	// Ignore the error: a missing .env file is the normal production case.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
