// Command server runs the inventory tracker HTTP API.
//
// Configuration is read from config.yaml (path via CONFIG_PATH) with
// environment variable overrides. Requires DATABASE_DSN and
// AUTH_JWT_SECRET to be set.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/avoronin/stockpile-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
