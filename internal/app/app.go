// Package app wires configuration, storage, services, and transport
// together and runs the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/avoronin/stockpile-backend/internal/adapter/postgres"
	invrepo "github.com/avoronin/stockpile-backend/internal/adapter/postgres/inventory"
	userrepo "github.com/avoronin/stockpile-backend/internal/adapter/postgres/user"
	authcodec "github.com/avoronin/stockpile-backend/internal/auth"
	"github.com/avoronin/stockpile-backend/internal/config"
	authsvc "github.com/avoronin/stockpile-backend/internal/service/auth"
	invsvc "github.com/avoronin/stockpile-backend/internal/service/inventory"
	"github.com/avoronin/stockpile-backend/internal/transport/middleware"
	"github.com/avoronin/stockpile-backend/internal/transport/rest"
	"github.com/avoronin/stockpile-backend/migrations"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, connects to the database, wires services and handlers, and
// serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS); err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	items := invrepo.New(pool)
	users := userrepo.New(pool)

	tokens := authcodec.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	hasher := authcodec.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	authService := authsvc.NewService(logger, users, tokens, hasher)
	inventoryService := invsvc.NewService(logger, items)

	router := rest.NewRouter(
		rest.NewAuthHandler(authService, logger),
		rest.NewInventoryHandler(inventoryService, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
	)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
