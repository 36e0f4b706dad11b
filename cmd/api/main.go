// Command api runs the auto service HTTP backend: it loads config,
// wires logging and the database, applies migrations, and serves the
// API until interrupted.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wrenchworks/autoservice/internal/config"
	"github.com/wrenchworks/autoservice/internal/database"
	"github.com/wrenchworks/autoservice/internal/handler"
	loggerPkg "github.com/wrenchworks/autoservice/internal/logger"
	"github.com/wrenchworks/autoservice/internal/middleware"
	"github.com/wrenchworks/autoservice/internal/repository"
	"github.com/wrenchworks/autoservice/internal/router"
	"github.com/wrenchworks/autoservice/internal/server"
	"github.com/wrenchworks/autoservice/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	loggerService, err := loggerPkg.NewLoggerService(cfg)
	if err != nil {
		return fmt.Errorf("initializing logger service: %w", err)
	}

	logger := loggerPkg.New(cfg, loggerService)

	// Migrations run before the pool is opened for traffic; a schema
	// mismatch should fail the boot, not the first query.
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelMigrate()
	if err := database.Migrate(migrateCtx, logger, cfg); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	s, err := server.New(cfg, logger, loggerService)
	if err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	middlewares := middleware.NewMiddlewares(s)
	repos := repository.NewRepositories(s)

	services, err := service.NewService(s, repos)
	if err != nil {
		return fmt.Errorf("initializing services: %w", err)
	}

	handlers := handler.NewHandlers(s, services)

	e := router.New(s, middlewares, handlers)
	s.SetupHTTPServer(e)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	logger.Info().Msg("shutdown complete")
	return nil
}
