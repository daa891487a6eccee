// Package main implements the entry point for the planner API server,
// which tracks users' projects and tasks and plans them deadline-first.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/planner-api/internal/config"
	"github.com/phrazzld/planner-api/internal/platform/logger"
	"github.com/phrazzld/planner-api/internal/redact"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"Run a database migration command (up, down, status, version, reset, redo) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		slog.Error("Server exited with error", "error", redact.Error(err))
		os.Exit(1)
	}
}

// run loads configuration, connects to the database and either applies a
// migration command or serves HTTP until SIGINT/SIGTERM.
func run(migrateCmd string) error {
	cfg, log, err := initializeApp()
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if migrateCmd != "" {
		defer closeDB(db, log)
		return handleMigrations(ctx, db, migrateCmd, log)
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		closeDB(db, log)
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)
	log.Debug("Database configuration", "url", redact.String(cfg.Database.URL))

	return cfg, log, nil
}
