package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/planner-api/internal/platform/postgres"
)

// handleMigrations runs a single goose command against db. Every log line
// of the run carries the same correlation ID.
func handleMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	migrationLogger := logger.With(
		"correlation_id", uuid.New().String(),
		"component", "migrations",
		"command", command,
	)

	migrationLogger.Info("Executing migrations")
	if err := postgres.Migrate(ctx, db, command, migrationLogger); err != nil {
		return fmt.Errorf("migration %q failed: %w", command, err)
	}
	migrationLogger.Info("Migrations finished")
	return nil
}
