package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMigrations_RejectsUnknownCommand(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err = handleMigrations(context.Background(), db, "explode", logger)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `migration "explode" failed`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
