//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/planner-api/internal/domain"
	"github.com/phrazzld/planner-api/internal/store"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := sql.Open("pgx", url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(context.Background(), db, "up", nil))
	return db
}

// withTx runs fn in a transaction that is always rolled back.
func withTx(t *testing.T, db *sql.DB, fn func(tx *sql.Tx)) {
	t.Helper()
	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()
	fn(tx)
}

func TestIntegration_ProjectLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	withTx(t, db, func(tx *sql.Tx) {
		users := NewPostgresUserStore(tx, nil)
		projects := NewPostgresProjectStore(tx, nil)
		tasks := NewPostgresTaskStore(tx, nil)

		user, err := domain.NewUser("owner-"+uuid.NewString()+"@example.com", "secret1")
		require.NoError(t, err)
		user.HashedPassword = "$2a$10$placeholder"
		require.NoError(t, users.Create(ctx, user))

		dup := *user
		dup.ID = uuid.New()
		assert.ErrorIs(t, users.Create(ctx, &dup), store.ErrEmailExists)

		project, err := domain.NewProject(user.ID, "Release", "ship it")
		require.NoError(t, err)
		require.NoError(t, projects.Create(ctx, project))

		due := civil.Date{Year: 2024, Month: time.December, Day: 31}
		task, err := domain.NewTask(project.ID, "Tag", due, 2)
		require.NoError(t, err)
		require.NoError(t, tasks.Create(ctx, task))

		got, err := tasks.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, due, got.DueDate)

		require.NoError(t, got.Update("Tag v1", due.AddDays(1), 3, true))
		require.NoError(t, tasks.Update(ctx, got))

		listed, err := tasks.ListByProject(ctx, project.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.True(t, listed[0].IsCompleted)

		require.NoError(t, projects.Delete(ctx, project.ID))
		_, err = tasks.GetByID(ctx, task.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}
