package service

import (
	"database/sql"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/planner-api/internal/domain"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func newTestProject(t *testing.T, owner uuid.UUID) *domain.Project {
	t.Helper()
	p, err := domain.NewProject(owner, "Test project", "")
	require.NoError(t, err)
	return p
}

func newTestTask(t *testing.T, projectID uuid.UUID, title string, due civil.Date, hours int) domain.Task {
	t.Helper()
	task, err := domain.NewTask(projectID, title, due, hours)
	require.NoError(t, err)
	return *task
}
