package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/phrazzld/planner-api/internal/domain"
	"github.com/phrazzld/planner-api/internal/store"
)

const taskColumns = `id, project_id, title, due_date, estimated_hours, is_completed, created_at, updated_at`

// PostgresTaskStore implements store.TaskStore on PostgreSQL.
// DATE columns are read into time.Time and converted to civil.Date.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a task store over db. If logger is nil,
// a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

var _ store.TaskStore = (*PostgresTaskStore)(nil)

// WithTx implements store.TaskStore.WithTx
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{db: tx, logger: s.logger}
}

// dateParam converts a civil date into the midnight-UTC value the driver
// binds to a DATE column.
func dateParam(d civil.Date) time.Time {
	return d.In(time.UTC)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (domain.Task, error) {
	var (
		t   domain.Task
		due time.Time
	)
	err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &due, &t.EstimatedHours,
		&t.IsCompleted, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Task{}, err
	}
	t.DueDate = civil.DateOf(due)
	return t, nil
}

// Create implements store.TaskStore.Create
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	now := time.Now().UTC()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	task.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		task.ID, task.ProjectID, task.Title, dateParam(task.DueDate),
		task.EstimatedHours, task.IsCompleted, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to insert task",
			slog.String("task_id", task.ID.String()),
			slog.String("error", err.Error()))
		return store.NewStoreError("task", "create", "insert failed", MapError(err))
	}
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *PostgresTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		s.logger.ErrorContext(ctx, "failed to query task",
			slog.String("task_id", id.String()),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "get", "query failed", MapError(err))
	}
	return &t, nil
}

// ListByProject implements store.TaskStore.ListByProject
func (s *PostgresTaskStore) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error) {
	byProject, err := s.ListByProjects(ctx, []uuid.UUID{projectID})
	if err != nil {
		return nil, err
	}
	tasks := byProject[projectID]
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// ListByProjects implements store.TaskStore.ListByProjects
func (s *PostgresTaskStore) ListByProjects(
	ctx context.Context,
	projectIDs []uuid.UUID,
) (map[uuid.UUID][]domain.Task, error) {
	result := make(map[uuid.UUID][]domain.Task, len(projectIDs))
	if len(projectIDs) == 0 {
		return result, nil
	}

	placeholders := make([]string, len(projectIDs))
	args := make([]any, len(projectIDs))
	for i, id := range projectIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks
		WHERE project_id IN (`+strings.Join(placeholders, ", ")+`)
		ORDER BY created_at, id`, args...)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.Int("project_count", len(projectIDs)),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "list", "query failed", MapError(err))
	}
	defer closeRows(rows, s.logger.Warn)

	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, store.NewStoreError("task", "list", "scan failed", err)
		}
		result[t.ProjectID] = append(result[t.ProjectID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("task", "list", "row iteration failed", MapError(err))
	}
	return result, nil
}

// Update implements store.TaskStore.Update
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	task.UpdatedAt = time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = $2, due_date = $3, estimated_hours = $4, is_completed = $5, updated_at = $6
		WHERE id = $1`,
		task.ID, task.Title, dateParam(task.DueDate), task.EstimatedHours,
		task.IsCompleted, task.UpdatedAt,
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update task",
			slog.String("task_id", task.ID.String()),
			slog.String("error", err.Error()))
		return store.NewStoreError("task", "update", "update failed", MapError(err))
	}
	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// Delete implements store.TaskStore.Delete
func (s *PostgresTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("task_id", id.String()),
			slog.String("error", err.Error()))
		return store.NewStoreError("task", "delete", "delete failed", MapError(err))
	}
	return CheckRowsAffected(result, store.ErrTaskNotFound)
}
