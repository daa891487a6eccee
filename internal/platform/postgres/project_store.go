package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/planner-api/internal/domain"
	"github.com/phrazzld/planner-api/internal/store"
)

// PostgresProjectStore implements store.ProjectStore on PostgreSQL.
type PostgresProjectStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProjectStore creates a project store over db, which may be a
// *sql.DB or a *sql.Tx. If logger is nil, a default logger will be used.
func NewPostgresProjectStore(db store.DBTX, logger *slog.Logger) *PostgresProjectStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProjectStore{
		db:     db,
		logger: logger.With(slog.String("component", "project_store")),
	}
}

var _ store.ProjectStore = (*PostgresProjectStore)(nil)

// WithTx implements store.ProjectStore.WithTx
func (s *PostgresProjectStore) WithTx(tx *sql.Tx) store.ProjectStore {
	return &PostgresProjectStore{db: tx, logger: s.logger}
}

// Create implements store.ProjectStore.Create
func (s *PostgresProjectStore) Create(ctx context.Context, project *domain.Project) error {
	if err := project.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	now := time.Now().UTC()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	project.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, user_id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		project.ID, project.UserID, project.Title, project.Description,
		project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to insert project",
			slog.String("project_id", project.ID.String()),
			slog.String("error", err.Error()))
		return store.NewStoreError("project", "create", "insert failed", MapError(err))
	}
	return nil
}

// GetByID implements store.ProjectStore.GetByID
func (s *PostgresProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var p domain.Project
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, description, created_at, updated_at
		FROM projects WHERE id = $1`, id,
	).Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProjectNotFound
		}
		s.logger.ErrorContext(ctx, "failed to query project",
			slog.String("project_id", id.String()),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("project", "get", "query failed", MapError(err))
	}
	return &p, nil
}

// ListByUser implements store.ProjectStore.ListByUser
func (s *PostgresProjectStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, description, created_at, updated_at
		FROM projects WHERE user_id = $1
		ORDER BY created_at, id`, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list projects",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("project", "list", "query failed", MapError(err))
	}
	defer closeRows(rows, s.logger.Warn)

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, store.NewStoreError("project", "list", "scan failed", err)
		}
		projects = append(projects, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("project", "list", "row iteration failed", MapError(err))
	}
	return projects, nil
}

// Delete implements store.ProjectStore.Delete
func (s *PostgresProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete project",
			slog.String("project_id", id.String()),
			slog.String("error", err.Error()))
		return store.NewStoreError("project", "delete", "delete failed", MapError(err))
	}
	return CheckRowsAffected(result, store.ErrProjectNotFound)
}
