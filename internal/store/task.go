package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/phrazzld/planner-api/internal/domain"
)

// TaskStore defines the interface for project task persistence.
type TaskStore interface {
	// Create saves a new task.
	// Returns ErrInvalidEntity if the project does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// ListByProject returns every task in a project, completed or not,
	// in creation order. Returns an empty slice when there are none.
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error)

	// ListByProjects returns the tasks of several projects keyed by project ID.
	ListByProjects(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID][]domain.Task, error)

	// Update replaces the editable fields of an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a TaskStore bound to the given transaction.
	WithTx(tx *sql.Tx) TaskStore
}
