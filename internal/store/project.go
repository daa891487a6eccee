package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/phrazzld/planner-api/internal/domain"
)

// ProjectStore defines the interface for project persistence.
type ProjectStore interface {
	// Create saves a new project.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, project *domain.Project) error

	// GetByID retrieves a project by ID.
	// Returns ErrProjectNotFound if the project does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)

	// ListByUser returns all projects owned by userID, oldest first.
	// Returns an empty slice when the user has none.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)

	// Delete removes a project. Its tasks are removed by the database cascade.
	// Returns ErrProjectNotFound if the project does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a ProjectStore bound to the given transaction.
	WithTx(tx *sql.Tx) ProjectStore
}
