package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/planner-api/internal/domain"
	"github.com/phrazzld/planner-api/internal/platform/logger"
	"github.com/phrazzld/planner-api/internal/store"
)

// ProjectWithTasks is a project together with all of its tasks.
type ProjectWithTasks struct {
	Project *domain.Project
	Tasks   []domain.Task
}

// ProjectService provides project operations scoped to the calling user.
type ProjectService interface {
	// CreateProject creates a project owned by userID.
	CreateProject(ctx context.Context, userID uuid.UUID, title, description string) (*domain.Project, error)

	// ListProjects returns every project owned by userID with its tasks.
	ListProjects(ctx context.Context, userID uuid.UUID) ([]ProjectWithTasks, error)

	// GetProject returns one owned project with its tasks.
	// Returns store.ErrProjectNotFound if the project is missing or not owned.
	GetProject(ctx context.Context, userID, projectID uuid.UUID) (*ProjectWithTasks, error)

	// DeleteProject removes an owned project and its tasks.
	// Returns store.ErrProjectNotFound if the project is missing or not owned.
	DeleteProject(ctx context.Context, userID, projectID uuid.UUID) error
}

type projectServiceImpl struct {
	projects store.ProjectStore
	tasks    store.TaskStore
	db       *sql.DB
	logger   *slog.Logger
}

// NewProjectService creates a new ProjectService.
// It returns an error if any of the required dependencies are nil.
func NewProjectService(
	projects store.ProjectStore,
	tasks store.TaskStore,
	db *sql.DB,
	logger *slog.Logger,
) (ProjectService, error) {
	if projects == nil {
		return nil, domain.NewValidationError("projects", "cannot be nil", domain.ErrValidation)
	}
	if tasks == nil {
		return nil, domain.NewValidationError("tasks", "cannot be nil", domain.ErrValidation)
	}
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &projectServiceImpl{
		projects: projects,
		tasks:    tasks,
		db:       db,
		logger:   logger.With(slog.String("component", "project_service")),
	}, nil
}

// CreateProject implements ProjectService.CreateProject
func (s *projectServiceImpl) CreateProject(
	ctx context.Context,
	userID uuid.UUID,
	title, description string,
) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	project, err := domain.NewProject(userID, title, description)
	if err != nil {
		return nil, err
	}

	if err := s.projects.Create(ctx, project); err != nil {
		log.Error("failed to create project",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return nil, NewServiceError("project", "create", "failed to save project", err)
	}

	log.Info("project created",
		slog.String("project_id", project.ID.String()),
		slog.String("user_id", userID.String()))
	return project, nil
}

// ListProjects implements ProjectService.ListProjects
func (s *projectServiceImpl) ListProjects(ctx context.Context, userID uuid.UUID) ([]ProjectWithTasks, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	projects, err := s.projects.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list projects",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return nil, NewServiceError("project", "list", "failed to list projects", err)
	}

	result := make([]ProjectWithTasks, 0, len(projects))
	if len(projects) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	tasksByProject, err := s.tasks.ListByProjects(ctx, ids)
	if err != nil {
		log.Error("failed to list project tasks",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return nil, NewServiceError("project", "list", "failed to list tasks", err)
	}

	for _, p := range projects {
		tasks := tasksByProject[p.ID]
		if tasks == nil {
			tasks = []domain.Task{}
		}
		result = append(result, ProjectWithTasks{Project: p, Tasks: tasks})
	}
	return result, nil
}

// GetProject implements ProjectService.GetProject
func (s *projectServiceImpl) GetProject(ctx context.Context, userID, projectID uuid.UUID) (*ProjectWithTasks, error) {
	project, err := ownedProject(ctx, s.projects, userID, projectID, s.logger)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, NewServiceError("project", "get", "failed to list tasks", err)
	}
	return &ProjectWithTasks{Project: project, Tasks: tasks}, nil
}

// DeleteProject implements ProjectService.DeleteProject
func (s *projectServiceImpl) DeleteProject(ctx context.Context, userID, projectID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txProjects := s.projects.WithTx(tx)
		if _, err := ownedProject(ctx, txProjects, userID, projectID, s.logger); err != nil {
			return err
		}
		return txProjects.Delete(ctx, projectID)
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			return store.ErrProjectNotFound
		}
		log.Error("failed to delete project",
			slog.String("project_id", projectID.String()),
			slog.String("error", err.Error()))
		return NewServiceError("project", "delete", "failed to delete project", err)
	}

	log.Info("project deleted", slog.String("project_id", projectID.String()))
	return nil
}

// ownedProject loads a project and hides it unless userID owns it.
func ownedProject(
	ctx context.Context,
	projects store.ProjectStore,
	userID, projectID uuid.UUID,
	fallback *slog.Logger,
) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, fallback)

	project, err := projects.GetByID(ctx, projectID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrProjectNotFound
		}
		log.Error("failed to load project",
			slog.String("project_id", projectID.String()),
			slog.String("error", err.Error()))
		return nil, NewServiceError("project", "get", "failed to load project", err)
	}

	if !project.IsOwnedBy(userID) {
		log.Warn("project access denied",
			slog.String("project_id", projectID.String()),
			slog.String("user_id", userID.String()),
			slog.String("reason", ErrNotOwned.Error()))
		return nil, store.ErrProjectNotFound
	}
	return project, nil
}
