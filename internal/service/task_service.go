package service

import (
	"context"
	"log/slog"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/phrazzld/planner-api/internal/domain"
	"github.com/phrazzld/planner-api/internal/platform/logger"
	"github.com/phrazzld/planner-api/internal/store"
)

// TaskInput carries the editable fields of a task.
type TaskInput struct {
	Title          string
	DueDate        civil.Date
	EstimatedHours int
	IsCompleted    bool
}

// TaskService provides task operations inside projects owned by the caller.
type TaskService interface {
	// ListTasks returns every task of an owned project.
	ListTasks(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Task, error)

	// CreateTask adds a new, incomplete task to an owned project.
	// IsCompleted on the input is ignored.
	CreateTask(ctx context.Context, userID, projectID uuid.UUID, in TaskInput) (*domain.Task, error)

	// UpdateTask replaces the editable fields of a task.
	// Returns store.ErrTaskNotFound if the task is missing or not owned.
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, in TaskInput) (*domain.Task, error)

	// DeleteTask removes a task.
	// Returns store.ErrTaskNotFound if the task is missing or not owned.
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
}

type taskServiceImpl struct {
	projects store.ProjectStore
	tasks    store.TaskStore
	logger   *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(projects store.ProjectStore, tasks store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if projects == nil {
		return nil, domain.NewValidationError("projects", "cannot be nil", domain.ErrValidation)
	}
	if tasks == nil {
		return nil, domain.NewValidationError("tasks", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		projects: projects,
		tasks:    tasks,
		logger:   logger.With(slog.String("component", "task_service")),
	}, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Task, error) {
	if _, err := ownedProject(ctx, s.projects, userID, projectID, s.logger); err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, NewServiceError("task", "list", "failed to list tasks", err)
	}
	return tasks, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	userID, projectID uuid.UUID,
	in TaskInput,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := ownedProject(ctx, s.projects, userID, projectID, s.logger); err != nil {
		return nil, err
	}

	task, err := domain.NewTask(projectID, in.Title, in.DueDate, in.EstimatedHours)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		log.Error("failed to create task",
			slog.String("project_id", projectID.String()),
			slog.String("error", err.Error()))
		return nil, NewServiceError("task", "create", "failed to save task", err)
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("project_id", projectID.String()))
	return task, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	userID, taskID uuid.UUID,
	in TaskInput,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if err := task.Update(in.Title, in.DueDate, in.EstimatedHours, in.IsCompleted); err != nil {
		return nil, err
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to update task",
			slog.String("task_id", taskID.String()),
			slog.String("error", err.Error()))
		return nil, NewServiceError("task", "update", "failed to save task", err)
	}
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.ownedTask(ctx, userID, taskID); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, taskID); err != nil {
		if store.IsNotFoundError(err) {
			return store.ErrTaskNotFound
		}
		log.Error("failed to delete task",
			slog.String("task_id", taskID.String()),
			slog.String("error", err.Error()))
		return NewServiceError("task", "delete", "failed to delete task", err)
	}
	return nil
}

// ownedTask loads a task and verifies that userID owns its project.
func (s *taskServiceImpl) ownedTask(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrTaskNotFound
		}
		return nil, NewServiceError("task", "get", "failed to load task", err)
	}

	if _, err := ownedProject(ctx, s.projects, userID, task.ProjectID, s.logger); err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}
