package service

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/phrazzld/planner-api/internal/domain"
	"github.com/phrazzld/planner-api/internal/domain/schedule"
	"github.com/phrazzld/planner-api/internal/platform/logger"
	"github.com/phrazzld/planner-api/internal/store"
)

// ScheduleService produces schedules for projects. Schedules are computed
// on demand and never stored.
type ScheduleService interface {
	// GenerateSchedule schedules the incomplete tasks of an owned project
	// starting at start. A nil start means today in UTC.
	// Returns store.ErrProjectNotFound if the project is missing or not owned.
	GenerateSchedule(ctx context.Context, userID, projectID uuid.UUID, start *civil.Date) (*schedule.Result, error)
}

type scheduleServiceImpl struct {
	projects store.ProjectStore
	tasks    store.TaskStore
	now      func() time.Time
	logger   *slog.Logger
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(projects store.ProjectStore, tasks store.TaskStore, logger *slog.Logger) (ScheduleService, error) {
	return newScheduleService(projects, tasks, time.Now, logger)
}

func newScheduleService(
	projects store.ProjectStore,
	tasks store.TaskStore,
	now func() time.Time,
	logger *slog.Logger,
) (*scheduleServiceImpl, error) {
	if projects == nil {
		return nil, domain.NewValidationError("projects", "cannot be nil", domain.ErrValidation)
	}
	if tasks == nil {
		return nil, domain.NewValidationError("tasks", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &scheduleServiceImpl{
		projects: projects,
		tasks:    tasks,
		now:      now,
		logger:   logger.With(slog.String("component", "schedule_service")),
	}, nil
}

// GenerateSchedule implements ScheduleService.GenerateSchedule
func (s *scheduleServiceImpl) GenerateSchedule(
	ctx context.Context,
	userID, projectID uuid.UUID,
	start *civil.Date,
) (*schedule.Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := ownedProject(ctx, s.projects, userID, projectID, s.logger); err != nil {
		return nil, err
	}

	startDate := civil.DateOf(s.now().UTC())
	if start != nil {
		startDate = *start
	}

	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, NewServiceError("schedule", "generate", "failed to list tasks", err)
	}

	result := schedule.Generate(tasks, startDate)
	log.Debug("schedule generated",
		slog.String("project_id", projectID.String()),
		slog.String("start_date", startDate.String()),
		slog.Int("total_days", result.TotalDays),
		slog.Int("late_count", result.LateCount()))
	return result, nil
}
