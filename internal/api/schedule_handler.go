package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/planner-api/internal/api/shared"
	"github.com/phrazzld/planner-api/internal/platform/logger"
	"github.com/phrazzld/planner-api/internal/redact"
	"github.com/phrazzld/planner-api/internal/service"
)

// ScheduleHandler serves schedule generation.
type ScheduleHandler struct {
	schedules service.ScheduleService
	logger    *slog.Logger
}

// NewScheduleHandler creates a new ScheduleHandler
func NewScheduleHandler(schedules service.ScheduleService, logger *slog.Logger) *ScheduleHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ScheduleHandler")
	}
	return &ScheduleHandler{
		schedules: schedules,
		logger:    logger.With(slog.String("component", "schedule_handler")),
	}
}

// GenerateSchedule handles POST /projects/{projectId}/schedule. The body
// may be empty, in which case the schedule starts today.
func (h *ScheduleHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, projectID, ok := handleUserIDAndPathUUID(w, r, "projectId", log)
	if !ok {
		return
	}

	var req ScheduleRequest
	if err := shared.DecodeJSON(r, &req); err != nil && !errors.Is(err, shared.ErrEmptyBody) {
		log.Debug("invalid schedule request", slog.String("error", redact.Error(err)))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if req.StartDate != nil && !req.StartDate.IsValid() {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid startDate")
		return
	}

	result, err := h.schedules.GenerateSchedule(r.Context(), userID, projectID, req.StartDate)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate schedule")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, scheduleToResponse(result))
}
