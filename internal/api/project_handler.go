package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/planner-api/internal/api/shared"
	"github.com/phrazzld/planner-api/internal/platform/logger"
	"github.com/phrazzld/planner-api/internal/service"
)

// ProjectHandler serves the /projects resource.
type ProjectHandler struct {
	projects service.ProjectService
	logger   *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projects service.ProjectService, logger *slog.Logger) *ProjectHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProjectHandler")
	}
	return &ProjectHandler{
		projects: projects,
		logger:   logger.With(slog.String("component", "project_handler")),
	}
}

// ListProjects handles GET /projects.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	projects, err := h.projects.ListProjects(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list projects")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, projectsToResponse(projects))
}

// CreateProject handles POST /projects.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	var req CreateProjectRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	project, err := h.projects.CreateProject(r.Context(), userID, req.Title, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create project")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, projectToResponse(project, nil))
}

// GetProject handles GET /projects/{id}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, projectID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	project, err := h.projects.GetProject(r.Context(), userID, projectID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get project")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, projectToResponse(project.Project, project.Tasks))
}

// DeleteProject handles DELETE /projects/{id}.
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, projectID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.projects.DeleteProject(r.Context(), userID, projectID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete project")
		return
	}

	log.Debug("project deleted", slog.String("project_id", projectID.String()))
	shared.RespondWithNoContent(w)
}
