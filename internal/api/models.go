package api

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/phrazzld/planner-api/internal/domain"
	"github.com/phrazzld/planner-api/internal/domain/schedule"
	"github.com/phrazzld/planner-api/internal/service"
)

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// AuthResponse is returned by register, login and refresh.
type AuthResponse struct {
	UserID       uuid.UUID `json:"userId"`
	Email        string    `json:"email,omitempty"`
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken"`
	// ExpiresAt is the RFC 3339 expiry of Token
	ExpiresAt string `json:"expiresAt"`
}

// CreateProjectRequest defines the payload for creating a project.
type CreateProjectRequest struct {
	Title       string `json:"title"       validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// TaskRequest is the payload for creating or replacing a task. IsCompleted
// is ignored on creation.
type TaskRequest struct {
	Title          string     `json:"title"          validate:"required,max=200"`
	DueDate        civil.Date `json:"dueDate"        validate:"required"`
	EstimatedHours int        `json:"estimatedHours" validate:"required,min=1,max=1000"`
	IsCompleted    bool       `json:"isCompleted"`
}

// ScheduleRequest is the optional payload for schedule generation.
type ScheduleRequest struct {
	StartDate *civil.Date `json:"startDate"`
}

// TaskResponse is the JSON form of a task.
type TaskResponse struct {
	ID             uuid.UUID  `json:"id"`
	ProjectID      uuid.UUID  `json:"projectId"`
	Title          string     `json:"title"`
	DueDate        civil.Date `json:"dueDate"`
	EstimatedHours int        `json:"estimatedHours"`
	IsCompleted    bool       `json:"isCompleted"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// ProjectResponse is the JSON form of a project with its tasks.
type ProjectResponse struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Tasks       []TaskResponse `json:"tasks"`
}

// ScheduleEntryResponse is one scheduled task.
type ScheduleEntryResponse struct {
	TaskID         uuid.UUID  `json:"taskId"`
	TaskTitle      string     `json:"taskTitle"`
	ScheduledDate  civil.Date `json:"scheduledDate"`
	DueDate        civil.Date `json:"dueDate"`
	EstimatedHours int        `json:"estimatedHours"`
	IsLate         bool       `json:"isLate"`
}

// ScheduleResponse is the generated schedule for a project.
type ScheduleResponse struct {
	Schedule   []ScheduleEntryResponse `json:"schedule"`
	TotalHours int                     `json:"totalHours"`
	TotalDays  int                     `json:"totalDays"`
	LateCount  int                     `json:"lateCount"`
}

func taskToResponse(t domain.Task) TaskResponse {
	return TaskResponse{
		ID:             t.ID,
		ProjectID:      t.ProjectID,
		Title:          t.Title,
		DueDate:        t.DueDate,
		EstimatedHours: t.EstimatedHours,
		IsCompleted:    t.IsCompleted,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func tasksToResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = taskToResponse(t)
	}
	return out
}

func projectToResponse(p *domain.Project, tasks []domain.Task) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Tasks:       tasksToResponse(tasks),
	}
}

func projectsToResponse(projects []service.ProjectWithTasks) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		out[i] = projectToResponse(p.Project, p.Tasks)
	}
	return out
}

func scheduleToResponse(res *schedule.Result) ScheduleResponse {
	entries := make([]ScheduleEntryResponse, len(res.Entries))
	for i, e := range res.Entries {
		entries[i] = ScheduleEntryResponse{
			TaskID:         e.TaskID,
			TaskTitle:      e.TaskTitle,
			ScheduledDate:  e.ScheduledDate,
			DueDate:        e.DueDate,
			EstimatedHours: e.EstimatedHours,
			IsLate:         e.IsLate(),
		}
	}
	return ScheduleResponse{
		Schedule:   entries,
		TotalHours: res.TotalHours,
		TotalDays:  res.TotalDays,
		LateCount:  res.LateCount(),
	}
}
