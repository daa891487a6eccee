package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// Task field limits
const (
	MaxTaskTitleLength = 200
	MaxEstimatedHours  = 1000
)

// Task validation errors
var (
	ErrEmptyTaskID           = fmt.Errorf("%w: task ID cannot be empty", ErrValidation)
	ErrEmptyTaskProjectID    = fmt.Errorf("%w: task project ID cannot be empty", ErrValidation)
	ErrEmptyTaskTitle        = fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	ErrTaskTitleTooLong      = fmt.Errorf("%w: task title must be at most 200 characters", ErrValidation)
	ErrInvalidDueDate        = fmt.Errorf("%w: task due date is required", ErrValidation)
	ErrInvalidEstimatedHours = fmt.Errorf("%w: estimated hours must be between 1 and 1000", ErrValidation)
)

// Task is a unit of work inside a project. Due date and estimated hours are
// always present on a valid task; the scheduler relies on that.
type Task struct {
	ID             uuid.UUID  `json:"id"`
	ProjectID      uuid.UUID  `json:"project_id"`
	Title          string     `json:"title"`
	DueDate        civil.Date `json:"due_date"`
	EstimatedHours int        `json:"estimated_hours"`
	IsCompleted    bool       `json:"is_completed"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewTask creates a new, incomplete task in the given project.
func NewTask(projectID uuid.UUID, title string, dueDate civil.Date, estimatedHours int) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:             uuid.New(),
		ProjectID:      projectID,
		Title:          strings.TrimSpace(title),
		DueDate:        dueDate,
		EstimatedHours: estimatedHours,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}
	if t.ProjectID == uuid.Nil {
		return ErrEmptyTaskProjectID
	}
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}
	if utf8.RuneCountInString(t.Title) > MaxTaskTitleLength {
		return ErrTaskTitleTooLong
	}
	if t.DueDate.IsZero() || !t.DueDate.IsValid() {
		return ErrInvalidDueDate
	}
	if t.EstimatedHours < 1 || t.EstimatedHours > MaxEstimatedHours {
		return ErrInvalidEstimatedHours
	}
	return nil
}

// Update replaces the editable fields of the task. On validation failure the
// task is left unchanged.
func (t *Task) Update(title string, dueDate civil.Date, estimatedHours int, completed bool) error {
	updated := *t
	updated.Title = strings.TrimSpace(title)
	updated.DueDate = dueDate
	updated.EstimatedHours = estimatedHours
	updated.IsCompleted = completed

	if err := updated.Validate(); err != nil {
		return err
	}

	updated.UpdatedAt = time.Now().UTC()
	*t = updated
	return nil
}
