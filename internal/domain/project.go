package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Project field limits
const (
	MinProjectTitleLength = 3
	MaxProjectTitleLength = 100
	MaxDescriptionLength  = 500
)

// Project validation errors
var (
	ErrEmptyProjectID      = fmt.Errorf("%w: project ID cannot be empty", ErrValidation)
	ErrEmptyProjectOwner   = fmt.Errorf("%w: project owner cannot be empty", ErrValidation)
	ErrInvalidProjectTitle = fmt.Errorf("%w: project title must be between 3 and 100 characters", ErrValidation)
	ErrDescriptionTooLong  = fmt.Errorf("%w: project description must be at most 500 characters", ErrValidation)
)

// Project groups tasks for a single owner.
type Project struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProject creates a validated project owned by userID.
func NewProject(userID uuid.UUID, title, description string) (*Project, error) {
	now := time.Now().UTC()
	project := &Project{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}

	return project, nil
}

// Validate checks if the Project has valid data.
func (p *Project) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProjectID
	}
	if p.UserID == uuid.Nil {
		return ErrEmptyProjectOwner
	}
	n := utf8.RuneCountInString(p.Title)
	if n < MinProjectTitleLength || n > MaxProjectTitleLength {
		return ErrInvalidProjectTitle
	}
	if utf8.RuneCountInString(p.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

// IsOwnedBy reports whether userID owns the project.
func (p *Project) IsOwnedBy(userID uuid.UUID) bool {
	return p.UserID == userID
}
