package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/planner-api/internal/domain"
	"github.com/phrazzld/planner-api/internal/service"
	"github.com/phrazzld/planner-api/internal/service/auth"
	"github.com/phrazzld/planner-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"project not found", store.ErrProjectNotFound, http.StatusNotFound},
		{"wrapped task not found", fmt.Errorf("ctx: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"domain validation", domain.ErrInvalidEstimatedHours, http.StatusBadRequest},
		{"invalid id", domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID), http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"service error wrapping unknown", service.NewServiceError("task", "create", "x", errors.New("db")), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"domain sentinel", domain.ErrEmptyTaskTitle, "Task title cannot be empty"},
		{"wrapped domain sentinel", fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrDescriptionTooLong),
			"Project description must be at most 500 characters"},
		{"validation error", domain.NewValidationError("projectId", "is required", domain.ErrValidation), "ProjectId is required"},
		{"not found", store.ErrTaskNotFound, "Task not found"},
		{"internal details hidden", errors.New("pq: relation tasks does not exist"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := validateForTest(RegisterRequest{Email: "a@example.com"})
	assert.Equal(t, "Invalid password: required field", SanitizeValidationError(err))
	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}
