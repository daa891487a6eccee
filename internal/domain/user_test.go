package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("  Alice@Example.com ", "secret1")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "secret1", user.Password)
	assert.Empty(t, user.HashedPassword)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestNewUser_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"empty email", "", "secret1", ErrEmptyEmail},
		{"malformed email", "not-an-email", "secret1", ErrInvalidEmail},
		{"display name form", "Alice <alice@example.com>", "secret1", ErrInvalidEmail},
		{"empty password", "a@example.com", "", ErrEmptyPassword},
		{"short password", "a@example.com", "12345", ErrPasswordTooShort},
		{"long password", "a@example.com", strings.Repeat("x", 73), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewUser(tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUserValidate_StoredUser(t *testing.T) {
	t.Parallel()

	u := User{ID: uuid.New(), Email: "a@example.com", HashedPassword: "$2a$10$abc"}
	assert.NoError(t, u.Validate())

	u.ID = uuid.Nil
	assert.ErrorIs(t, u.Validate(), ErrEmptyUserID)
}

func TestPasswordBoundaries(t *testing.T) {
	t.Parallel()

	_, err := NewUser("a@example.com", strings.Repeat("x", MinPasswordLength))
	assert.NoError(t, err)
	_, err = NewUser("a@example.com", strings.Repeat("x", MaxPasswordLength))
	assert.NoError(t, err)
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("projectId", "has invalid format", ErrInvalidID)
	assert.Equal(t, "projectId has invalid format", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidID))

	var ve *ValidationError
	require.ErrorAs(t, error(err), &ve)
	assert.Equal(t, "projectId", ve.Field)
}
