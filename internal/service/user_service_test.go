package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/planner-api/internal/domain"
	"github.com/phrazzld/planner-api/internal/mocks"
	"github.com/phrazzld/planner-api/internal/service/auth"
	"github.com/phrazzld/planner-api/internal/store"
)

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	t.Run("hashes password and commits", func(t *testing.T) {
		t.Parallel()
		db, sqlMock := newMockDB(t)
		users := &mocks.MockUserStore{}
		hasher := &mocks.MockPasswordHasher{}

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()
		users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.HashedPassword == mocks.MockHashPrefix+"secret1" && u.Password == ""
		})).Return(nil)

		svc, err := NewUserService(users, hasher, hasher, db, nil)
		require.NoError(t, err)

		user, err := svc.Register(context.Background(), "New@Example.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Empty(t, user.Password)
		users.AssertExpectations(t)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate email rolls back", func(t *testing.T) {
		t.Parallel()
		db, sqlMock := newMockDB(t)
		users := &mocks.MockUserStore{}
		hasher := &mocks.MockPasswordHasher{}

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()
		users.On("Create", mock.Anything, mock.Anything).Return(store.ErrEmailExists)

		svc, err := NewUserService(users, hasher, hasher, db, nil)
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), "a@example.com", "secret1")
		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid input never reaches store", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		users := &mocks.MockUserStore{}
		hasher := &mocks.MockPasswordHasher{}

		svc, err := NewUserService(users, hasher, hasher, db, nil)
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), "a@example.com", "123")
		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("hash failure", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		hasher := &mocks.MockPasswordHasher{
			HashFn: func(string) (string, error) { return "", mocks.ErrMockHash },
		}

		svc, err := NewUserService(&mocks.MockUserStore{}, hasher, hasher, db, nil)
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), "a@example.com", "secret1")
		assert.ErrorIs(t, err, mocks.ErrMockHash)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	t.Parallel()

	stored := &domain.User{Email: "a@example.com", HashedPassword: mocks.MockHashPrefix + "secret1"}

	tests := []struct {
		name     string
		lookup   error
		password string
		wantErr  error
	}{
		{"valid credentials", nil, "secret1", nil},
		{"wrong password", nil, "secret2", auth.ErrInvalidCredentials},
		{"unknown email", store.ErrUserNotFound, "secret1", auth.ErrInvalidCredentials},
		{"store failure", errors.New("db down"), "secret1", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			db, _ := newMockDB(t)
			users := &mocks.MockUserStore{}
			hasher := &mocks.MockPasswordHasher{}
			if tt.lookup != nil {
				users.On("GetByEmail", mock.Anything, "a@example.com").Return(nil, tt.lookup)
			} else {
				users.On("GetByEmail", mock.Anything, "a@example.com").Return(stored, nil)
			}

			svc, err := NewUserService(users, hasher, hasher, db, nil)
			require.NoError(t, err)

			user, err := svc.Authenticate(context.Background(), "a@example.com", tt.password)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.lookup != nil:
				var svcErr *ServiceError
				assert.ErrorAs(t, err, &svcErr)
				assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
			default:
				require.NoError(t, err)
				assert.Same(t, stored, user)
			}
		})
	}
}

func TestNewUserService_NilDependencies(t *testing.T) {
	t.Parallel()

	db, _ := newMockDB(t)
	hasher := &mocks.MockPasswordHasher{}

	_, err := NewUserService(nil, hasher, hasher, db, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = NewUserService(&mocks.MockUserStore{}, nil, hasher, db, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = NewUserService(&mocks.MockUserStore{}, hasher, hasher, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
