package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/planner-api/internal/domain"
	"github.com/phrazzld/planner-api/internal/store"
)

// MockTaskStore is a testify mock of store.TaskStore.
type MockTaskStore struct {
	mock.Mock
}

var _ store.TaskStore = (*MockTaskStore)(nil)

func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*domain.Task); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskStore) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error) {
	args := m.Called(ctx, projectID)
	if ts, ok := args.Get(0).([]domain.Task); ok {
		return ts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskStore) ListByProjects(
	ctx context.Context,
	projectIDs []uuid.UUID,
) (map[uuid.UUID][]domain.Task, error) {
	args := m.Called(ctx, projectIDs)
	if ts, ok := args.Get(0).(map[uuid.UUID][]domain.Task); ok {
		return ts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTx returns the mock itself unless an expectation for WithTx is set.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	if !hasExpectation(&m.Mock, "WithTx") {
		return m
	}
	args := m.Called(tx)
	if ret, ok := args.Get(0).(store.TaskStore); ok {
		return ret
	}
	return m
}
