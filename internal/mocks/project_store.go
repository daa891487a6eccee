package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/planner-api/internal/domain"
	"github.com/phrazzld/planner-api/internal/store"
)

// MockProjectStore is a testify mock of store.ProjectStore.
type MockProjectStore struct {
	mock.Mock
}

var _ store.ProjectStore = (*MockProjectStore)(nil)

func (m *MockProjectStore) Create(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*domain.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProjectStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	args := m.Called(ctx, userID)
	if ps, ok := args.Get(0).([]*domain.Project); ok {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTx returns the mock itself unless an expectation for WithTx is set.
func (m *MockProjectStore) WithTx(tx *sql.Tx) store.ProjectStore {
	if !hasExpectation(&m.Mock, "WithTx") {
		return m
	}
	args := m.Called(tx)
	if ret, ok := args.Get(0).(store.ProjectStore); ok {
		return ret
	}
	return m
}
