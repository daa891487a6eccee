package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/planner-api/internal/api/shared"
	"github.com/phrazzld/planner-api/internal/domain"
	"github.com/phrazzld/planner-api/internal/domain/schedule"
	"github.com/phrazzld/planner-api/internal/service"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newRequest builds a request carrying chi URL params and, when userID is
// non-nil, an authenticated user.
func newRequest(
	t *testing.T,
	method, target, body string,
	userID uuid.UUID,
	params map[string]string,
) *http.Request {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = shared.SetTraceID(ctx)
	if userID != uuid.Nil {
		ctx = shared.WithUserID(ctx, userID)
	}
	return r.WithContext(ctx)
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

// fakeUserService is a testify mock of service.UserService.
type fakeUserService struct{ mock.Mock }

func (m *fakeUserService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *fakeUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *fakeUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

// fakeProjectService is a testify mock of service.ProjectService.
type fakeProjectService struct{ mock.Mock }

func (m *fakeProjectService) CreateProject(
	ctx context.Context,
	userID uuid.UUID,
	title, description string,
) (*domain.Project, error) {
	args := m.Called(ctx, userID, title, description)
	p, _ := args.Get(0).(*domain.Project)
	return p, args.Error(1)
}

func (m *fakeProjectService) ListProjects(ctx context.Context, userID uuid.UUID) ([]service.ProjectWithTasks, error) {
	args := m.Called(ctx, userID)
	ps, _ := args.Get(0).([]service.ProjectWithTasks)
	return ps, args.Error(1)
}

func (m *fakeProjectService) GetProject(ctx context.Context, userID, projectID uuid.UUID) (*service.ProjectWithTasks, error) {
	args := m.Called(ctx, userID, projectID)
	p, _ := args.Get(0).(*service.ProjectWithTasks)
	return p, args.Error(1)
}

func (m *fakeProjectService) DeleteProject(ctx context.Context, userID, projectID uuid.UUID) error {
	return m.Called(ctx, userID, projectID).Error(0)
}

// fakeTaskService is a testify mock of service.TaskService.
type fakeTaskService struct{ mock.Mock }

func (m *fakeTaskService) ListTasks(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Task, error) {
	args := m.Called(ctx, userID, projectID)
	ts, _ := args.Get(0).([]domain.Task)
	return ts, args.Error(1)
}

func (m *fakeTaskService) CreateTask(
	ctx context.Context,
	userID, projectID uuid.UUID,
	in service.TaskInput,
) (*domain.Task, error) {
	args := m.Called(ctx, userID, projectID, in)
	t, _ := args.Get(0).(*domain.Task)
	return t, args.Error(1)
}

func (m *fakeTaskService) UpdateTask(
	ctx context.Context,
	userID, taskID uuid.UUID,
	in service.TaskInput,
) (*domain.Task, error) {
	args := m.Called(ctx, userID, taskID, in)
	t, _ := args.Get(0).(*domain.Task)
	return t, args.Error(1)
}

func (m *fakeTaskService) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	return m.Called(ctx, userID, taskID).Error(0)
}

// fakeScheduleService is a testify mock of service.ScheduleService.
type fakeScheduleService struct{ mock.Mock }

func (m *fakeScheduleService) GenerateSchedule(
	ctx context.Context,
	userID, projectID uuid.UUID,
	start *civil.Date,
) (*schedule.Result, error) {
	args := m.Called(ctx, userID, projectID, start)
	r, _ := args.Get(0).(*schedule.Result)
	return r, args.Error(1)
}

func validateForTest(v any) error {
	return shared.ValidateRequest(v)
}
