package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/planner-api/internal/domain"
	"github.com/phrazzld/planner-api/internal/mocks"
	"github.com/phrazzld/planner-api/internal/store"
)

func TestScheduleService_GenerateSchedule(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	fixedNow := func() time.Time { return time.Date(2024, time.January, 10, 23, 30, 0, 0, time.UTC) }

	setup := func(t *testing.T, p *domain.Project, tasks []domain.Task) *scheduleServiceImpl {
		t.Helper()
		projects := &mocks.MockProjectStore{}
		taskStore := &mocks.MockTaskStore{}
		projects.On("GetByID", mock.Anything, p.ID).Return(p, nil)
		taskStore.On("ListByProject", mock.Anything, p.ID).Return(tasks, nil)
		svc, err := newScheduleService(projects, taskStore, fixedNow, nil)
		require.NoError(t, err)
		return svc
	}

	t.Run("explicit start date", func(t *testing.T) {
		t.Parallel()
		p := newTestProject(t, owner)
		tasks := []domain.Task{
			newTestTask(t, p.ID, "B", date(2024, time.January, 12), 5),
			newTestTask(t, p.ID, "A", date(2024, time.January, 11), 3),
		}
		svc := setup(t, p, tasks)

		start := date(2024, time.January, 10)
		res, err := svc.GenerateSchedule(context.Background(), owner, p.ID, &start)
		require.NoError(t, err)
		require.Len(t, res.Entries, 2)
		assert.Equal(t, "A", res.Entries[0].TaskTitle)
		assert.Equal(t, start, res.Entries[0].ScheduledDate)
		assert.Equal(t, 8, res.TotalHours)
		assert.Equal(t, 2, res.TotalDays)
	})

	t.Run("defaults to today in UTC", func(t *testing.T) {
		t.Parallel()
		p := newTestProject(t, owner)
		svc := setup(t, p, []domain.Task{newTestTask(t, p.ID, "A", date(2024, time.January, 9), 1)})

		res, err := svc.GenerateSchedule(context.Background(), owner, p.ID, nil)
		require.NoError(t, err)
		require.Len(t, res.Entries, 1)
		assert.Equal(t, date(2024, time.January, 10), res.Entries[0].ScheduledDate)
		assert.Equal(t, 1, res.LateCount())
	})

	t.Run("not owned", func(t *testing.T) {
		t.Parallel()
		p := newTestProject(t, uuid.New())
		projects := &mocks.MockProjectStore{}
		taskStore := &mocks.MockTaskStore{}
		projects.On("GetByID", mock.Anything, p.ID).Return(p, nil)

		svc, err := newScheduleService(projects, taskStore, fixedNow, nil)
		require.NoError(t, err)

		_, err = svc.GenerateSchedule(context.Background(), owner, p.ID, nil)
		assert.ErrorIs(t, err, store.ErrProjectNotFound)
		taskStore.AssertNotCalled(t, "ListByProject", mock.Anything, mock.Anything)
	})

	t.Run("empty project", func(t *testing.T) {
		t.Parallel()
		p := newTestProject(t, owner)
		svc := setup(t, p, []domain.Task{})

		res, err := svc.GenerateSchedule(context.Background(), owner, p.ID, nil)
		require.NoError(t, err)
		assert.NotNil(t, res.Entries)
		assert.Empty(t, res.Entries)
		assert.Zero(t, res.TotalHours)
	})
}
