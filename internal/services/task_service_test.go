package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/taskforge/backend/domain"
	"github.com/taskforge/backend/repository/memory"
)

// recordingPublisher counts publishes and optionally fails every call.
type recordingPublisher struct {
	created int
	updated int
	deleted int
	fail    bool
}

func (p *recordingPublisher) PublishTaskCreated(context.Context, *domain.Task) error {
	p.created++
	return p.err()
}

func (p *recordingPublisher) PublishTaskUpdated(context.Context, *domain.Task) error {
	p.updated++
	return p.err()
}

func (p *recordingPublisher) PublishTaskDeleted(context.Context, string) error {
	p.deleted++
	return p.err()
}

func (p *recordingPublisher) err() error {
	if p.fail {
		return errors.New("queue unreachable")
	}
	return nil
}

func newTestService(publisher *recordingPublisher) *TaskService {
	return NewTaskService(memory.NewTaskRepository(), publisher, zap.NewNop())
}

func TestCreateTaskRoundTrip(t *testing.T) {
	publisher := &recordingPublisher{}
	service := newTestService(publisher)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, "A", "B")
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	assert.Equal(t, "A", task.Title)
	assert.Equal(t, "B", task.Description)
	assert.False(t, task.Completed)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	assert.Equal(t, 1, publisher.created)

	found, err := service.GetTaskByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, task.Title, found.Title)
	assert.Equal(t, task.Description, found.Description)
}

func TestSequentialCreatesGetDistinctIDs(t *testing.T) {
	service := newTestService(&recordingPublisher{})
	ctx := context.Background()

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		task, err := service.CreateTask(ctx, "t", "d")
		require.NoError(t, err)
		_, dup := seen[task.ID]
		require.False(t, dup)
		seen[task.ID] = struct{}{}
	}
}

func TestPublishFailureNeverFailsTheRequest(t *testing.T) {
	publisher := &recordingPublisher{fail: true}
	service := newTestService(publisher)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, "x", "y")
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.NotEmpty(t, task.ID)

	updated, err := service.UpdateTask(ctx, task.ID, "x2", "y2", true)
	require.NoError(t, err)
	require.NotNil(t, updated)

	deleted, err := service.DeleteTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	assert.Equal(t, 1, publisher.created)
	assert.Equal(t, 1, publisher.updated)
	assert.Equal(t, 1, publisher.deleted)
}

func TestNotFoundNeverPublishes(t *testing.T) {
	publisher := &recordingPublisher{}
	service := newTestService(publisher)
	ctx := context.Background()

	updated, err := service.UpdateTask(ctx, "ghost", "t", "d", true)
	require.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := service.DeleteTask(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.Zero(t, publisher.updated)
	assert.Zero(t, publisher.deleted)
}

func TestUpdateMonotonicTimestamps(t *testing.T) {
	service := newTestService(&recordingPublisher{})
	ctx := context.Background()

	task, err := service.CreateTask(ctx, "t", "d")
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	updated, err := service.UpdateTask(ctx, task.ID, "t", "d", false)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.UpdatedAt.After(task.UpdatedAt))
}

func TestReadsNeverPublish(t *testing.T) {
	publisher := &recordingPublisher{}
	service := newTestService(publisher)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, "t", "d")
	require.NoError(t, err)
	publisher.created = 0

	_, err = service.GetAllTasks(ctx)
	require.NoError(t, err)
	_, err = service.GetTaskByID(ctx, task.ID)
	require.NoError(t, err)

	assert.Zero(t, publisher.created)
	assert.Zero(t, publisher.updated)
	assert.Zero(t, publisher.deleted)
}

func TestFullLifecycleScenario(t *testing.T) {
	service := newTestService(&recordingPublisher{})
	ctx := context.Background()

	task, err := service.CreateTask(ctx, "A", "B")
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	assert.False(t, task.Completed)

	updated, err := service.UpdateTask(ctx, task.ID, "A2", "B2", true)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "A2", updated.Title)
	assert.Equal(t, "B2", updated.Description)
	assert.True(t, updated.Completed)

	deleted, err := service.DeleteTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err := service.GetTaskByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}
