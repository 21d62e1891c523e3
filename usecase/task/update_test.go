package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskforge/backend/domain"
	"github.com/taskforge/backend/repository/memory"
)

func seedTask(t *testing.T, ctx context.Context, create *Create) *domain.Task {
	t.Helper()
	task, err := create.Execute(ctx, "title", "description")
	require.NoError(t, err)
	require.NotNil(t, task)
	return task
}

func TestUpdateEditsFields(t *testing.T) {
	repo := memory.NewTaskRepository()
	create := NewCreate(repo)
	update := NewUpdate(repo)
	ctx := context.Background()

	task := seedTask(t, ctx, create)
	time.Sleep(time.Millisecond)

	updated, err := update.Execute(ctx, task.ID, "new title", "new description", false)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "new description", updated.Description)
	assert.True(t, updated.UpdatedAt.After(task.UpdatedAt))
	assert.Equal(t, task.CreatedAt, updated.CreatedAt)
}

func TestUpdateCompletionToggle(t *testing.T) {
	repo := memory.NewTaskRepository()
	create := NewCreate(repo)
	update := NewUpdate(repo)
	ctx := context.Background()

	task := seedTask(t, ctx, create)

	completed, err := update.Execute(ctx, task.ID, "t", "d", true)
	require.NoError(t, err)
	require.NotNil(t, completed)
	assert.True(t, completed.Completed)

	// requesting the same state again must not run another transition,
	// but the edit step still bumps the timestamp
	time.Sleep(time.Millisecond)
	again, err := update.Execute(ctx, task.ID, "t", "d", true)
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.True(t, again.Completed)
	assert.True(t, again.UpdatedAt.After(completed.UpdatedAt))

	reopened, err := update.Execute(ctx, task.ID, "t", "d", false)
	require.NoError(t, err)
	require.NotNil(t, reopened)
	assert.False(t, reopened.Completed)
}

func TestUpdateMissingTask(t *testing.T) {
	repo := memory.NewTaskRepository()
	update := NewUpdate(repo)

	updated, err := update.Execute(context.Background(), "nope", "t", "d", true)
	require.NoError(t, err)
	assert.Nil(t, updated)
}
