package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	task := NewTask("write report", "quarterly numbers")

	require.NotEmpty(t, task.ID)
	assert.Equal(t, "write report", task.Title)
	assert.Equal(t, "quarterly numbers", task.Description)
	assert.False(t, task.Completed)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
}

func TestNewTaskGeneratesDistinctIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		task := NewTask("t", "d")
		_, dup := seen[task.ID]
		require.False(t, dup, "id %q generated twice", task.ID)
		seen[task.ID] = struct{}{}
	}
}

func TestTaskTransitions(t *testing.T) {
	task := NewTask("t", "d")
	created := task.CreatedAt

	time.Sleep(time.Millisecond)
	task.Complete()
	assert.True(t, task.Completed)
	assert.True(t, task.UpdatedAt.After(created))
	assert.Equal(t, created, task.CreatedAt)

	completedAt := task.UpdatedAt
	time.Sleep(time.Millisecond)
	task.Uncomplete()
	assert.False(t, task.Completed)
	assert.True(t, task.UpdatedAt.After(completedAt))
}

func TestTaskEdit(t *testing.T) {
	task := NewTask("old", "old desc")
	before := task.UpdatedAt

	time.Sleep(time.Millisecond)
	task.Edit("new", "new desc")

	assert.Equal(t, "new", task.Title)
	assert.Equal(t, "new desc", task.Description)
	assert.True(t, task.UpdatedAt.After(before))
	assert.False(t, task.Completed)
}
