package task

import (
	"context"

	"github.com/taskforge/backend/repository"
)

// Delete removes a task by id. Reports false when no record existed.
type Delete struct {
	tasks repository.TaskRepository
}

func NewDelete(tasks repository.TaskRepository) *Delete {
	return &Delete{tasks: tasks}
}

func (uc *Delete) Execute(ctx context.Context, id string) (bool, error) {
	return uc.tasks.Delete(ctx, id)
}
