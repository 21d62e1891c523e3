package task

import (
	"context"

	"github.com/taskforge/backend/domain"
	"github.com/taskforge/backend/repository"
)

// Create builds a new task and persists it.
type Create struct {
	tasks repository.TaskRepository
}

func NewCreate(tasks repository.TaskRepository) *Create {
	return &Create{tasks: tasks}
}

func (uc *Create) Execute(ctx context.Context, title, description string) (*domain.Task, error) {
	return uc.tasks.Create(ctx, domain.NewTask(title, description))
}
