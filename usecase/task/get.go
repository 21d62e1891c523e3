package task

import (
	"context"

	"github.com/taskforge/backend/domain"
	"github.com/taskforge/backend/repository"
)

// GetAll returns the current snapshot of stored tasks.
type GetAll struct {
	tasks repository.TaskRepository
}

func NewGetAll(tasks repository.TaskRepository) *GetAll {
	return &GetAll{tasks: tasks}
}

func (uc *GetAll) Execute(ctx context.Context) ([]domain.Task, error) {
	return uc.tasks.FindAll(ctx)
}

// GetByID looks a task up by id. A nil task means no match.
type GetByID struct {
	tasks repository.TaskRepository
}

func NewGetByID(tasks repository.TaskRepository) *GetByID {
	return &GetByID{tasks: tasks}
}

func (uc *GetByID) Execute(ctx context.Context, id string) (*domain.Task, error) {
	return uc.tasks.FindByID(ctx, id)
}
