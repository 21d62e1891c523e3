package task

import (
	"context"

	"github.com/taskforge/backend/domain"
	"github.com/taskforge/backend/repository"
)

// Update edits a task and reconciles its completion state.
type Update struct {
	tasks repository.TaskRepository
}

func NewUpdate(tasks repository.TaskRepository) *Update {
	return &Update{tasks: tasks}
}

// Execute loads the task, applies the edit, and toggles completion only when
// the requested state differs from the stored one, so an unchanged flag does
// not trigger a second transition. The repository's absent result on save is
// passed through verbatim: a task deleted between load and save surfaces as
// nil, not as an error.
func (uc *Update) Execute(ctx context.Context, id, title, description string, completed bool) (*domain.Task, error) {
	existing, err := uc.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	wasCompleted := existing.Completed
	existing.Edit(title, description)

	switch {
	case completed && !wasCompleted:
		existing.Complete()
	case !completed && wasCompleted:
		existing.Uncomplete()
	}

	return uc.tasks.Update(ctx, id, existing)
}
