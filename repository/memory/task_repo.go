package memory

import (
	"context"
	"sync"

	"github.com/taskforge/backend/domain"
	"github.com/taskforge/backend/repository"
)

type taskRepository struct {
	mu    sync.RWMutex
	tasks map[string]domain.Task
	order []string
}

// NewTaskRepository returns a map-backed implementation of TaskRepository.
// FindAll preserves insertion order.
func NewTaskRepository() repository.TaskRepository {
	return &taskRepository{
		tasks: make(map[string]domain.Task),
	}
}

func (r *taskRepository) FindAll(_ context.Context) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Task, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.tasks[id])
	}
	return out, nil
}

func (r *taskRepository) FindByID(_ context.Context, id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	return &task, nil
}

func (r *taskRepository) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil || task.ID == "" {
		return nil, domain.ErrInvalidPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[task.ID]; exists {
		return nil, domain.ErrDuplicateTask
	}
	r.tasks[task.ID] = *task
	r.order = append(r.order, task.ID)

	stored := r.tasks[task.ID]
	return &stored, nil
}

func (r *taskRepository) Update(_ context.Context, id string, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[id]; !exists {
		return nil, nil
	}
	copied := *task
	copied.ID = id
	r.tasks[id] = copied

	stored := r.tasks[id]
	return &stored, nil
}

func (r *taskRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[id]; !exists {
		return false, nil
	}
	delete(r.tasks, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
