package repository

import (
	"context"

	"github.com/taskforge/backend/domain"
)

// TaskRepository abstracts task persistence so use cases stay storage-agnostic.
//
// A miss is not a failure: FindByID and Update return (nil, nil) when no task
// matches the id, and Delete returns (false, nil). Errors are reserved for the
// backing store misbehaving, plus Create observing an id collision.
type TaskRepository interface {
	FindAll(ctx context.Context) ([]domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, id string, task *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id string) (bool, error)
}
