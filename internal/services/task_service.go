package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskforge/backend/domain"
	"github.com/taskforge/backend/events"
	"github.com/taskforge/backend/repository"
	taskUC "github.com/taskforge/backend/usecase/task"
)

// TaskService is the single place that knows about both persistence and
// eventing. It sequences a use case with a best-effort publish: the publish
// attempt runs only after the write succeeded, its error is logged and
// discarded, and the use case's result is returned either way.
type TaskService struct {
	create  *taskUC.Create
	getAll  *taskUC.GetAll
	getByID *taskUC.GetByID
	update  *taskUC.Update
	delete  *taskUC.Delete

	publisher events.TaskEventPublisher
	logger    *zap.Logger
}

// NewTaskService wires the five use cases over one repository.
func NewTaskService(tasks repository.TaskRepository, publisher events.TaskEventPublisher, logger *zap.Logger) *TaskService {
	if publisher == nil {
		publisher = events.NoopTaskEventPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{
		create:    taskUC.NewCreate(tasks),
		getAll:    taskUC.NewGetAll(tasks),
		getByID:   taskUC.NewGetByID(tasks),
		update:    taskUC.NewUpdate(tasks),
		delete:    taskUC.NewDelete(tasks),
		publisher: publisher,
		logger:    logger,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, title, description string) (*domain.Task, error) {
	created, err := s.create.Execute(ctx, title, description)
	if err != nil {
		return nil, err
	}
	s.safePublish(ctx, events.TypeTaskCreated, func(ctx context.Context) error {
		return s.publisher.PublishTaskCreated(ctx, created)
	})
	return created, nil
}

func (s *TaskService) GetAllTasks(ctx context.Context) ([]domain.Task, error) {
	return s.getAll.Execute(ctx)
}

func (s *TaskService) GetTaskByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.getByID.Execute(ctx, id)
}

func (s *TaskService) UpdateTask(ctx context.Context, id, title, description string, completed bool) (*domain.Task, error) {
	updated, err := s.update.Execute(ctx, id, title, description, completed)
	if err != nil || updated == nil {
		return updated, err
	}
	s.safePublish(ctx, events.TypeTaskUpdated, func(ctx context.Context) error {
		return s.publisher.PublishTaskUpdated(ctx, updated)
	})
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) (bool, error) {
	deleted, err := s.delete.Execute(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}
	s.safePublish(ctx, events.TypeTaskDeleted, func(ctx context.Context) error {
		return s.publisher.PublishTaskDeleted(ctx, id)
	})
	return true, nil
}

// safePublish keeps publish failures off the request path.
func (s *TaskService) safePublish(ctx context.Context, eventType string, publish func(context.Context) error) {
	if err := publish(ctx); err != nil {
		s.logger.Error("failed to publish task event",
			zap.String("event_type", eventType),
			zap.Error(err))
	}
}
