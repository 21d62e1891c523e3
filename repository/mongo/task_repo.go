package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/taskforge/backend/domain"
	"github.com/taskforge/backend/internal/infrastructure/mongodb"
	"github.com/taskforge/backend/repository"
)

// taskDocument maps the domain task onto the stored document layout.
type taskDocument struct {
	ID          string    `bson:"id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	Completed   bool      `bson:"completed"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

type taskRepository struct {
	client *mongodb.Client
}

// NewTaskRepository returns a MongoDB-backed implementation of TaskRepository.
// The connection is established lazily on first use.
func NewTaskRepository(client *mongodb.Client) repository.TaskRepository {
	return &taskRepository{client: client}
}

func (r *taskRepository) FindAll(ctx context.Context) ([]domain.Task, error) {
	coll, err := r.client.Collection(ctx)
	if err != nil {
		return nil, storeUnavailable(err)
	}

	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []domain.Task
	for cursor.Next(ctx) {
		var doc taskDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		tasks = append(tasks, *docToTask(doc))
	}
	return tasks, cursor.Err()
}

func (r *taskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	coll, err := r.client.Collection(ctx)
	if err != nil {
		return nil, storeUnavailable(err)
	}

	var doc taskDocument
	if err := coll.FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&doc); err != nil {
		if err == mongodriver.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return docToTask(doc), nil
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil || task.ID == "" {
		return nil, domain.ErrInvalidPayload
	}

	coll, err := r.client.Collection(ctx)
	if err != nil {
		return nil, storeUnavailable(err)
	}

	if _, err := coll.InsertOne(ctx, taskToDoc(task)); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, domain.WrapError(domain.ErrCodeConflict, "task id already exists", err)
		}
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, id string, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}

	coll, err := r.client.Collection(ctx)
	if err != nil {
		return nil, storeUnavailable(err)
	}

	doc := taskToDoc(task)
	doc.ID = id
	result, err := coll.UpdateOne(ctx,
		bson.D{{Key: "id", Value: id}},
		bson.D{{Key: "$set", Value: doc}},
	)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}

	updated := *task
	updated.ID = id
	return &updated, nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) (bool, error) {
	coll, err := r.client.Collection(ctx)
	if err != nil {
		return false, storeUnavailable(err)
	}

	result, err := coll.DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func taskToDoc(task *domain.Task) taskDocument {
	return taskDocument{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func docToTask(doc taskDocument) *domain.Task {
	return &domain.Task{
		ID:          doc.ID,
		Title:       doc.Title,
		Description: doc.Description,
		Completed:   doc.Completed,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

func storeUnavailable(err error) error {
	return domain.WrapError(domain.ErrCodeUnavailable, "task store unreachable", err)
}
