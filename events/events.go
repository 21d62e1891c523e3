package events

import (
	"context"
	"time"

	"github.com/taskforge/backend/domain"
)

// Task lifecycle event types.
const (
	TypeTaskCreated = "task.created"
	TypeTaskUpdated = "task.updated"
	TypeTaskDeleted = "task.deleted"
)

// Envelope is the wire format for every published event.
type Envelope struct {
	EventType string      `json:"eventType"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEnvelope stamps a payload with its event type and the current time.
func NewEnvelope(eventType string, payload interface{}) Envelope {
	return Envelope{
		EventType: eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// TaskEventPublisher notifies an external channel about task lifecycle changes.
// Sends are best-effort: implementations surface failures to the caller, and
// the caller is responsible for keeping them off the request path.
type TaskEventPublisher interface {
	PublishTaskCreated(ctx context.Context, task *domain.Task) error
	PublishTaskUpdated(ctx context.Context, task *domain.Task) error
	PublishTaskDeleted(ctx context.Context, taskID string) error
}

// QueuePublisher sends arbitrary messages to a queue and owns the underlying
// sender resource until Close.
type QueuePublisher interface {
	Send(ctx context.Context, message interface{}) error
	Close(ctx context.Context) error
}
