package nats

import (
	"context"
	"encoding/json"

	natsio "github.com/nats-io/nats.go"

	"github.com/taskforge/backend/domain"
	"github.com/taskforge/backend/events"
)

// TaskEventPublisher publishes task lifecycle envelopes to a NATS subject.
// The connection is shared and reused across all sends; draining it at
// shutdown is the lifecycle coordinator's job.
type TaskEventPublisher struct {
	conn    *natsio.Conn
	subject string
}

// NewTaskEventPublisher binds a publisher to the events subject.
func NewTaskEventPublisher(conn *natsio.Conn, subject string) *TaskEventPublisher {
	return &TaskEventPublisher{
		conn:    conn,
		subject: subject,
	}
}

func (p *TaskEventPublisher) PublishTaskCreated(ctx context.Context, task *domain.Task) error {
	return p.publish(ctx, events.TypeTaskCreated, task)
}

func (p *TaskEventPublisher) PublishTaskUpdated(ctx context.Context, task *domain.Task) error {
	return p.publish(ctx, events.TypeTaskUpdated, task)
}

func (p *TaskEventPublisher) PublishTaskDeleted(ctx context.Context, taskID string) error {
	return p.publish(ctx, events.TypeTaskDeleted, map[string]string{"id": taskID})
}

func (p *TaskEventPublisher) publish(_ context.Context, eventType string, payload interface{}) error {
	data, err := json.Marshal(events.NewEnvelope(eventType, payload))
	if err != nil {
		return err
	}
	return p.conn.Publish(p.subject, data)
}

// QueuePublisher sends arbitrary messages to a NATS subject. Used for the
// response mirror and the queue front.
type QueuePublisher struct {
	conn    *natsio.Conn
	subject string
}

// NewQueuePublisher binds a generic publisher to a subject.
func NewQueuePublisher(conn *natsio.Conn, subject string) *QueuePublisher {
	return &QueuePublisher{
		conn:    conn,
		subject: subject,
	}
}

func (p *QueuePublisher) Send(_ context.Context, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return p.conn.Publish(p.subject, data)
}

// Close flushes buffered sends. The shared connection itself stays open so
// sibling publishers keep working; the lifecycle coordinator drains it.
func (p *QueuePublisher) Close(ctx context.Context) error {
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	return p.conn.FlushWithContext(ctx)
}

var (
	_ events.TaskEventPublisher = (*TaskEventPublisher)(nil)
	_ events.QueuePublisher     = (*QueuePublisher)(nil)
)
