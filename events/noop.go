package events

import (
	"context"

	"github.com/taskforge/backend/domain"
)

// NoopTaskEventPublisher discards every event. Used when no queue is configured.
type NoopTaskEventPublisher struct{}

func (NoopTaskEventPublisher) PublishTaskCreated(context.Context, *domain.Task) error { return nil }
func (NoopTaskEventPublisher) PublishTaskUpdated(context.Context, *domain.Task) error { return nil }
func (NoopTaskEventPublisher) PublishTaskDeleted(context.Context, string) error       { return nil }

// NoopQueuePublisher discards every message.
type NoopQueuePublisher struct{}

func (NoopQueuePublisher) Send(context.Context, interface{}) error { return nil }
func (NoopQueuePublisher) Close(context.Context) error             { return nil }

var (
	_ TaskEventPublisher = NoopTaskEventPublisher{}
	_ QueuePublisher     = NoopQueuePublisher{}
)
