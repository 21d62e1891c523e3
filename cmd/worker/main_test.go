package main

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/taskforge/backend/events"
	"github.com/taskforge/backend/internal/services"
	"github.com/taskforge/backend/repository"
	"github.com/taskforge/backend/repository/memory"
)

func newTestConsumer(t *testing.T) (*requestConsumer, repository.TaskRepository) {
	t.Helper()
	repo := memory.NewTaskRepository()
	service := services.NewTaskService(repo, events.NoopTaskEventPublisher{}, zap.NewNop())
	return newRequestConsumer(service, time.Second, zap.NewNop()), repo
}

func TestConsumerCreatesTaskFromRequest(t *testing.T) {
	consumer, repo := newTestConsumer(t)

	payload, err := json.Marshal(events.NewTaskRequestMessage("queued title", "queued description"))
	require.NoError(t, err)

	consumer.handle(&nats.Msg{Data: payload})

	tasks, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "queued title", tasks[0].Title)
	assert.Equal(t, "queued description", tasks[0].Description)
}

func TestConsumerDropsMalformedPayload(t *testing.T) {
	consumer, repo := newTestConsumer(t)

	consumer.handle(&nats.Msg{Data: []byte(`{"title":`)})
	consumer.handle(&nats.Msg{Data: []byte(`{"description":"no title"}`)})

	tasks, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
