package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/taskforge/backend/events"
	natsPublisher "github.com/taskforge/backend/events/nats"
	"github.com/taskforge/backend/internal/config"
	"github.com/taskforge/backend/internal/infrastructure/mongodb"
	"github.com/taskforge/backend/internal/infrastructure/natsconn"
	"github.com/taskforge/backend/internal/services"
	"github.com/taskforge/backend/internal/services/lifecycle"
	"github.com/taskforge/backend/pkg/logger"
	"github.com/taskforge/backend/repository"
	memoryRepo "github.com/taskforge/backend/repository/memory"
	mongoRepo "github.com/taskforge/backend/repository/mongo"
)

// The worker is the queue-front counterpart of the HTTP server: it consumes
// task creation requests published by POST /api/queue/tasks and executes them
// through the same task service.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if !cfg.UseNATS() {
		log.Fatal("worker requires NATS_URL to be configured")
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	var (
		taskRepo    repository.TaskRepository
		mongoClient *mongodb.Client
	)
	if cfg.UseMongo() {
		mongoClient = mongodb.NewClient(cfg.Mongo, zapLogger)
		taskRepo = mongoRepo.NewTaskRepository(mongoClient)
		manager.Register("mongodb", func(ctx context.Context) error {
			return mongoClient.Close(ctx)
		})
	} else {
		taskRepo = memoryRepo.NewTaskRepository()
		zapLogger.Warn("worker using in-memory storage, created tasks are not shared")
	}

	nc, err := natsconn.Connect(cfg.NATS, cfg.AppName+"-worker", zapLogger)
	if err != nil {
		zapLogger.Fatal("nats connection failed", zap.Error(err))
	}
	manager.Register("nats", func(ctx context.Context) error {
		return natsconn.Drain(nc, zapLogger)
	})

	eventPublisher := natsPublisher.NewTaskEventPublisher(nc, cfg.NATS.EventsSubject)
	taskService := services.NewTaskService(taskRepo, eventPublisher, zapLogger)

	consumer := newRequestConsumer(taskService, cfg.Context.RequestTimeout, zapLogger)

	sub, err := nc.QueueSubscribe(cfg.NATS.RequestsSubject, "task-workers", consumer.handle)
	if err != nil {
		zapLogger.Fatal("subscription failed", zap.Error(err))
	}
	manager.Register("subscription", func(ctx context.Context) error {
		return sub.Drain()
	})

	zapLogger.Info("worker started", zap.String("subject", cfg.NATS.RequestsSubject))

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}

type requestConsumer struct {
	service *services.TaskService
	timeout time.Duration
	logger  *zap.Logger
}

func newRequestConsumer(service *services.TaskService, timeout time.Duration, logger *zap.Logger) *requestConsumer {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &requestConsumer{
		service: service,
		timeout: timeout,
		logger:  logger,
	}
}

// handle decodes a queued task request and runs the create path. Malformed
// messages are logged and dropped so one bad payload cannot wedge the queue.
func (c *requestConsumer) handle(msg *nats.Msg) {
	var req events.TaskRequestMessage
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		c.logger.Error("dropping malformed task request", zap.Error(err))
		return
	}
	if req.Title == "" {
		c.logger.Error("dropping task request without title", zap.String("request_id", req.RequestID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	task, err := c.service.CreateTask(ctx, req.Title, req.Description)
	if err != nil {
		c.logger.Error("failed to create task from queue request",
			zap.String("request_id", req.RequestID),
			zap.Error(err))
		return
	}
	c.logger.Info("task created from queue request",
		zap.String("request_id", req.RequestID),
		zap.String("task_id", task.ID))
}
