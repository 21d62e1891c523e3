package main

import (
	"context"
	"log"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/taskforge/backend/api/handler"
	"github.com/taskforge/backend/events"
	natsPublisher "github.com/taskforge/backend/events/nats"
	"github.com/taskforge/backend/internal/config"
	"github.com/taskforge/backend/internal/infrastructure/mongodb"
	"github.com/taskforge/backend/internal/infrastructure/monitor"
	"github.com/taskforge/backend/internal/infrastructure/natsconn"
	"github.com/taskforge/backend/internal/middleware"
	"github.com/taskforge/backend/internal/router"
	"github.com/taskforge/backend/internal/services"
	"github.com/taskforge/backend/internal/services/lifecycle"
	"github.com/taskforge/backend/pkg/httpcontext"
	"github.com/taskforge/backend/pkg/logger"
	"github.com/taskforge/backend/repository"
	memoryRepo "github.com/taskforge/backend/repository/memory"
	mongoRepo "github.com/taskforge/backend/repository/mongo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
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

	// Storage: document store when a connection string is configured,
	// in-memory map otherwise.
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
		zapLogger.Info("using mongodb task storage", zap.String("database", cfg.Mongo.Database))
	} else {
		taskRepo = memoryRepo.NewTaskRepository()
		zapLogger.Info("using in-memory task storage")
	}

	// Eventing: queue-backed publishers when NATS is configured, no-ops
	// otherwise.
	var (
		eventPublisher    events.TaskEventPublisher = events.NoopTaskEventPublisher{}
		requestPublisher  events.QueuePublisher     = events.NoopQueuePublisher{}
		responsePublisher events.QueuePublisher
		natsConn          *nats.Conn
	)
	if cfg.UseNATS() {
		nc, err := natsconn.Connect(cfg.NATS, cfg.AppName, zapLogger)
		if err != nil {
			zapLogger.Fatal("nats connection failed", zap.Error(err))
		}
		natsConn = nc
		eventPublisher = natsPublisher.NewTaskEventPublisher(nc, cfg.NATS.EventsSubject)
		requestPublisher = natsPublisher.NewQueuePublisher(nc, cfg.NATS.RequestsSubject)
		responsePublisher = natsPublisher.NewQueuePublisher(nc, cfg.NATS.ResponsesSubject)

		manager.Register("response_publisher", func(ctx context.Context) error {
			return responsePublisher.Close(ctx)
		})
		manager.Register("nats", func(ctx context.Context) error {
			return natsconn.Drain(nc, zapLogger)
		})
	}

	mon := monitor.New(mongoClient, natsConn, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	taskService := services.NewTaskService(taskRepo, eventPublisher, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Task:   apiHandler.NewTaskHandler(taskService, ctxAdapter, zapLogger, cfg.IsProduction()),
		Queue:  apiHandler.NewQueueHandler(requestPublisher, ctxAdapter, zapLogger, cfg.IsProduction()),
		Hello:  apiHandler.NewHelloHandler(cfg.Environment, ctxAdapter, zapLogger),
		Health: apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	var mirror router.Middleware
	if responsePublisher != nil && cfg.NATS.MirrorResponses {
		mirror = middleware.ResponseQueue(responsePublisher, zapLogger)
		zapLogger.Info("mirroring responses to queue", zap.String("subject", cfg.NATS.ResponsesSubject))
	}

	r := router.New(handlers, mirror)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
