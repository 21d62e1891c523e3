package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/taskforge/backend/api/handler"
)

type Handlers struct {
	Task   *apiHandler.TaskHandler
	Queue  *apiHandler.QueueHandler
	Hello  *apiHandler.HelloHandler
	Health *apiHandler.HealthHandler
}

// Middleware wraps a route handler; pass nil for plain routing.
type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

func New(handlers Handlers, mirror Middleware) *router.Router {
	r := router.New()

	wrap := func(h fasthttp.RequestHandler) fasthttp.RequestHandler {
		if mirror == nil {
			return h
		}
		return mirror(h)
	}

	r.GET("/", handlers.Hello.Hello)
	r.GET("/api/hello", handlers.Hello.Hello)
	r.GET("/health", handlers.Health.Check)

	r.GET("/api/tasks", wrap(handlers.Task.GetTasks))
	r.GET("/api/tasks/{id}", wrap(handlers.Task.GetTaskByID))
	r.POST("/api/tasks", wrap(handlers.Task.CreateTask))
	r.PUT("/api/tasks/{id}", wrap(handlers.Task.UpdateTask))
	r.DELETE("/api/tasks/{id}", wrap(handlers.Task.DeleteTask))

	if handlers.Queue != nil {
		r.POST("/api/queue/tasks", wrap(handlers.Queue.EnqueueTask))
	}

	return r
}
