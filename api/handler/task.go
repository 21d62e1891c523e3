package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskforge/backend/api/transport"
	"github.com/taskforge/backend/domain"
	"github.com/taskforge/backend/internal/services"
	"github.com/taskforge/backend/pkg/httpcontext"
)

type TaskHandler struct {
	baseHandler
	service *services.TaskService
}

func NewTaskHandler(service *services.TaskService, adapter *httpcontext.Adapter, logger *zap.Logger, production bool) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger, production),
		service:     service,
	}
}

// GetTasks handles GET /api/tasks.
func (h *TaskHandler) GetTasks(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.service.GetAllTasks(stdCtx)
	if err != nil {
		h.respondError(ctx, "Failed to retrieve tasks", err)
		return
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	h.respondSuccess(ctx, http.StatusOK, tasks)
}

// GetTaskByID handles GET /api/tasks/{id}.
func (h *TaskHandler) GetTaskByID(ctx *fasthttp.RequestCtx) {
	id, ok := h.taskID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.service.GetTaskByID(stdCtx, id)
	if err != nil {
		h.respondError(ctx, "Failed to retrieve task", err)
		return
	}
	if task == nil {
		h.respondNotFound(ctx, "Task not found")
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// CreateTask handles POST /api/tasks.
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	var req transport.CreateTaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "Invalid request body")
		return
	}
	if req.Title == nil || *req.Title == "" || req.Description == nil || *req.Description == "" {
		h.respondInvalid(ctx, "Title and description are required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.service.CreateTask(stdCtx, *req.Title, *req.Description)
	if err != nil {
		h.respondError(ctx, "Failed to create task", err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, task)
}

// UpdateTask handles PUT /api/tasks/{id}.
func (h *TaskHandler) UpdateTask(ctx *fasthttp.RequestCtx) {
	id, ok := h.taskID(ctx)
	if !ok {
		return
	}

	var req transport.UpdateTaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "Invalid request body")
		return
	}
	if req.Title == nil || *req.Title == "" || req.Description == nil || *req.Description == "" || req.Completed == nil {
		h.respondInvalid(ctx, "Title, description, and completed status are required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.service.UpdateTask(stdCtx, id, *req.Title, *req.Description, *req.Completed)
	if err != nil {
		h.respondError(ctx, "Failed to update task", err)
		return
	}
	if task == nil {
		h.respondNotFound(ctx, "Task not found")
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/{id}.
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	id, ok := h.taskID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	deleted, err := h.service.DeleteTask(stdCtx, id)
	if err != nil {
		h.respondError(ctx, "Failed to delete task", err)
		return
	}
	if !deleted {
		h.respondNotFound(ctx, "Task not found")
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewMessage("Task deleted successfully"))
}

func (h *TaskHandler) taskID(ctx *fasthttp.RequestCtx) (string, bool) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "Missing task id")
		return "", false
	}
	return id, true
}
