package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskforge/backend/api/transport"
	"github.com/taskforge/backend/events"
	"github.com/taskforge/backend/pkg/httpcontext"
)

// QueueHandler accepts task creation requests and hands them to the queue
// for asynchronous processing by the worker.
type QueueHandler struct {
	baseHandler
	publisher events.QueuePublisher
}

func NewQueueHandler(publisher events.QueuePublisher, adapter *httpcontext.Adapter, logger *zap.Logger, production bool) *QueueHandler {
	return &QueueHandler{
		baseHandler: newBaseHandler(adapter, logger, production),
		publisher:   publisher,
	}
}

// EnqueueTask handles POST /api/queue/tasks.
func (h *QueueHandler) EnqueueTask(ctx *fasthttp.RequestCtx) {
	var req transport.QueueTaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "Invalid request body")
		return
	}
	if req.Title == "" {
		h.respondInvalid(ctx, "Missing required field: title")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	message := events.NewTaskRequestMessage(req.Title, req.Description)
	if err := h.publisher.Send(stdCtx, message); err != nil {
		h.respondError(ctx, "Failed to send task to queue", err)
		return
	}

	h.logger.Info("task request queued", zap.String("request_id", message.RequestID))
	h.respondJSON(ctx, http.StatusAccepted, transport.Envelope{
		Success: true,
		Message: "Task request sent to queue for processing",
		Data:    map[string]string{"requestId": message.RequestID},
	})
}
