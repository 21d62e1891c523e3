package middleware

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskforge/backend/events"
)

// responseEvent mirrors a finished HTTP exchange onto the queue.
type responseEvent struct {
	EventType string          `json:"eventType"`
	Method    string          `json:"method"`
	Path      string          `json:"path"`
	Status    int             `json:"status"`
	Response  json.RawMessage `json:"response,omitempty"`
	Timestamp string          `json:"timestamp"`
}

// ResponseQueue publishes every response to the queue publisher after the
// wrapped handler runs. It is a pure observer: publish failures are logged
// and the response is never altered.
func ResponseQueue(publisher events.QueuePublisher, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			next(ctx)

			event := responseEvent{
				EventType: "http.response",
				Method:    string(ctx.Method()),
				Path:      string(ctx.Path()),
				Status:    ctx.Response.StatusCode(),
				Response:  append(json.RawMessage(nil), ctx.Response.Body()...),
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			}

			sendCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := publisher.Send(sendCtx, event); err != nil {
				logger.Warn("failed to mirror response to queue",
					zap.String("path", event.Path),
					zap.Error(err))
			}
		}
	}
}
