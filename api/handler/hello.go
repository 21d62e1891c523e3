package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskforge/backend/pkg/httpcontext"
)

type HelloHandler struct {
	baseHandler
	environment string
}

func NewHelloHandler(environment string, adapter *httpcontext.Adapter, logger *zap.Logger) *HelloHandler {
	return &HelloHandler{
		baseHandler: newBaseHandler(adapter, logger, false),
		environment: environment,
	}
}

// Hello handles GET / and GET /api/hello.
func (h *HelloHandler) Hello(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"message":     "Hello from taskforge",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.environment,
	})
}
