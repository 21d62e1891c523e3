package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskforge/backend/api/transport"
	"github.com/taskforge/backend/domain"
	"github.com/taskforge/backend/pkg/httpcontext"
)

type baseHandler struct {
	adapter    *httpcontext.Adapter
	logger     *zap.Logger
	production bool
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger, production bool) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger, production: production}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

func (h baseHandler) respondSuccess(ctx *fasthttp.RequestCtx, status int, data interface{}) {
	h.respondJSON(ctx, status, transport.NewSuccess(data))
}

func (h baseHandler) respondNotFound(ctx *fasthttp.RequestCtx, message string) {
	h.respondJSON(ctx, http.StatusNotFound, transport.NewError(message, ""))
}

func (h baseHandler) respondInvalid(ctx *fasthttp.RequestCtx, message string) {
	h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(message, ""))
}

// respondError maps domain error codes to statuses. Underlying error detail
// is exposed only outside production.
func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, message string, err error) {
	status := mapError(err)
	detail := ""
	if !h.production && err != nil {
		detail = err.Error()
	}
	h.logger.Error(message, zap.Int("status", status), zap.Error(err))
	h.respondJSON(ctx, status, transport.NewError(message, detail))
}

func mapError(err error) int {
	switch {
	case domain.IsDomainError(err, domain.ErrCodeInvalid):
		return http.StatusBadRequest
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
