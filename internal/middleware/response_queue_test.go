package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

type capturingPublisher struct {
	messages []interface{}
	fail     bool
}

func (p *capturingPublisher) Send(_ context.Context, message interface{}) error {
	if p.fail {
		return errors.New("send failed")
	}
	p.messages = append(p.messages, message)
	return nil
}

func (p *capturingPublisher) Close(context.Context) error { return nil }

func TestResponseQueueMirrorsResponse(t *testing.T) {
	publisher := &capturingPublisher{}
	wrapped := ResponseQueue(publisher, zap.NewNop())(func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(http.StatusCreated)
		ctx.SetBodyString(`{"success":true}`)
	})

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(http.MethodPost)
	ctx.Request.SetRequestURI("/api/tasks")
	wrapped(&ctx)

	assert.Equal(t, http.StatusCreated, ctx.Response.StatusCode())
	require.Len(t, publisher.messages, 1)

	event, ok := publisher.messages[0].(responseEvent)
	require.True(t, ok)
	assert.Equal(t, "http.response", event.EventType)
	assert.Equal(t, http.MethodPost, event.Method)
	assert.Equal(t, "/api/tasks", event.Path)
	assert.Equal(t, http.StatusCreated, event.Status)
	assert.Equal(t, json.RawMessage(`{"success":true}`), event.Response)
}

func TestResponseQueueFailureDoesNotAffectResponse(t *testing.T) {
	publisher := &capturingPublisher{fail: true}
	wrapped := ResponseQueue(publisher, zap.NewNop())(func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(http.StatusOK)
		ctx.SetBodyString(`{"success":true}`)
	})

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(http.MethodGet)
	ctx.Request.SetRequestURI("/api/tasks")
	wrapped(&ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, `{"success":true}`, string(ctx.Response.Body()))
}
