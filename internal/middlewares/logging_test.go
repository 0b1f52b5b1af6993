package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core).Sugar()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	handler := LoggingMiddleware(log)(next)

	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "short and stout", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "request", entries[0].Message)
	assert.Equal(t, "response", entries[1].Message)

	reqFields := entries[0].ContextMap()
	assert.Equal(t, http.MethodGet, reqFields["method"])
	assert.Equal(t, "/teapot", reqFields["uri"])

	respFields := entries[1].ContextMap()
	assert.Equal(t, int64(http.StatusTeapot), respFields["status"])
	assert.Equal(t, reqFields["request_id"], respFields["request_id"])
}
