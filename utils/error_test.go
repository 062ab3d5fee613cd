package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.DebugLevel)

	r := gin.New()
	r.Use(ErrorHandler())
	r.Use(func(c *gin.Context) {
		c.Header(RequestIDHeader, "req-42")
		c.Set(ContextLoggerKey, zap.New(core).With(zap.String("requestID", "req-42")))
		c.Next()
	})
	return r, logs
}

func TestErrorHandlerLogsWithRequestLogger(t *testing.T) {
	r, logs := newObservedRouter(t)
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "req-42", resp.RequestID)

	entries := logs.FilterMessage("Unhandled panic").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0].ContextMap()["requestID"])
}

func TestJSONErrorCarriesRequestID(t *testing.T) {
	r, logs := newObservedRouter(t)
	r.GET("/bad", func(c *gin.Context) {
		JSONError(c, http.StatusBadRequest, "Invalid request", "missing field")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bad", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid request","details":"missing field","requestId":"req-42"}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("Invalid request").Len())
}
