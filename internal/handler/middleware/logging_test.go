//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"vip-discount/internal/handler/middleware"
	"vip-discount/internal/pkg/config"
	"vip-discount/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, logs *bytes.Buffer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig().Log
	cfg.Level = "info"
	l := middleware.NewLoggerWithWriter(cfg, logs)

	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(l.LoggingMiddleware())
	r.Use(middleware.ErrorHandler())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})
	r.GET("/panic", func(_ *gin.Context) {
		panic("boom")
	})
	return r
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("assigns a request id", func(t *testing.T) {
		logs := &bytes.Buffer{}
		rec := httptest.PerformRequest(t, newRouter(t, logs), http.MethodGet, "/ok", nil, "")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)

		_, err := uuid.Parse(body["request_id"])
		require.NoError(t, err)
		httptest.AssertHeaders(t, rec, map[string]string{"X-Request-ID": body["request_id"]})
		assert.Contains(t, logs.String(), "Request completed")
		assert.Contains(t, logs.String(), "status_code=200")
	})

	t.Run("reuses a valid incoming request id", func(t *testing.T) {
		id := uuid.NewString()
		rec := httptest.PerformRequestWithHeaders(t, newRouter(t, &bytes.Buffer{}), http.MethodGet, "/ok", nil,
			map[string]string{"X-Request-ID": id})

		httptest.AssertHeaders(t, rec, map[string]string{"X-Request-ID": id})
	})

	t.Run("replaces a malformed incoming request id", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, newRouter(t, &bytes.Buffer{}), http.MethodGet, "/ok", nil,
			map[string]string{"X-Request-ID": "not-a-uuid"})

		assert.NotEqual(t, "not-a-uuid", rec.Header().Get("X-Request-ID"))
	})

	t.Run("recovers from panics", func(t *testing.T) {
		logs := &bytes.Buffer{}
		rec := httptest.PerformRequest(t, newRouter(t, logs), http.MethodGet, "/panic", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.Contains(t, logs.String(), "recovered from panic")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, middleware.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, middleware.ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, middleware.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, middleware.ParseLevel("verbose"))
}
