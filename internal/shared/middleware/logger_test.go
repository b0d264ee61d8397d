package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })
	return &buf
}

func performRequest(handler gin.HandlerFunc, target string) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.Use(Logger())
	r.GET("/books", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
}

func TestLogger(t *testing.T) {
	t.Run("logs the request id and full query string", func(t *testing.T) {
		buf := captureLog(t)

		performRequest(func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		}, "/books?search=ion&page=2")

		line := buf.String()
		require.NotEmpty(t, line)
		assert.Contains(t, line, `"request_id":`)
		assert.Contains(t, line, `"path":"/books?search=ion&page=2"`)
		assert.Contains(t, line, `"level":"info"`)
	})

	t.Run("escalates client errors to warn", func(t *testing.T) {
		buf := captureLog(t)

		performRequest(func(c *gin.Context) {
			c.String(http.StatusNotFound, "nope")
		}, "/books")

		assert.Contains(t, buf.String(), `"level":"warn"`)
	})

	t.Run("escalates server errors to error", func(t *testing.T) {
		buf := captureLog(t)

		performRequest(func(c *gin.Context) {
			c.String(http.StatusInternalServerError, "boom")
		}, "/books")

		line := buf.String()
		assert.Contains(t, line, `"level":"error"`)
		assert.Contains(t, line, `"status":500`)
	})
}
