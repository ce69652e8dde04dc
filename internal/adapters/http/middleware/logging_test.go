package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logBuffer is a goroutine-safe sink for JSON log lines.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *logBuffer) entries(t *testing.T) []map[string]any {
	t.Helper()

	b.mu.Lock()
	defer b.mu.Unlock()

	var out []map[string]any

	dec := json.NewDecoder(bytes.NewReader(b.buf.Bytes()))
	for dec.More() {
		var entry map[string]any
		require.NoError(t, dec.Decode(&entry))
		out = append(out, entry)
	}

	return out
}

func newCapturingLogger() (*slog.Logger, *logBuffer) {
	sink := &logBuffer{}
	return slog.New(slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: slog.LevelDebug})), sink
}

func TestLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		target    string
		status    int
		wantLevel string
		wantRoute string
		wantQuery string
	}{
		{
			name:      "successful query",
			target:    "/api/v1/recipes?category=Quick&sort=time",
			status:    http.StatusOK,
			wantLevel: "INFO",
			wantRoute: "/api/v1/recipes",
			wantQuery: "category=Quick&sort=time",
		},
		{
			name:      "missing recipe",
			target:    "/api/v1/recipes/nope",
			status:    http.StatusNotFound,
			wantLevel: "WARN",
			wantRoute: "/api/v1/recipes/:id",
		},
		{
			name:      "store failure",
			target:    "/api/v1/recipes/broken",
			status:    http.StatusInternalServerError,
			wantLevel: "ERROR",
			wantRoute: "/api/v1/recipes/:id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, sink := newCapturingLogger()

			router := gin.New()
			router.Use(Logging(logger))
			router.GET("/api/v1/recipes", func(c *gin.Context) { c.Status(tt.status) })
			router.GET("/api/v1/recipes/:id", func(c *gin.Context) { c.Status(tt.status) })

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.target, http.NoBody))

			entries := sink.entries(t)
			require.Len(t, entries, 1)

			entry := entries[0]
			assert.Equal(t, "request completed", entry["msg"])
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.wantRoute, entry["route"])
			assert.InDelta(t, tt.status, entry["status"], 0)

			if tt.wantQuery == "" {
				assert.NotContains(t, entry, "query")
			} else {
				assert.Equal(t, tt.wantQuery, entry["query"])
			}
		})
	}
}

func TestLogging_SkipsProbes(t *testing.T) {
	t.Parallel()

	logger, sink := newCapturingLogger()

	router := gin.New()
	router.Use(Logging(logger))
	router.GET("/-/ready", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody))

	assert.Empty(t, sink.entries(t))
}

func TestLogging_UnmatchedRoute(t *testing.T) {
	t.Parallel()

	logger, sink := newCapturingLogger()

	router := gin.New()
	router.Use(Logging(logger))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v2/recipes", http.NoBody))

	entries := sink.entries(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "unmatched", entries[0]["route"])
	assert.Equal(t, "/api/v2/recipes", entries[0]["path"])
}

func TestLogging_UsesRequestLogger(t *testing.T) {
	t.Parallel()

	fallback, fallbackSink := newCapturingLogger()
	scoped, scopedSink := newCapturingLogger()

	router := gin.New()
	router.Use(func(c *gin.Context) {
		ctx := ContextWithRequestID(c.Request.Context(), "req-9")
		c.Request = c.Request.WithContext(withLogger(ctx, scoped.With(slog.String("request_id", "req-9"))))
		c.Next()
	})
	router.Use(Logging(fallback))
	router.GET("/api/v1/categories", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/categories", http.NoBody))

	assert.Empty(t, fallbackSink.entries(t))

	entries := scopedSink.entries(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "req-9", entries[0]["request_id"])
	assert.Contains(t, entries[0]["errors"], assert.AnError.Error())
}
