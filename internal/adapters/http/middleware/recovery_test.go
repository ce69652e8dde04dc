package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/recipe-service/internal/platform/logging"
)

func withLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return logging.WithContext(ctx, logger)
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   string
		wantLogged bool
	}{
		{
			name:       "passes through",
			handler:    func(c *gin.Context) { c.String(http.StatusOK, "ok") },
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name:       "panic becomes an error envelope",
			handler:    func(*gin.Context) { panic("catalog exploded") },
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"INTERNAL_ERROR"`,
			wantLogged: true,
		},
		{
			name: "panic after writing keeps the partial response",
			handler: func(c *gin.Context) {
				c.String(http.StatusAccepted, "partial")
				c.Writer.Flush()
				panic("late")
			},
			wantStatus: http.StatusAccepted,
			wantBody:   "partial",
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, sink := newCapturingLogger()

			router := gin.New()
			router.Use(Recovery(logger, nil))
			router.GET("/api/v1/recipes", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/recipes", http.NoBody))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)

			entries := sink.entries(t)
			if !tt.wantLogged {
				assert.Empty(t, entries)
				return
			}

			require.Len(t, entries, 1)
			assert.Equal(t, "panic recovered", entries[0]["msg"])
			assert.NotEmpty(t, entries[0]["stack"])
		})
	}
}

func TestRecovery_ReportsPanic(t *testing.T) {
	t.Parallel()

	logger, _ := newCapturingLogger()

	var (
		reported any
		stack    []byte
	)

	router := gin.New()
	router.Use(Recovery(logger, func(err any, s []byte) {
		reported = err
		stack = s
	}))
	router.POST("/api/v1/recipes", func(*gin.Context) { panic("bad submission") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/recipes", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "bad submission", reported)
	assert.Contains(t, string(stack), "panic")
}
