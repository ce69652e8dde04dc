package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const uuidPattern = `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`

type capturedIDs struct {
	gin, ctx string
}

// serveWithID runs one request through mw and reports what the handler saw.
func serveWithID(t *testing.T, mw gin.HandlerFunc, header, inbound string, get func(*gin.Context) string, fromCtx func(context.Context) string) (*httptest.ResponseRecorder, capturedIDs) {
	t.Helper()

	var seen capturedIDs

	router := gin.New()
	router.Use(mw)
	router.GET("/api/v1/recipes", func(c *gin.Context) {
		seen.gin = get(c)
		seen.ctx = fromCtx(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", http.NoBody)
	if inbound != "" {
		req.Header.Set(header, inbound)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	return w, seen
}

func TestIDMiddleware(t *testing.T) {
	t.Parallel()

	kinds := []struct {
		name    string
		mw      func() gin.HandlerFunc
		header  string
		get     func(*gin.Context) string
		fromCtx func(context.Context) string
	}{
		{"request id", RequestID, HeaderRequestID, GetRequestID, RequestIDFromContext},
		{"correlation id", CorrelationID, HeaderCorrelationID, GetCorrelationID, CorrelationIDFromContext},
	}

	tests := []struct {
		name    string
		inbound string
		want    string
		minted  bool
	}{
		{name: "mints a uuid when absent", minted: true},
		{name: "adopts the caller's id", inbound: "checkout-7f3a", want: "checkout-7f3a"},
		{name: "trims surrounding space", inbound: "  batch-42 ", want: "batch-42"},
		{name: "replaces an oversized id", inbound: strings.Repeat("x", maxInboundIDLength+1), minted: true},
		{name: "replaces an id with spaces inside", inbound: "two words", minted: true},
		{name: "replaces a non-ascii id", inbound: "crème-brûlée", minted: true},
	}

	for _, kind := range kinds {
		for _, tt := range tests {
			t.Run(kind.name+"/"+tt.name, func(t *testing.T) {
				t.Parallel()

				w, seen := serveWithID(t, kind.mw(), kind.header, tt.inbound, kind.get, kind.fromCtx)

				echoed := w.Header().Get(kind.header)
				assert.Equal(t, echoed, seen.gin)
				assert.Equal(t, echoed, seen.ctx)

				if tt.minted {
					assert.Regexp(t, uuidPattern, echoed)
					return
				}

				assert.Equal(t, tt.want, echoed)
			})
		}
	}
}

func TestIDMiddleware_BothIDsIndependent(t *testing.T) {
	t.Parallel()

	var requestID, correlationID string

	router := gin.New()
	router.Use(RequestID(), CorrelationID())
	router.GET("/api/v1/categories", func(c *gin.Context) {
		requestID = RequestIDFromContext(c.Request.Context())
		correlationID = CorrelationIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", http.NoBody)
	req.Header.Set(HeaderCorrelationID, "order-991")

	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Regexp(t, uuidPattern, requestID)
	assert.Equal(t, "order-991", correlationID)
}

func TestIDAccessors_Unset(t *testing.T) {
	t.Parallel()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(ContextKeyRequestID, 42)

	assert.Empty(t, GetRequestID(c), "non-string values are ignored")
	assert.Empty(t, GetCorrelationID(c))
	assert.Empty(t, RequestIDFromContext(context.Background()))
	assert.Empty(t, CorrelationIDFromContext(nil)) //nolint:staticcheck // nil context is tolerated
}

func TestContextWithIDs(t *testing.T) {
	t.Parallel()

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithCorrelationID(ctx, "corr-1")

	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Equal(t, "corr-1", CorrelationIDFromContext(ctx))
}
