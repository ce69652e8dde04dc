// Package middleware holds the gin middleware the recipe API runs behind.
package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/recipe-service/internal/platform/logging"
)

const (
	// HeaderRequestID identifies a single HTTP exchange.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID follows a business transaction across services.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin context key holding the request ID.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the gin context key holding the correlation ID.
	ContextKeyCorrelationID = "correlation_id"

	// maxInboundIDLength bounds identifiers accepted from callers.
	maxInboundIDLength = 128
)

type idKey int

const (
	requestIDKey idKey = iota
	correlationIDKey
)

// tracker is one identifier carried on headers, the gin context, the request
// context and the request logger.
type tracker struct {
	header   string
	ginKey   string
	ctxKey   idKey
	annotate func(context.Context, string) context.Context
}

var (
	requestIDs = tracker{
		header:   HeaderRequestID,
		ginKey:   ContextKeyRequestID,
		ctxKey:   requestIDKey,
		annotate: logging.WithRequestID,
	}

	correlationIDs = tracker{
		header:   HeaderCorrelationID,
		ginKey:   ContextKeyCorrelationID,
		ctxKey:   correlationIDKey,
		annotate: logging.WithCorrelationID,
	}
)

// RequestID returns middleware that adopts the caller's X-Request-ID or mints
// a UUID, echoes it on the response and attaches it to the request logger.
func RequestID() gin.HandlerFunc {
	return requestIDs.middleware()
}

// CorrelationID is RequestID for X-Correlation-ID. An inbound value is kept so
// the recipe feed calls made while serving it carry the caller's transaction.
func CorrelationID() gin.HandlerFunc {
	return correlationIDs.middleware()
}

// GetRequestID returns the request ID stored by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return requestIDs.fromGin(c)
}

// GetCorrelationID returns the correlation ID stored by CorrelationID, or "".
func GetCorrelationID(c *gin.Context) string {
	return correlationIDs.fromGin(c)
}

// RequestIDFromContext returns the request ID carried by ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	return requestIDs.fromContext(ctx)
}

// CorrelationIDFromContext returns the correlation ID carried by ctx, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return correlationIDs.fromContext(ctx)
}

// ContextWithRequestID returns ctx carrying id as its request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// ContextWithCorrelationID returns ctx carrying id as its correlation ID.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

func (tr tracker) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := acceptID(c.GetHeader(tr.header))
		if !ok {
			id = uuid.NewString()
		}

		c.Set(tr.ginKey, id)
		c.Header(tr.header, id)

		ctx := context.WithValue(c.Request.Context(), tr.ctxKey, id)
		c.Request = c.Request.WithContext(tr.annotate(ctx, id))

		c.Next()
	}
}

func (tr tracker) fromGin(c *gin.Context) string {
	if id, ok := c.Get(tr.ginKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}

	return ""
}

func (tr tracker) fromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(tr.ctxKey).(string)

	return id
}

// acceptID trims an inbound identifier and rejects empty, oversized or
// non-printable values so they never reach logs or downstream headers.
func acceptID(raw string) (string, bool) {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > maxInboundIDLength {
		return "", false
	}

	for i := range len(id) {
		if id[i] < 0x21 || id[i] > 0x7e {
			return "", false
		}
	}

	return id, true
}
