package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/recipe-service/internal/domain"
	"github.com/jsamuelsen/recipe-service/internal/platform/logging"
)

var codeByKind = map[error]string{
	domain.ErrNotFound:    ErrorCodeNotFound,
	domain.ErrConflict:    ErrorCodeConflict,
	domain.ErrValidation:  ErrorCodeValidation,
	domain.ErrUnavailable: ErrorCodeUnavailable,
}

// MapDomainError returns the status and envelope for err. A passed request
// deadline is a 504. Other errors that are not catalog failures become a 500
// with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeTimeout, "request timeout exceeded")
	}

	code, ok := codeByKind[domain.KindOf(err)]
	if !ok {
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, "an internal error occurred")
	}

	return HTTPStatusFromCode(code), NewErrorResponse(code, err.Error()).WithDetails(fieldDetails(err))
}

func fieldDetails(err error) map[string]string {
	var fields FieldErrors
	if errors.As(err, &fields) {
		return fields
	}

	var de *domain.Error
	if errors.As(err, &de) && de.Kind == domain.ErrValidation && de.Subject != "" {
		return map[string]string{de.Subject: de.Reason}
	}

	return nil
}

// GetTraceID returns the OpenTelemetry trace ID of the request, or "".
func GetTraceID(c *gin.Context) string {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}

// HandleError writes the envelope for err. Internal errors are logged in full
// since the client only sees a generic message.
func HandleError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	status, resp := MapDomainError(err)
	resp.TraceID = GetTraceID(c)

	if status == http.StatusInternalServerError {
		logging.FromContext(ctx).ErrorContext(ctx, "internal error",
			slog.String("error", err.Error()),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.JSON(status, resp)
}

// RespondWithErrorCode writes an envelope for a failure detected by the
// transport itself rather than the catalog.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	c.JSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// AbortWithErrorCode is RespondWithErrorCode for middleware that must stop the chain.
func AbortWithErrorCode(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}
