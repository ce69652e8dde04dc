// Package clients is the outbound HTTP plumbing for remote recipe feeds:
// retries with backoff, a circuit breaker, tracing and request metrics.
package clients

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrCircuitOpen is returned without contacting the feed while its breaker is open.
var ErrCircuitOpen = errors.New("circuit breaker open")

// ErrRetriesExhausted matches every *RetryError.
var ErrRetriesExhausted = errors.New("retries exhausted")

// RetryError is a call that failed on every attempt it was allowed.
type RetryError struct {
	Attempts int

	// Last is the failure of the final attempt.
	Last error
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("gave up after %d attempt(s): %v", e.Attempts, e.Last)
}

func (e *RetryError) Unwrap() []error {
	return []error{ErrRetriesExhausted, e.Last}
}

// StatusError is a response whose status is worth another attempt.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("feed answered %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// retryable reports whether the status signals a transient feed problem.
func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
