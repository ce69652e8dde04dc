package acl

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen/recipe-service/internal/domain"
)

// errorBody is what a feed may send with a failure, nested under "error" or flat.
type errorBody struct {
	Nested struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`

	Code    string `json:"code"`
	Message string `json:"message"`
}

func (b *errorBody) code() string    { return cmp.Or(b.Nested.Code, b.Code) }
func (b *errorBody) message() string { return cmp.Or(b.Nested.Message, b.Message) }

// readErrorBody decodes a failure body. It returns nil for an empty or
// non-JSON body, or one naming neither code nor message.
func readErrorBody(r io.Reader) *errorBody {
	if r == nil {
		return nil
	}

	var body errorBody
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return nil
	}

	if body.code() == "" && body.message() == "" {
		return nil
	}

	return &body
}

// statusKinds is what a feed status means for the catalog. Rejected
// credentials are the service's own, so they leave the feed unavailable.
var statusKinds = map[int]error{
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusConflict:            domain.ErrConflict,
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusUnauthorized:        domain.ErrUnavailable,
	http.StatusForbidden:           domain.ErrUnavailable,
	http.StatusTooManyRequests:     domain.ErrUnavailable,
}

func kindForStatus(status int) error {
	if kind, ok := statusKinds[status]; ok {
		return kind
	}

	if status >= http.StatusInternalServerError {
		return domain.ErrUnavailable
	}

	return domain.ErrValidation
}

// callError reports a call that produced no usable response: an open
// circuit, exhausted retries or a transport failure. The feed is unavailable
// in every case.
func callError(err error, service, operation string) error {
	return domain.Unavailable(service, operation+": "+err.Error())
}

// responseError turns a non-2xx feed response into a domain error. resource
// is the path that was requested, reported on a 404.
func responseError(resp *http.Response, service, operation, resource string) error {
	body := readErrorBody(resp.Body)

	reason := fmt.Sprintf("%s answered %d", operation, resp.StatusCode)
	if body != nil && body.message() != "" {
		reason = body.message()
	}

	switch kind := kindForStatus(resp.StatusCode); kind {
	case domain.ErrNotFound:
		return domain.NotFound(service, resource)

	case domain.ErrValidation:
		if body != nil && len(body.Nested.Details) > 0 {
			field := slices.Sorted(maps.Keys(body.Nested.Details))[0]
			return domain.Invalid(field, body.Nested.Details[field])
		}

		return domain.Invalid("", reason)

	default:
		return &domain.Error{Kind: kind, Subject: service, Reason: reason}
	}
}
