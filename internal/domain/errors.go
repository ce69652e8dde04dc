package domain

import (
	"errors"
	"strconv"
	"strings"
)

// Subjects named by catalog errors.
const (
	EntityRecipe  = "recipe"
	EntityCatalog = "catalog"
)

// Failure kinds. Every *Error unwraps to exactly one of them, and adapters
// translate failures on the kind alone.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrValidation  = errors.New("invalid")
	ErrUnavailable = errors.New("unavailable")
)

var kinds = [...]error{ErrNotFound, ErrConflict, ErrValidation, ErrUnavailable}

// Error is a failed catalog operation.
type Error struct {
	Kind error

	// Subject is the entity, request field or dependency the failure concerns.
	Subject string

	// Key identifies one recipe or remote resource, when there is one.
	Key string

	Reason string
}

// Error renders "subject "key": kind: reason", omitting empty parts.
func (e *Error) Error() string {
	var b strings.Builder

	if e.Subject != "" {
		b.WriteString(e.Subject)
		if e.Key != "" {
			b.WriteByte(' ')
			b.WriteString(strconv.Quote(e.Key))
		}
		b.WriteString(": ")
	}

	b.WriteString(e.Kind.Error())

	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NotFound reports a missing recipe or remote resource.
func NotFound(subject, key string) error {
	return &Error{Kind: ErrNotFound, Subject: subject, Key: key}
}

// Conflict reports an operation the catalog's current state forbids.
func Conflict(subject, reason string) error {
	return &Error{Kind: ErrConflict, Subject: subject, Reason: reason}
}

// DuplicateID reports an id that is already taken.
func DuplicateID(subject, id string) error {
	return &Error{Kind: ErrConflict, Subject: subject, Key: id, Reason: "duplicate id"}
}

// Invalid reports a request field that could not be interpreted. An empty
// field means the request as a whole.
func Invalid(field, reason string) error {
	return &Error{Kind: ErrValidation, Subject: field, Reason: reason}
}

// Unavailable reports a dependency, such as a seed source, that could not serve.
func Unavailable(dependency, reason string) error {
	return &Error{Kind: ErrUnavailable, Subject: dependency, Reason: reason}
}

// KindOf returns the failure kind of err, or nil when err is not a catalog failure.
func KindOf(err error) error {
	if err == nil {
		return nil
	}

	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}

	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}

	return nil
}
