package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jsamuelsen/recipe-service/internal/adapters/clients"
	"github.com/jsamuelsen/recipe-service/internal/domain"
)

// remote is a feed as the ACL sees it. Every failure leaving it is a domain
// error whose subject is the feed's service name.
type remote struct {
	client  *clients.Client
	service string
}

// get returns the body of a 2xx answer for the caller to close.
func (r remote) get(ctx context.Context, path, operation string) (io.ReadCloser, error) {
	resp, err := r.client.Get(ctx, path)
	if err != nil {
		return nil, callError(err, r.service, operation)
	}

	if resp.StatusCode/100 != 2 {
		defer func() { _ = resp.Body.Close() }()

		return nil, responseError(resp, r.service, operation, path)
	}

	return resp.Body, nil
}

// getJSON fetches path and decodes the answer into T. A body that is not
// the expected JSON leaves the feed unavailable.
func getJSON[T any](ctx context.Context, r remote, path, operation string) (T, error) {
	var out T

	body, err := r.get(ctx, path, operation)
	if err != nil {
		return out, err
	}
	defer func() { _ = body.Close() }()

	if err := json.NewDecoder(body).Decode(&out); err != nil {
		return out, domain.Unavailable(r.service, fmt.Sprintf("%s: undecodable answer: %v", operation, err))
	}

	return out, nil
}

// translateEach keeps the items translate accepts, in order. The error joins
// one entry per rejected item and is nil when none was rejected.
func translateEach[E, D any](items []E, translate func(*E) (D, error)) ([]D, error) {
	kept := make([]D, 0, len(items))

	var rejected []error

	for i := range items {
		d, err := translate(&items[i])
		if err != nil {
			rejected = append(rejected, fmt.Errorf("item %d: %w", i, err))
			continue
		}

		kept = append(kept, d)
	}

	if len(rejected) == 0 {
		return kept, nil
	}

	return kept, &rejections{errs: rejected}
}

// rejections lists the feed records translateEach dropped.
type rejections struct {
	errs []error
}

func (r *rejections) Error() string {
	return fmt.Sprintf("%d record(s) rejected, first: %v", len(r.errs), r.errs[0])
}

func (r *rejections) Unwrap() []error { return r.errs }

func requireText(field, value string) error {
	if value == "" {
		return domain.Invalid(field, "is required")
	}

	return nil
}

func nonNegative(field string, value float64) error {
	if value < 0 {
		return domain.Invalid(field, fmt.Sprintf("must not be negative, got %v", value))
	}

	return nil
}
