package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Gather calls fn for every item concurrently, at most limit at a time when
// limit is positive, and returns the results in item order. The first error
// cancels the context the other calls see and is returned unwrapped.
func Gather[S, T any](ctx context.Context, limit int, items []S, fn func(context.Context, S) (T, error)) ([]T, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	out := make([]T, len(items))

	for i, item := range items {
		g.Go(func() error {
			result, err := fn(ctx, item)
			out[i] = result

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
