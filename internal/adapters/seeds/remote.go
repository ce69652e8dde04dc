package seeds

import (
	"context"

	"github.com/jsamuelsen/recipe-service/internal/domain"
	"github.com/jsamuelsen/recipe-service/internal/ports"
)

// Feed is a remote collection of recipes, such as acl.RecipeFeed.
type Feed interface {
	Name() string
	FetchAll(ctx context.Context) ([]domain.Recipe, error)
}

// Remote seeds the catalog from a Feed. A remote source is optional by default:
// when the feed is down the service starts with the other sources only.
type Remote struct {
	feed     Feed
	required bool
}

var _ ports.SeedSource = (*Remote)(nil)

// RemoteOption configures a Remote.
type RemoteOption func(*Remote)

// WithRequired makes a feed failure abort the bootstrap.
func WithRequired() RemoteOption {
	return func(r *Remote) { r.required = true }
}

// NewRemote creates a remote seed source. It panics if feed is nil.
func NewRemote(feed Feed, opts ...RemoteOption) *Remote {
	if feed == nil {
		panic("seeds: remote source requires a feed")
	}

	r := &Remote{feed: feed}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Name implements ports.SeedSource.
func (r *Remote) Name() string {
	return "remote:" + r.feed.Name()
}

// Load fetches every recipe from the feed.
func (r *Remote) Load(ctx context.Context) ([]domain.Recipe, error) {
	return r.feed.FetchAll(ctx)
}

// Optional reports whether a failure may be skipped during bootstrap.
func (r *Remote) Optional() bool {
	return !r.required
}
