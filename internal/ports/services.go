// Package ports declares the contracts between the catalog service and its
// adapters: storage, seed sources, id minting, catalog events and health checks.
// Blocking methods take a context and report failures with the domain errors.
package ports

import (
	"context"

	"github.com/jsamuelsen/recipe-service/internal/domain"
)

// CatalogStore holds the ordered recipe catalog.
// Implementations must be safe for concurrent use and serialize mutations so that
// ids stay unique and enumeration order is stable.
type CatalogStore interface {
	// Bootstrap fills an empty store with seed recipes, keeping their order.
	// Returns domain.ErrConflict if the store was already bootstrapped or an id repeats.
	Bootstrap(ctx context.Context, seeds []domain.Recipe) error

	// Prepend adds a recipe ahead of every existing entry.
	// Returns domain.ErrConflict if the id is already held.
	Prepend(ctx context.Context, recipe domain.Recipe) error

	// Snapshot returns a copy of all recipes, newest first.
	Snapshot(ctx context.Context) ([]domain.Recipe, error)

	// Get returns the recipe with the given id.
	// Returns domain.ErrNotFound if no such recipe exists.
	Get(ctx context.Context, id string) (domain.Recipe, error)

	// Len returns the number of recipes held.
	Len(ctx context.Context) int
}

// SeedSource supplies recipes for the initial catalog.
type SeedSource interface {
	// Name identifies the source in logs and errors.
	Name() string

	// Load returns the source's recipes in their intended display order.
	// Returns domain.ErrUnavailable if the backing resource cannot be read.
	Load(ctx context.Context) ([]domain.Recipe, error)
}

// IDGenerator mints recipe ids that are unique for the life of the process.
type IDGenerator interface {
	NewID() string
}

// CatalogEvents is notified about catalog changes, typically to update metrics.
type CatalogEvents interface {
	RecipeCreated(recipe domain.Recipe, catalogSize int)
	CatalogQueried(params domain.QueryParams, matched int)
	CatalogBootstrapped(size int)
}
