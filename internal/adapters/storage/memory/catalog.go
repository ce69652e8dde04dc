// Package memory provides an in-process recipe catalog.
package memory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/jsamuelsen/recipe-service/internal/domain"
	"github.com/jsamuelsen/recipe-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.CatalogStore  = (*Catalog)(nil)
	_ ports.HealthChecker = (*Catalog)(nil)
)

var errNotBootstrapped = errors.New("catalog not bootstrapped")

// Catalog holds recipes in display order: created recipes newest first, then seeds.
// Reads share a lock; every mutation holds the write lock, which keeps ids unique
// and enumeration order stable under concurrent submissions.
type Catalog struct {
	mu           sync.RWMutex
	created      []domain.Recipe // oldest first
	seeds        []domain.Recipe
	byID         map[string]domain.Recipe
	bootstrapped bool
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[string]domain.Recipe)}
}

// Bootstrap fills the catalog with seeds in the order given. It succeeds only once.
// Recipes prepended earlier stay ahead of the seeds. On a duplicate id nothing is stored.
func (c *Catalog) Bootstrap(_ context.Context, seeds []domain.Recipe) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.bootstrapped {
		return domain.Conflict(domain.EntityCatalog, "already bootstrapped")
	}

	seen := make(map[string]struct{}, len(seeds))
	for _, r := range seeds {
		if _, dup := seen[r.ID]; dup {
			return domain.DuplicateID(domain.EntityRecipe, r.ID)
		}

		if _, dup := c.byID[r.ID]; dup {
			return domain.DuplicateID(domain.EntityRecipe, r.ID)
		}

		seen[r.ID] = struct{}{}
	}

	c.seeds = make([]domain.Recipe, 0, len(seeds))
	for _, r := range seeds {
		r = r.Clone()
		c.seeds = append(c.seeds, r)
		c.byID[r.ID] = r
	}

	c.bootstrapped = true

	return nil
}

// Prepend adds a recipe at the front of the catalog.
func (c *Catalog) Prepend(_ context.Context, recipe domain.Recipe) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, dup := c.byID[recipe.ID]; dup {
		return domain.DuplicateID(domain.EntityRecipe, recipe.ID)
	}

	recipe = recipe.Clone()
	c.created = append(c.created, recipe)
	c.byID[recipe.ID] = recipe

	return nil
}

// Snapshot returns a deep copy of the catalog in display order.
func (c *Catalog) Snapshot(_ context.Context) ([]domain.Recipe, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Recipe, 0, len(c.created)+len(c.seeds))
	for _, r := range slices.Backward(c.created) {
		out = append(out, r.Clone())
	}

	for _, r := range c.seeds {
		out = append(out, r.Clone())
	}

	return out, nil
}

// Get returns a copy of the recipe with the given id.
func (c *Catalog) Get(_ context.Context, id string) (domain.Recipe, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.byID[id]
	if !ok {
		return domain.Recipe{}, domain.NotFound(domain.EntityRecipe, id)
	}

	return r.Clone(), nil
}

// Len returns the number of recipes held.
func (c *Catalog) Len(_ context.Context) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.byID)
}

// Name implements ports.HealthChecker.
func (c *Catalog) Name() string {
	return "catalog"
}

// Check implements ports.HealthChecker. The catalog is healthy once bootstrapped.
func (c *Catalog) Check(_ context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.bootstrapped {
		return errNotBootstrapped
	}

	return nil
}
