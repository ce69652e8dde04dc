// Package app contains application services that orchestrate use cases.
// It coordinates the pure query pipeline in domain with the catalog store and
// seed sources behind ports. HTTP specifics belong to adapters.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/recipe-service/internal/domain"
	"github.com/jsamuelsen/recipe-service/internal/platform/logging"
	"github.com/jsamuelsen/recipe-service/internal/ports"
)

// maxIDAttempts bounds how many ids Submit mints before giving up on a free one.
const maxIDAttempts = 8

// idObserver is implemented by generators that must skip ids already in use.
type idObserver interface {
	Observe(id string)
}

// CatalogService browses and extends the recipe catalog.
// It holds no query state: callers own and thread domain.QueryParams.
type CatalogService struct {
	store    ports.CatalogStore
	ids      ports.IDGenerator
	events   ports.CatalogEvents
	executor *Executor
	logger   *slog.Logger
	pageSize int
}

// CatalogServiceConfig contains the dependencies of the catalog service.
type CatalogServiceConfig struct {
	Store ports.CatalogStore
	IDs   ports.IDGenerator

	// Events is optional.
	Events ports.CatalogEvents
	Logger *slog.Logger

	// PageSize defaults to domain.DefaultPageSize.
	PageSize int
}

// CatalogOptions describes the values a client can choose from when browsing or submitting.
type CatalogOptions struct {
	Selectors    []domain.Selector
	Categories   []domain.Category
	Difficulties []domain.Difficulty
	SortModes    []domain.SortMode
	FormDefaults domain.RawFields
	PageSize     int
}

// NewCatalogService creates a catalog service. It panics if Store or IDs is nil.
func NewCatalogService(cfg CatalogServiceConfig) *CatalogService {
	if cfg.Store == nil {
		panic("app: catalog service requires a store")
	}

	if cfg.IDs == nil {
		panic("app: catalog service requires an id generator")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "app.CatalogService"))

	pageSize := cfg.PageSize
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}

	events := cfg.Events
	if events == nil {
		events = noopEvents{}
	}

	return &CatalogService{
		store:    cfg.Store,
		ids:      cfg.IDs,
		events:   events,
		executor: NewExecutor(logger),
		logger:   logger,
		pageSize: pageSize,
	}
}

// PageSize returns the default page size.
func (s *CatalogService) PageSize() int {
	return s.pageSize
}

// Bootstrap initializes the catalog from seed recipes, keeping their order.
// Seeds are sanitized and seeds without an id get a generated one.
// Returns domain.ErrConflict if the catalog was already bootstrapped or ids repeat.
func (s *CatalogService) Bootstrap(ctx context.Context, seeds []domain.Recipe) error {
	logger := logging.FromContextOr(ctx, s.logger)

	if obs, ok := s.ids.(idObserver); ok {
		for _, r := range seeds {
			obs.Observe(r.ID)
		}
	}

	clean := make([]domain.Recipe, 0, len(seeds))
	for _, r := range seeds {
		r = domain.SanitizeSeed(r)
		if r.ID == "" {
			r.ID = s.ids.NewID()
		}

		clean = append(clean, r)
	}

	if err := s.store.Bootstrap(ctx, clean); err != nil {
		return fmt.Errorf("bootstrapping catalog: %w", err)
	}

	size := s.store.Len(ctx)
	s.events.CatalogBootstrapped(size)

	logger.InfoContext(ctx, "catalog bootstrapped", slog.Int("recipes", size))

	return nil
}

// GetPage runs the query pipeline and returns one page of the result.
// A pageSize below 1 uses the service default. It never fails on query input;
// errors come only from the store or a done ctx.
func (s *CatalogService) GetPage(ctx context.Context, params domain.QueryParams, pageSize int) (domain.Page[domain.Recipe], error) {
	if err := ctx.Err(); err != nil {
		return domain.Page[domain.Recipe]{}, fmt.Errorf("querying catalog: %w", err)
	}

	if pageSize < 1 {
		pageSize = s.pageSize
	}

	recipes, err := s.store.Snapshot(ctx)
	if err != nil {
		return domain.Page[domain.Recipe]{}, fmt.Errorf("reading catalog: %w", err)
	}

	ranked := domain.Compose(recipes, params)
	page := domain.Paginate(ranked, pageSize, params.Page)

	s.events.CatalogQueried(params, len(ranked))

	logging.FromContextOr(ctx, s.logger).DebugContext(ctx, "catalog queried",
		slog.String("selector", params.Selector.String()),
		slog.String("sort", string(params.Sort)),
		slog.Int("page", page.Number),
		slog.Int("matched", len(ranked)),
	)

	return page, nil
}

// Get returns one recipe by id.
func (s *CatalogService) Get(ctx context.Context, id string) (domain.Recipe, error) {
	r, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("getting recipe: %w", err)
	}

	return r, nil
}

// Submit normalizes raw fields into a new recipe and prepends it to the catalog.
// Input is never rejected; an error means the store refused the recipe or ctx is done.
func (s *CatalogService) Submit(ctx context.Context, raw domain.RawFields) (domain.Recipe, error) {
	op := Operation[domain.RawFields, domain.Recipe, domain.Recipe]{
		Name: "submit_recipe",
		Validate: func(ctx context.Context, _ domain.RawFields) error {
			return ctx.Err()
		},
		Perform: func(ctx context.Context, in domain.RawFields) (domain.Recipe, error) {
			id, err := s.freshID(ctx)
			if err != nil {
				return domain.Recipe{}, err
			}

			return domain.Normalize(in, id), nil
		},
		Verify: func(ctx context.Context, _ domain.RawFields, r domain.Recipe) error {
			_, err := s.store.Get(ctx, r.ID)
			if err == nil {
				return domain.DuplicateID(domain.EntityRecipe, r.ID)
			}

			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}

			return err
		},
		Archive: func(ctx context.Context, _ domain.RawFields, r domain.Recipe) error {
			return s.store.Prepend(ctx, r)
		},
		Respond: func(ctx context.Context, _ domain.RawFields, r domain.Recipe) (domain.Recipe, error) {
			size := s.store.Len(ctx)
			s.events.RecipeCreated(r, size)

			logging.FromContextOr(ctx, s.logger).InfoContext(ctx, "recipe created",
				slog.String("recipe_id", r.ID),
				slog.String("category", string(r.Category)),
				slog.Int("catalog_size", size),
			)

			return r, nil
		},
	}

	return Execute(ctx, s.executor, op, raw)
}

// freshID mints ids until one is not in the store. Seeds may carry ids the
// generator would also produce.
func (s *CatalogService) freshID(ctx context.Context) (string, error) {
	for range maxIDAttempts {
		id := s.ids.NewID()

		_, err := s.store.Get(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return id, nil
		}

		if err != nil {
			return "", err
		}

		logging.FromContextOr(ctx, s.logger).DebugContext(ctx, "generated id already taken",
			slog.String("recipe_id", id),
		)
	}

	return "", domain.Conflict(domain.EntityRecipe, fmt.Sprintf("no free id after %d attempts", maxIDAttempts))
}

// Options returns the selectable values for browsing and for the submission form.
func (s *CatalogService) Options() CatalogOptions {
	return CatalogOptions{
		Selectors:    domain.FilterSelectors(),
		Categories:   domain.Categories(),
		Difficulties: domain.Difficulties(),
		SortModes:    domain.SortModes(),
		FormDefaults: domain.DefaultRawFields(),
		PageSize:     s.pageSize,
	}
}

// Len returns the number of recipes in the catalog.
func (s *CatalogService) Len(ctx context.Context) int {
	return s.store.Len(ctx)
}

type noopEvents struct{}

func (noopEvents) RecipeCreated(domain.Recipe, int)        {}
func (noopEvents) CatalogQueried(domain.QueryParams, int) {}
func (noopEvents) CatalogBootstrapped(int)                {}
