//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/jsamuelsen/recipe-service/internal/adapters/http"
	"github.com/jsamuelsen/recipe-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/recipe-service/internal/adapters/idgen"
	"github.com/jsamuelsen/recipe-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen/recipe-service/internal/app"
	"github.com/jsamuelsen/recipe-service/internal/platform/config"
	"github.com/jsamuelsen/recipe-service/internal/platform/metrics"
	"github.com/jsamuelsen/recipe-service/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// harness is the recipe service running in-process behind a real listener.
type harness struct {
	server   *httptest.Server
	catalog  *app.CatalogService
	health   ports.HealthRegistry
	registry *prometheus.Registry
}

type harnessOptions struct {
	rateLimit *config.RateLimitConfig
	checkers  []ports.HealthChecker
}

// startService wires the service the way cmd/service does, seeded from sources.
func startService(opts harnessOptions, sources ...ports.SeedSource) (*harness, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	recorder := metrics.New(reg)

	store := memory.NewCatalog()
	health := ports.NewHealthRegistry()

	if err := health.Register(store); err != nil {
		return nil, err
	}

	for _, c := range opts.checkers {
		if err := health.Register(c); err != nil {
			return nil, err
		}
	}

	catalog := app.NewCatalogService(app.CatalogServiceConfig{
		Store:    store,
		IDs:      idgen.NewSequence("recipe-"),
		Events:   recorder,
		Logger:   logger,
		PageSize: config.DefaultCatalogPageSize,
	})

	if err := catalog.BootstrapFrom(context.Background(), sources...); err != nil {
		return nil, err
	}

	engine := gin.New()
	httpadapter.Mount(engine, httpadapter.Routes{
		ServiceName:    "recipe-service",
		Logger:         logger,
		Health:         handlers.NewHealthHandler(health, handlers.NewBuildInfo("test", "none", "now"), handlers.WithGatherer(reg)),
		Recipes:        handlers.NewRecipeHandler(catalog, config.DefaultCatalogMaxPageSize),
		RateLimit:      opts.rateLimit,
		RequestTimeout: 5 * time.Second,
		Metrics:        recorder,
	})

	return &harness{
		server:   httptest.NewServer(engine),
		catalog:  catalog,
		health:   health,
		registry: reg,
	}, nil
}

// newHarness starts the service for t and stops it on cleanup.
func newHarness(t *testing.T, opts harnessOptions, sources ...ports.SeedSource) *harness {
	t.Helper()

	h, err := startService(opts, sources...)
	require.NoError(t, err)
	t.Cleanup(h.server.Close)

	return h
}

func (h *harness) url(path string) string {
	return h.server.URL + path
}
