// Package main is the entry point for the recipe catalog service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/recipe-service/internal/adapters/clients"
	"github.com/jsamuelsen/recipe-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen/recipe-service/internal/adapters/http"
	"github.com/jsamuelsen/recipe-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/recipe-service/internal/adapters/idgen"
	"github.com/jsamuelsen/recipe-service/internal/adapters/seeds"
	"github.com/jsamuelsen/recipe-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen/recipe-service/internal/app"
	"github.com/jsamuelsen/recipe-service/internal/platform/config"
	"github.com/jsamuelsen/recipe-service/internal/platform/logging"
	"github.com/jsamuelsen/recipe-service/internal/platform/metrics"
	"github.com/jsamuelsen/recipe-service/internal/platform/telemetry"
	"github.com/jsamuelsen/recipe-service/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			Level:      cfg.Log.File.Level,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry and catalog store
	healthRegistry := ports.NewHealthRegistry()

	store := memory.NewCatalog()
	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering catalog health check: %w", err)
	}

	ids, err := idgen.New(cfg.Catalog.IDStrategy)
	if err != nil {
		return fmt.Errorf("creating id generator: %w", err)
	}

	// 6. Create catalog service (application layer), reporting to Prometheus
	recorder := metrics.New(prometheus.DefaultRegisterer)

	catalog := app.NewCatalogService(app.CatalogServiceConfig{
		Store:    store,
		IDs:      ids,
		Events:   recorder,
		Logger:   logger,
		PageSize: cfg.Catalog.PageSize,
	})

	// 7. Seed the catalog before serving traffic
	sources, err := seedSources(cfg, logger, healthRegistry)
	if err != nil {
		return err
	}

	seedCtx := logging.WithContext(ctx, logger)
	if err := catalog.BootstrapFrom(seedCtx, sources...); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}

	logger.Info("catalog ready", slog.Int("recipes", catalog.Len(ctx)))

	// 8. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	recipeHandler := handlers.NewRecipeHandler(catalog, cfg.Catalog.MaxPageSize)

	// 9. Create HTTP server
	server := http.New(&cfg.Server, logger)

	// 10. Mount middleware and routes
	http.Mount(server.Engine(), http.Routes{
		ServiceName:    cfg.App.Name,
		Logger:         logger,
		Health:         healthHandler,
		Recipes:        recipeHandler,
		RateLimit:      &cfg.RateLimit,
		RequestTimeout: cfg.Server.RequestTimeout,
		Metrics:        recorder,
	})

	// 11. Serve until SIGINT or SIGTERM, then drain
	if err := server.Run(ctx); err != nil {
		return err
	}

	logger.Info("shutdown complete")

	return nil
}

// seedSources builds the configured seed sources in load order: sample recipes,
// then the seed file, then the remote feed. The feed is also registered as an
// optional health check.
func seedSources(cfg *config.Config, logger *slog.Logger, registry ports.HealthRegistry) ([]ports.SeedSource, error) {
	var sources []ports.SeedSource

	if cfg.Catalog.SeedSample {
		sources = append(sources, seeds.Sample{})
	}

	if cfg.Catalog.SeedFile != "" {
		sources = append(sources, seeds.NewFile(cfg.Catalog.SeedFile))
	}

	feedCfg := cfg.Services.RecipeFeed
	if feedCfg.Enabled {
		client, err := clients.New(&clients.Config{
			BaseURL:     feedCfg.BaseURL,
			ServiceName: feedCfg.Name,
			Timeout:     cfg.Client.Timeout,
			Retry:       cfg.Client.Retry,
			Circuit:     cfg.Client.CircuitBreaker,
			Transport:   cfg.Client.Transport,
			APIKey:      feedCfg.APIKey,
			Logger:      logger,
		})
		if err != nil {
			return nil, fmt.Errorf("creating recipe feed client: %w", err)
		}

		feed := acl.NewRecipeFeed(acl.RecipeFeedConfig{
			Client: client,
			Path:   feedCfg.Path,
			Logger: logger,
		})

		if err := registry.Register(feed); err != nil {
			return nil, fmt.Errorf("registering recipe feed health check: %w", err)
		}

		sources = append(sources, seeds.NewRemote(feed))
	}

	if len(sources) == 0 {
		logger.Warn("no seed sources configured, catalog starts empty")
	}

	return sources, nil
}
