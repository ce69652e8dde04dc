package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/recipe-service/internal/domain"
	"github.com/jsamuelsen/recipe-service/internal/platform/logging"
	"github.com/jsamuelsen/recipe-service/internal/ports"
)

// optionalSource is implemented by seed sources whose failure should not stop startup.
type optionalSource interface {
	Optional() bool
}

// maxConcurrentSeeds caps how many seed sources load at once.
const maxConcurrentSeeds = 4

func isOptional(src ports.SeedSource) bool {
	o, ok := src.(optionalSource)
	return ok && o.Optional()
}

// LoadSeeds loads all sources concurrently and concatenates their recipes in source order.
// A failing optional source contributes nothing; any other failure aborts the load.
// Records from optional sources whose id is already taken are dropped.
func LoadSeeds(ctx context.Context, sources ...ports.SeedSource) ([]domain.Recipe, error) {
	logger := logging.FromContext(ctx)

	batches, err := Gather(ctx, maxConcurrentSeeds, sources, func(ctx context.Context, src ports.SeedSource) ([]domain.Recipe, error) {
		start := time.Now()

		recipes, err := src.Load(ctx)
		if err != nil {
			if isOptional(src) {
				logger.WarnContext(ctx, "optional seed source failed",
					slog.String("source", src.Name()),
					slog.Any("error", err),
				)

				return nil, nil
			}

			return nil, fmt.Errorf("loading seeds from %s: %w", src.Name(), err)
		}

		logger.InfoContext(ctx, "seed source loaded",
			slog.String("source", src.Name()),
			slog.Int("recipes", len(recipes)),
			slog.Duration("duration", time.Since(start)),
		)

		return recipes, nil
	})
	if err != nil {
		return nil, err
	}

	return dropTakenOptional(ctx, sources, batches), nil
}

// dropTakenOptional concatenates batches, skipping optional records whose id is
// held by a required source or by an earlier optional record. Required records
// always pass so their own duplicates still fail the bootstrap.
func dropTakenOptional(ctx context.Context, sources []ports.SeedSource, batches [][]domain.Recipe) []domain.Recipe {
	taken := make(map[string]struct{})
	total := 0

	for i, batch := range batches {
		total += len(batch)
		if isOptional(sources[i]) {
			continue
		}

		for _, r := range batch {
			taken[r.ID] = struct{}{}
		}
	}

	out := make([]domain.Recipe, 0, total)

	for i, batch := range batches {
		if !isOptional(sources[i]) {
			out = append(out, batch...)
			continue
		}

		for _, r := range batch {
			if r.ID != "" {
				if _, dup := taken[r.ID]; dup {
					logging.FromContext(ctx).WarnContext(ctx, "seed id already taken, record dropped",
						slog.String("source", sources[i].Name()),
						slog.String("recipe_id", r.ID),
					)

					continue
				}

				taken[r.ID] = struct{}{}
			}

			out = append(out, r)
		}
	}

	return out
}

// BootstrapFrom loads seeds from sources and bootstraps the catalog with them.
func (s *CatalogService) BootstrapFrom(ctx context.Context, sources ...ports.SeedSource) error {
	seeds, err := LoadSeeds(ctx, sources...)
	if err != nil {
		return err
	}

	return s.Bootstrap(ctx, seeds)
}
