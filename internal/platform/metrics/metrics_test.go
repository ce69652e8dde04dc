package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/recipe-service/internal/domain"
	"github.com/jsamuelsen/recipe-service/internal/ports"
)

var _ ports.CatalogEvents = (*Recorder)(nil)

func TestRecorder_CatalogEvents(t *testing.T) {
	rec := New(prometheus.NewRegistry())

	rec.CatalogBootstrapped(5)
	assert.InDelta(t, 5, testutil.ToFloat64(rec.catalogSize), 0)
	assert.InDelta(t, 5, testutil.ToFloat64(rec.seededRecipes), 0)

	rec.RecipeCreated(domain.Recipe{ID: "recipe-1"}, 6)
	rec.RecipeCreated(domain.Recipe{ID: "recipe-2"}, 7)
	assert.InDelta(t, 2, testutil.ToFloat64(rec.recipesCreated), 0)
	assert.InDelta(t, 7, testutil.ToFloat64(rec.catalogSize), 0)
}

func TestRecorder_CatalogQueriedLabels(t *testing.T) {
	tests := []struct {
		name     string
		params   domain.QueryParams
		selector string
		sort     string
	}{
		{"defaults", domain.DefaultQueryParams(), "all", "trending"},
		{"vegan by time", domain.DefaultQueryParams().WithCategory(domain.SelectVegan).WithSort(domain.SortTime), "vegan", "time"},
		{"quick", domain.DefaultQueryParams().WithCategory(domain.SelectQuick), "quick", "trending"},
		{"known category", domain.DefaultQueryParams().WithCategory(domain.SelectCategory(domain.CategoryStreetFood)), "Street Food", "trending"},
		{"unknown category", domain.DefaultQueryParams().WithCategory(domain.SelectCategory("Brunch")), "other", "trending"},
		{"zero sort", domain.QueryParams{}, "all", "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := New(prometheus.NewRegistry())

			rec.CatalogQueried(tt.params, 3)

			assert.InDelta(t, 1, testutil.ToFloat64(rec.queries.WithLabelValues(tt.selector, tt.sort)), 0)
		})
	}
}

func TestRecorder_EdgeCounters(t *testing.T) {
	rec := New(prometheus.NewRegistry())

	rec.RateLimitRejected()
	rec.RateLimitRejected()
	rec.PanicRecovered("boom", nil)

	assert.InDelta(t, 2, testutil.ToFloat64(rec.rateLimitRejects), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.panicRecoveries), 0)
}

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := New(reg)
	rec.CatalogQueried(domain.DefaultQueryParams(), 0)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}

	assert.Contains(t, names, "recipe_service_catalog_queries_total")
	assert.Contains(t, names, "recipe_service_catalog_size")
	assert.Contains(t, names, "recipe_service_rate_limit_rejects_total")

	assert.Panics(t, func() { New(reg) }, "collectors register once per registry")
}
