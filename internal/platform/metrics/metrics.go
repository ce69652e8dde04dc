// Package metrics exposes catalog and HTTP edge counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jsamuelsen/recipe-service/internal/domain"
)

const namespace = "recipe_service"

// Recorder holds the service's Prometheus collectors.
// It implements ports.CatalogEvents.
type Recorder struct {
	recipesCreated   prometheus.Counter
	queries          *prometheus.CounterVec
	queryMatches     prometheus.Histogram
	catalogSize      prometheus.Gauge
	seededRecipes    prometheus.Counter
	rateLimitRejects prometheus.Counter
	panicRecoveries  prometheus.Counter
}

// New registers the collectors with reg. Passing prometheus.DefaultRegisterer
// exposes them on the /-/metrics endpoint.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		recipesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recipes_created_total",
			Help:      "Recipes created through submissions.",
		}),
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_queries_total",
			Help:      "Catalog queries served, by selector kind and sort mode.",
		}, []string{"selector", "sort"}),
		queryMatches: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_query_matches",
			Help:      "Recipes matched per catalog query before pagination.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		catalogSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_size",
			Help:      "Recipes currently held by the catalog.",
		}),
		seededRecipes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_seeded_recipes_total",
			Help:      "Recipes loaded at bootstrap.",
		}),
		rateLimitRejects: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_rejects_total",
			Help:      "Requests rejected by the API rate limiter.",
		}),
		panicRecoveries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "panic_recoveries_total",
			Help:      "Panics recovered in HTTP handlers.",
		}),
	}
}

// RecipeCreated implements ports.CatalogEvents.
func (r *Recorder) RecipeCreated(_ domain.Recipe, catalogSize int) {
	r.recipesCreated.Inc()
	r.catalogSize.Set(float64(catalogSize))
}

// CatalogQueried implements ports.CatalogEvents.
func (r *Recorder) CatalogQueried(params domain.QueryParams, matched int) {
	r.queries.WithLabelValues(selectorLabel(params.Selector), sortLabel(params.Sort)).Inc()
	r.queryMatches.Observe(float64(matched))
}

// CatalogBootstrapped implements ports.CatalogEvents.
func (r *Recorder) CatalogBootstrapped(catalogSize int) {
	r.seededRecipes.Add(float64(catalogSize))
	r.catalogSize.Set(float64(catalogSize))
}

// RateLimitRejected counts a request refused by the rate limiter.
func (r *Recorder) RateLimitRejected() {
	r.rateLimitRejects.Inc()
}

// PanicRecovered counts a recovered handler panic. Its signature matches the
// recovery middleware's stack handler.
func (r *Recorder) PanicRecovered(any, []byte) {
	r.panicRecoveries.Inc()
}

// selectorLabel keeps label cardinality bounded: unknown category names share one label.
func selectorLabel(s domain.Selector) string {
	switch s.Kind() {
	case domain.SelectorKindAll:
		return "all"
	case domain.SelectorKindVegan:
		return "vegan"
	case domain.SelectorKindQuick:
		return "quick"
	}

	for _, c := range domain.Categories() {
		if s.Category() == c {
			return string(c)
		}
	}

	return "other"
}

func sortLabel(m domain.SortMode) string {
	if m.Valid() {
		return string(m)
	}

	return "none"
}
