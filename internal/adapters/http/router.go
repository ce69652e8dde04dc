package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/recipe-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/recipe-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/recipe-service/internal/platform/config"
	"github.com/jsamuelsen/recipe-service/internal/platform/metrics"
	"github.com/jsamuelsen/recipe-service/internal/platform/telemetry"
)

// Routes is what Mount puts on an engine. Nil handlers are left out.
type Routes struct {
	ServiceName string
	Logger      *slog.Logger

	Health  *handlers.HealthHandler
	Recipes *handlers.RecipeHandler

	// RateLimit applies to /api/v1 when enabled.
	RateLimit *config.RateLimitConfig

	// RequestTimeout bounds each /api/v1 request. Zero means no bound.
	RequestTimeout time.Duration

	// Metrics, when set, counts rate limit rejects and recovered panics.
	Metrics *metrics.Recorder
}

// Mount installs the middleware chain and routes. Every request passes
// recovery, request and correlation ids, tracing and access logging, in that
// order. Probes live under /-/ and skip the API group's rate limit and timeout.
func Mount(engine *gin.Engine, r Routes) {
	var onPanic func(any, []byte)
	if r.Metrics != nil {
		onPanic = r.Metrics.PanicRecovered
	}

	engine.Use(middleware.Recovery(r.Logger, onPanic), middleware.RequestID(), middleware.CorrelationID())
	engine.Use(telemetry.Middleware(r.ServiceName)...)
	engine.Use(middleware.Logging(r.Logger))

	if r.Health != nil {
		r.Health.RegisterHealthRoutesOnEngine(engine)
	}

	api := engine.Group("/api/v1", r.apiMiddleware()...)

	if r.Recipes != nil {
		r.Recipes.RegisterRecipeRoutes(api)
	}
}

func (r Routes) apiMiddleware() []gin.HandlerFunc {
	var chain []gin.HandlerFunc

	if rl := r.RateLimit; rl != nil && rl.Enabled {
		limit := middleware.RateLimitConfig{RequestsPerSecond: rl.RequestsPerSecond, Burst: rl.Burst}
		if r.Metrics != nil {
			limit.OnReject = r.Metrics.RateLimitRejected
		}

		chain = append(chain, middleware.RateLimit(limit))
	}

	if r.RequestTimeout > 0 {
		chain = append(chain, middleware.Timeout(r.RequestTimeout))
	}

	return chain
}
