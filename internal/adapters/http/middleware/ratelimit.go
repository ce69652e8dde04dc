package middleware

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen/recipe-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/recipe-service/internal/platform/logging"
)

// Rate limit response headers.
const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
	HeaderRetryAfter         = "Retry-After"
)

// RateLimitConfig configures the API rate limiter.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate.
	RequestsPerSecond float64

	// Burst is the bucket size. Defaults to the rounded-up rate.
	Burst int

	// OnReject is called for every rejected request. Optional.
	OnReject func()
}

// RateLimit returns middleware that admits requests through one token bucket
// shared by all clients. Rejected requests get 429 with a RATE_LIMITED envelope
// and a Retry-After header; admitted ones carry X-RateLimit-* headers.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	return rateLimit(rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burstFor(cfg)), cfg)
}

func rateLimit(limiter *rate.Limiter, cfg RateLimitConfig) gin.HandlerFunc {
	limit := strconv.Itoa(int(math.Ceil(cfg.RequestsPerSecond)))

	return func(c *gin.Context) {
		now := time.Now()

		if !limiter.AllowN(now, 1) {
			if cfg.OnReject != nil {
				cfg.OnReject()
			}

			retryAfter := retryAfterSeconds(limiter, now)

			ctx := c.Request.Context()
			logging.FromContext(ctx).WarnContext(ctx, "rate limit exceeded",
				slog.String("path", c.Request.URL.Path),
				slog.String("client_ip", c.ClientIP()),
				slog.Int("retry_after_s", retryAfter),
			)

			c.Header(HeaderRateLimitLimit, limit)
			c.Header(HeaderRateLimitRemaining, "0")
			c.Header(HeaderRetryAfter, strconv.Itoa(retryAfter))
			dto.AbortWithErrorCode(c, dto.ErrorCodeRateLimited, "rate limit exceeded")

			return
		}

		c.Header(HeaderRateLimitLimit, limit)
		c.Header(HeaderRateLimitRemaining, strconv.Itoa(max(0, int(limiter.TokensAt(now)))))
		c.Header(HeaderRateLimitReset, strconv.FormatInt(now.Add(time.Second).Unix(), 10))

		c.Next()
	}
}

func burstFor(cfg RateLimitConfig) int {
	if cfg.Burst > 0 {
		return cfg.Burst
	}

	return max(1, int(math.Ceil(cfg.RequestsPerSecond)))
}

// retryAfterSeconds is the whole number of seconds until one token is available, at least 1.
func retryAfterSeconds(limiter *rate.Limiter, now time.Time) int {
	if limiter.Limit() <= 0 {
		return 1
	}

	missing := 1 - limiter.TokensAt(now)
	wait := time.Duration(missing / float64(limiter.Limit()) * float64(time.Second))

	return max(1, int(math.Ceil(wait.Seconds())))
}
