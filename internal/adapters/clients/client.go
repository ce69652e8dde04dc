package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/recipe-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/recipe-service/internal/platform/config"
	"github.com/jsamuelsen/recipe-service/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/recipe-service/internal/adapters/clients"

	defaultTimeout = 30 * time.Second

	defaultIdleConns        = 100
	defaultIdleConnsPerHost = 10
	defaultIdleConnTimeout  = 90 * time.Second
)

// Config configures a feed client.
type Config struct {
	ServiceName string
	BaseURL     string

	// Timeout bounds a single attempt. Retries and backoff come on top of it.
	Timeout time.Duration

	Retry     config.RetryConfig
	Circuit   config.CircuitBreakerConfig
	Transport config.TransportConfig

	// APIKey, when set, is sent as a bearer token on every attempt.
	APIKey string

	Logger *slog.Logger
}

// Client reads from one remote recipe feed. Calls are retried with jittered
// exponential backoff behind a circuit breaker, and carry the caller's trace
// and request ids.
type Client struct {
	name    string
	baseURL string
	apiKey  string

	http    *http.Client
	retry   config.RetryConfig
	breaker *CircuitBreaker
	logger  *slog.Logger

	tracer  trace.Tracer
	latency metric.Float64Histogram
	calls   metric.Int64Counter
}

// New builds a client. Zero timeouts and attempt counts fall back to defaults.
func New(cfg *Config) (*Client, error) {
	switch {
	case cfg == nil:
		return nil, errors.New("config is required")
	case cfg.ServiceName == "":
		return nil, errors.New("service name is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("downstream", cfg.ServiceName))

	retry := cfg.Retry
	retry.MaxAttempts = max(retry.MaxAttempts, 1)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	meter := otel.Meter(instrumentationName)

	latency, err := meter.Float64Histogram("http.client.request.duration",
		metric.WithDescription("Duration of recipe feed calls, retries included"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	calls, err := meter.Int64Counter("http.client.request.total",
		metric.WithDescription("Recipe feed calls by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating call counter: %w", err)
	}

	breaker := NewCircuitBreaker(cfg.Circuit)
	breaker.OnStateChange(func(from, to State) {
		logger.Warn("feed circuit changed state",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
	})

	return &Client{
		name:    cfg.ServiceName,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout, Transport: newTransport(cfg.Transport)},
		retry:   retry,
		breaker: breaker,
		logger:  logger,
		tracer:  otel.Tracer(instrumentationName),
		latency: latency,
		calls:   calls,
	}, nil
}

func newTransport(tc config.TransportConfig) *http.Transport {
	orDefault := func(v, def int) int {
		if v > 0 {
			return v
		}

		return def
	}

	idle := tc.IdleConnTimeout
	if idle <= 0 {
		idle = defaultIdleConnTimeout
	}

	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        orDefault(tc.MaxIdleConns, defaultIdleConns),
		MaxIdleConnsPerHost: orDefault(tc.MaxIdleConnsPerHost, defaultIdleConnsPerHost),
		IdleConnTimeout:     idle,
	}
}

// Name is the feed's service name.
func (c *Client) Name() string {
	return c.name
}

// CircuitState reports the breaker guarding the feed.
func (c *Client) CircuitState() State {
	return c.breaker.State()
}

// Get fetches path, relative to the base URL, as JSON.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	return c.Do(ctx, req)
}

// Do sends req, retrying transient failures. Any response that is not a
// retryable status is returned to the caller, 4xx included; a call that never
// got one fails with a *RetryError. Requests must be safe to resend.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	logger := logging.FromContextOr(ctx, c.logger).With(
		slog.String("downstream", c.name),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	if !c.breaker.Allow() {
		c.observe(ctx, req.Method, start, "circuit_open", 0)
		logger.WarnContext(ctx, "feed call blocked by open circuit")

		return nil, ErrCircuitOpen
	}

	ctx, span := c.tracer.Start(ctx, req.Method+" "+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.name),
		),
	)
	defer span.End()

	c.decorate(ctx, req)

	resp, attempts, err := c.send(ctx, req, logger)
	span.SetAttributes(attribute.Int("http.attempts", attempts))

	if err != nil {
		c.breaker.RecordFailure()
		span.SetStatus(codes.Error, err.Error())

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			c.observe(ctx, req.Method, start, "context_canceled", 0)
			return nil, err
		}

		c.observe(ctx, req.Method, start, "error", 0)
		logger.ErrorContext(ctx, "feed call failed",
			slog.Int("attempts", attempts),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err),
		)

		return nil, &RetryError{Attempts: attempts, Last: err}
	}

	c.breaker.RecordSuccess()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	}

	c.observe(ctx, req.Method, start, fmt.Sprintf("%dxx", resp.StatusCode/100), resp.StatusCode)
	logger.DebugContext(ctx, "feed call completed",
		slog.Int("status", resp.StatusCode),
		slog.Int("attempts", attempts),
		slog.Duration("elapsed", time.Since(start)),
	)

	return resp, nil
}

// send makes up to MaxAttempts attempts and reports how many it made.
func (c *Client) send(ctx context.Context, req *http.Request, logger *slog.Logger) (*http.Response, int, error) {
	var last error

	for n := range c.retry.MaxAttempts {
		if n > 0 {
			if err := c.pause(ctx, n); err != nil {
				return nil, n, err
			}
		}

		resp, err := c.http.Do(req.WithContext(ctx))

		switch {
		case err != nil && !transient(err):
			return nil, n + 1, err
		case err != nil:
			last = err
		case retryable(resp.StatusCode):
			if cerr := resp.Body.Close(); cerr != nil {
				logger.DebugContext(ctx, "closing discarded response", slog.Any("error", cerr))
			}

			last = &StatusError{StatusCode: resp.StatusCode}
		default:
			return resp, n + 1, nil
		}

		logger.DebugContext(ctx, "feed attempt failed",
			slog.Int("attempt", n+1),
			slog.Any("error", last),
		)
	}

	return nil, c.retry.MaxAttempts, last
}

// pause waits out the backoff before the given attempt, or until ctx ends.
func (c *Client) pause(ctx context.Context, attempt int) error {
	timer := time.NewTimer(c.backoff(attempt))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff is InitialInterval * Multiplier^attempt, capped at MaxInterval and
// spread by up to JitterFactor either way.
func (c *Client) backoff(attempt int) time.Duration {
	d := float64(c.retry.InitialInterval) * math.Pow(c.retry.Multiplier, float64(attempt))

	if c.retry.MaxInterval > 0 {
		d = min(d, float64(c.retry.MaxInterval))
	}

	d *= 1 + c.retry.JitterFactor*(2*rand.Float64()-1) //nolint:gosec // jitter needs no crypto randomness

	return time.Duration(d)
}

// decorate sets the API key, the caller's request and correlation ids and the
// trace context on req.
func (c *Client) decorate(ctx context.Context, req *http.Request) {
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderRequestID, id)
	}

	if id := middleware.CorrelationIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderCorrelationID, id)
	}

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}

func (c *Client) observe(ctx context.Context, method string, start time.Time, result string, status int) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("peer.service", c.name),
		attribute.String("result", result),
	}

	if status > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", status))
	}

	set := metric.WithAttributes(attrs...)
	c.latency.Record(ctx, time.Since(start).Seconds(), set)
	c.calls.Add(ctx, 1, set)
}

// transient reports whether a transport failure may clear up on another attempt.
// Cancellation by the caller never does.
func transient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError

	return errors.As(err, &opErr)
}
