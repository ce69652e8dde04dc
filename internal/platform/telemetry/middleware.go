package telemetry

import (
	"cmp"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/recipe-service/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/recipe-service/telemetry"

	// HeaderTraceID carries the trace id back to the caller.
	HeaderTraceID = "X-Trace-ID"

	probePrefix = "/-/"
)

// serverInstruments are recorded for every API request, labeled by method and route.
type serverInstruments struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

func newServerInstruments(mp metric.MeterProvider) (*serverInstruments, error) {
	meter := mp.Meter(instrumentationName)

	var in serverInstruments
	var errs [3]error

	in.duration, errs[0] = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Time to answer an API request."), metric.WithUnit("s"))
	in.total, errs[1] = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("API requests answered."))
	in.inFlight, errs[2] = meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("API requests being served."))

	if err := errors.Join(errs[:]...); err != nil {
		return nil, err
	}

	return &in, nil
}

// Middleware returns the tracing and request metrics handlers, in that order.
// Probe endpoints under /-/ are neither traced nor measured.
func Middleware(serviceName string) []gin.HandlerFunc {
	return middleware(serviceName, otel.GetTracerProvider(), otel.GetMeterProvider())
}

func middleware(serviceName string, tp trace.TracerProvider, mp metric.MeterProvider) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		otelgin.Middleware(serviceName,
			otelgin.WithTracerProvider(tp),
			otelgin.WithFilter(func(r *http.Request) bool { return !isProbe(r.URL.Path) }),
		),
		requestMetrics(mp),
	}
}

// requestMetrics also exposes the trace id as X-Trace-ID and hands it to the
// request logger. A meter that refuses the instruments disables the metrics only.
func requestMetrics(mp metric.MeterProvider) gin.HandlerFunc {
	in, err := newServerInstruments(mp)
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		if isProbe(c.Request.URL.Path) {
			c.Next()
			return
		}

		ctx := c.Request.Context()

		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.HasTraceID() {
			id := sc.TraceID().String()
			c.Header(HeaderTraceID, id)
			c.Request = c.Request.WithContext(logging.WithTraceID(ctx, id))
		}

		if in == nil {
			c.Next()
			return
		}

		labels := attribute.NewSet(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", cmp.Or(c.FullPath(), "unmatched")),
		)

		in.inFlight.Add(ctx, 1, metric.WithAttributeSet(labels))
		defer in.inFlight.Add(ctx, -1, metric.WithAttributeSet(labels))

		start := time.Now()

		c.Next()

		done := metric.WithAttributeSet(attribute.NewSet(append(labels.ToSlice(),
			attribute.Int("http.status_code", c.Writer.Status()))...))
		in.duration.Record(ctx, time.Since(start).Seconds(), done)
		in.total.Add(ctx, 1, done)
	}
}

func isProbe(path string) bool {
	return strings.HasPrefix(path, probePrefix)
}
