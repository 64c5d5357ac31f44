package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// unmatchedRoute labels requests that hit no registered route.
const unmatchedRoute = "unmatched"

// HTTPMetricsMiddleware records request count, duration and in-flight requests.
// Requests are labelled by route pattern (e.g. /v1/keys/:name), not by raw path.
// If an instrument cannot be created the middleware only calls the next handler.
func HTTPMetricsMiddleware(provider *Provider) gin.HandlerFunc {
	meter := provider.MeterProvider().Meter(provider.Namespace())

	requests, err := meter.Int64Counter(
		provider.name("http_requests_total"),
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return passthrough
	}

	durations, err := meter.Float64Histogram(
		provider.name("http_request_duration_seconds"),
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return passthrough
	}

	inFlight, err := meter.Int64UpDownCounter(
		provider.name("http_requests_in_flight"),
		metric.WithDescription("HTTP requests currently being served"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return passthrough
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		start := time.Now()
		route := routeLabel(c.FullPath())

		routeAttr := metric.WithAttributes(attribute.String("path", route))
		inFlight.Add(ctx, 1, routeAttr)
		defer inFlight.Add(ctx, -1, routeAttr)

		c.Next()

		attrs := metric.WithAttributes(
			attribute.String("method", c.Request.Method),
			attribute.String("path", route),
			attribute.String("status_code", strconv.Itoa(c.Writer.Status())),
		)
		requests.Add(ctx, 1, attrs)
		durations.Record(ctx, time.Since(start).Seconds(), attrs)
	}
}

func passthrough(c *gin.Context) {
	c.Next()
}

// routeLabel returns the matched route pattern, or unmatchedRoute.
func routeLabel(fullPath string) string {
	if fullPath == "" {
		return unmatchedRoute
	}
	return fullPath
}
