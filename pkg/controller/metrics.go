package controller

import (
	"fmt"
	"net/http"
	"time"

	"promptparser/pkg/metrics"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "promptparser/pkg/controller"

// WithMetrics returns a middleware recording the count and duration of served
// requests on mp, labelled by method and status code.
func WithMetrics(mp metric.MeterProvider) (func(http.Handler) http.Handler, error) {
	meter := mp.Meter(instrumentationName)

	requests, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("Number of served HTTP requests"))
	if err != nil {
		return nil, fmt.Errorf("could not create requests counter: %w", err)
	}
	duration, err := meter.Float64Histogram("http.server.duration",
		metric.WithDescription("Time spent serving HTTP requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			attrs := metric.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.Int("http.response.status_code", rec.status),
			)
			requests.Add(r.Context(), 1, attrs)
			duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
		})
	}, nil
}
