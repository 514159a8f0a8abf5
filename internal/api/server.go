// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the prompt parser service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"promptparser/internal/api/handler/v1handler"
	"promptparser/internal/config"
	"promptparser/pkg/controller"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const timeoutBody = `{"code":"TIMEOUT","message":"request timed out"}`

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures the security handler (authn/authz) for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MaxBodyBytes limits request bodies of v1 endpoints.
	MaxBodyBytes int64
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// RateLimit is the number of v1 requests per second admitted. Zero disables limiting.
	RateLimit float64
	// RateBurst is the number of v1 requests admitted above RateLimit in a burst.
	RateBurst int
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		RateLimit:         cfg.HTTP.RateLimit,
		RateBurst:         cfg.HTTP.RateBurst,
	}
}

type Deps struct {
	v1handler.Deps

	// MeterProvider receives the HTTP server metrics. A no-op provider is used when nil.
	MeterProvider metric.MeterProvider
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes behind rate limiting, body size limits and request metrics
// - pprof endpoints for profiling
// It also wraps the mux with CORS and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	if deps.MeterProvider == nil {
		deps.MeterProvider = metricnoop.NewMeterProvider()
	}

	mux := http.NewServeMux()

	// prometheus metrics server
	if opts.MetricsPath != "" {
		mux.Handle(opts.MetricsPath, promhttp.Handler())
	}

	// v1 specs file
	mux.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Prompt Parser Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1Mux := http.NewServeMux()
	v1handler.New(deps.Deps).Register(v1Mux, secHandler)

	withMetrics, err := controller.WithMetrics(deps.MeterProvider)
	if err != nil {
		return nil, fmt.Errorf("could not create metrics middleware: %w", err)
	}
	var v1 http.Handler = v1Mux
	v1 = controller.WithMaxBodyBytes(opts.MaxBodyBytes)(v1)
	v1 = controller.WithRateLimit(opts.RateLimit, opts.RateBurst)(v1)
	v1 = withMetrics(v1)
	mux.Handle("/v1/", v1)

	// pprof
	mux.Handle("/debug/pprof/", http.StripPrefix("/debug/pprof", controller.PprofMux()))

	// cors
	handler := controller.WithCORS(mux)

	// logger
	handler = controller.WithLogger(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
