package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"promptparser/internal/api"
	"promptparser/internal/api/handler/v1handler"
	"promptparser/internal/config"
	"promptparser/internal/parser"
	"promptparser/internal/worker"
	"promptparser/pkg/logger"
	"promptparser/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context,
	cfg *config.Config,
	p parser.Parser,
	mp metric.MeterProvider) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps:          v1handler.Deps{Parser: p},
		MeterProvider: mp,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// serveCommand constructs the 'serve' subcommand that runs the API server and
// the background parse workers until SIGINT or SIGTERM.
func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			opts := parser.NewOptions(cfg)
			opts.MeterProvider = mp
			opts.TracerProvider = otel.GetTracerProvider()
			p, err := parser.New(strg, opts)
			if err != nil {
				logger.Fatal(ctx, "could not create parser", zap.Error(err))
			}

			riverClient, err := worker.Start(ctx, strg.Pool, p, worker.Options{
				MaxWorkers: cfg.Worker.MaxWorkers,
			})
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, p, mp)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}

			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
