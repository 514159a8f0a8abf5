package worker

import (
	"context"
	"fmt"

	"promptparser/internal/parser"
	"promptparser/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// DefaultMaxWorkers is used when Options.MaxWorkers is not set.
const DefaultMaxWorkers = 20

// Options configure the River client running the parse workers.
type Options struct {
	// MaxWorkers is the number of jobs processed concurrently on the default queue.
	MaxWorkers int
}

// Start registers the parse worker and starts a River client processing the
// default queue. The caller stops the returned client on shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	parser parser.Parser,
	options Options) (*river.Client[pgx.Tx], error) {
	if options.MaxWorkers <= 0 {
		options.MaxWorkers = DefaultMaxWorkers
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewParsePromptWorker(parser))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
