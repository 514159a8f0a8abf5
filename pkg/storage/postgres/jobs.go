package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"promptparser/pkg/logger"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// AddJob enqueues a parse job through the insert-only River client created by
// New. Inside a transaction the job is inserted with InsertTx and shares the
// fate of the prompt stored in the same transaction.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	if p.jobs == nil {
		return false, fmt.Errorf("could not insert %s job: no job client", args.Kind())
	}

	var (
		res *rivertype.JobInsertResult
		err error
	)
	if tx, ok := p.DB.(*sql.Tx); ok {
		res, err = p.jobs.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = p.jobs.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	logger.Debug(ctx, "job enqueued",
		zap.String("kind", args.Kind()),
		zap.Int64("jobID", res.Job.ID),
		zap.Bool("duplicate", res.UniqueSkippedAsDuplicate))

	return !res.UniqueSkippedAsDuplicate, nil
}
