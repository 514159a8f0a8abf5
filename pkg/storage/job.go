package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues the background jobs that parse submitted prompts.
type JobStorage interface {
	// AddJob enqueues a job with the given arguments. On a transactional handle
	// the job becomes visible to workers only once the transaction commits, so a
	// prompt and its parse job are stored together or not at all. It reports
	// false when the insert was skipped because an equal unique job exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
