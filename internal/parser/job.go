package parser

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for a parse job submitted to River.
// The struct is used as the unique key for jobs so a prompt is never queued twice.
type JobArgs struct {
	// PromptID identifies the stored prompt to parse.
	PromptID uuid.UUID `json:"promptId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the parse worker.
func (args JobArgs) Kind() string { return "ParsePromptJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness per prompt.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
