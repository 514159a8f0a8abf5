package worker

import (
	"context"
	"errors"
	"fmt"

	"promptparser/internal/parser"
	"promptparser/pkg/domain"
	"promptparser/pkg/logger"
	"promptparser/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ParsePromptWorker is a River worker that parses submitted prompts using a
// parser.Parser implementation.
//
// A conflict from the parser means the prompt is gone or already handled, so
// the job is cancelled. Other errors are returned and River retries the job.
// When the last attempt fails the prompt is marked failed so callers polling
// for its result stop waiting.
type ParsePromptWorker struct {
	river.WorkerDefaults[parser.JobArgs]

	parser parser.Parser
}

// NewParsePromptWorker constructs a ParsePromptWorker using the provided parser.
func NewParsePromptWorker(parser parser.Parser) *ParsePromptWorker {
	return &ParsePromptWorker{parser: parser}
}

// Work processes a single parse job and maps errors to River actions.
func (w *ParsePromptWorker) Work(ctx context.Context, job *river.Job[parser.JobArgs]) error {
	promptID := domain.PromptID(job.Args.PromptID)
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.Stringer("promptID", promptID))

	err := w.parser.Process(ctx, promptID)
	if err == nil {
		logger.Info(ctx, "prompt parsed successfully")

		return nil
	}

	if errors.Is(err, serrors.ErrConflict) {
		logger.Info(ctx, "prompt is no longer pending, cancelling job", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}

	logger.Error(ctx, "error in parsing prompt", zap.Error(err))

	if job.Attempt >= job.MaxAttempts {
		if failErr := w.parser.Fail(ctx, promptID, err.Error()); failErr != nil {
			logger.Error(ctx, "could not mark prompt as failed", zap.Error(failErr))
		}
	}

	return fmt.Errorf("could not parse prompt: %w", err)
}
