package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"promptparser/internal/config"
	"promptparser/pkg/domain"
	"promptparser/pkg/metrics"
	"promptparser/pkg/serrors"
	"promptparser/pkg/storage"
	"promptparser/pkg/weighted"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

const (
	// DefaultLimit is the page size used when the caller does not ask for one.
	DefaultLimit = 20
	// MaxLimit caps the page size of UserPrompts.
	MaxLimit = 100

	instrumentationName = "promptparser/internal/parser"

	modeSync  = "sync"
	modeAsync = "async"
)

// Options configure input limits, retries and telemetry of the parser.
// These settings are typically derived from application configuration.
type Options struct {
	// MaxInputBytes rejects longer prompts. Zero disables the check.
	MaxInputBytes int
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when processing a prompt before marking it failed.
	MaxAttempts int
	// MeterProvider receives the parser metrics. A no-op provider is used when nil.
	MeterProvider metric.MeterProvider
	// TracerProvider receives the parser spans. A no-op provider is used when nil.
	TracerProvider trace.TracerProvider
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxInputBytes: cfg.Parser.MaxInputBytes,
		MaxAttempts:   cfg.Parser.MaxAttempts,
	}
}

// parser is the concrete implementation of the Parser interface.
// It coordinates the scanner with persistence and job enqueueing.
type parser struct {
	options Options
	storage storage.Storage
	tracer  trace.Tracer

	prompts  metric.Int64Counter
	phrases  metric.Int64Counter
	duration metric.Float64Histogram
}

// New creates a new Parser instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) (Parser, error) {
	if options.MeterProvider == nil {
		options.MeterProvider = metricnoop.NewMeterProvider()
	}
	if options.TracerProvider == nil {
		options.TracerProvider = tracenoop.NewTracerProvider()
	}

	meter := options.MeterProvider.Meter(instrumentationName)
	prompts, err := meter.Int64Counter("parser.prompts",
		metric.WithDescription("Number of parsed prompts"))
	if err != nil {
		return nil, fmt.Errorf("could not create prompts counter: %w", err)
	}
	phrases, err := meter.Int64Counter("parser.phrases",
		metric.WithDescription("Number of weighted phrases found in parsed prompts"))
	if err != nil {
		return nil, fmt.Errorf("could not create phrases counter: %w", err)
	}
	duration, err := meter.Float64Histogram("parser.duration",
		metric.WithDescription("Time spent scanning a prompt"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &parser{
		options:  options,
		storage:  storage,
		tracer:   options.TracerProvider.Tracer(instrumentationName),
		prompts:  prompts,
		phrases:  phrases,
		duration: duration,
	}, nil
}

// validate rejects prompts the scanner should never see.
func (p *parser) validate(text string) error {
	if p.options.MaxInputBytes > 0 && len(text) > p.options.MaxInputBytes {
		return serrors.With(serrors.ErrBadRequest, "prompt exceeds %d bytes", p.options.MaxInputBytes)
	}
	if !utf8.ValidString(text) {
		return serrors.With(serrors.ErrBadRequest, "prompt is not valid UTF-8")
	}

	return nil
}

// validateStored additionally rejects prompts that cannot be persisted. The
// scanner itself accepts NUL characters.
func (p *parser) validateStored(text string) error {
	if err := p.validate(text); err != nil {
		return err
	}
	if strings.ContainsRune(text, 0) {
		return serrors.With(serrors.ErrBadRequest, "prompt contains NUL characters")
	}

	return nil
}

// scan runs the scanner and records its metrics.
func (p *parser) scan(ctx context.Context, text, mode string) domain.ParseResult {
	start := time.Now()
	res := weighted.Parse(text)

	attrs := metric.WithAttributes(attribute.String("mode", mode))
	p.prompts.Add(ctx, 1, attrs)
	p.phrases.Add(ctx, int64(res.Len()), attrs)
	p.duration.Record(ctx, time.Since(start).Seconds(), attrs)

	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("parser.phrases", res.Len()))

	return domain.NewParseResult(res)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Parse parses text synchronously without storing it.
func (p *parser) Parse(ctx context.Context, text string) (_ domain.ParseResult, err error) {
	ctx, span := p.tracer.Start(ctx, "parser.Parse",
		trace.WithAttributes(attribute.Int("parser.input_bytes", len(text))))
	defer func() { endSpan(span, err) }()

	if err := p.validate(text); err != nil {
		return domain.ParseResult{}, err
	}

	return p.scan(ctx, text, modeSync), nil
}

// Submit stores a new pending prompt for the given user and enqueues a
// background job to parse it. Both happen in one transaction.
func (p *parser) Submit(ctx context.Context, userID domain.UserID, text string) (_ *domain.Prompt, err error) {
	ctx, span := p.tracer.Start(ctx, "parser.Submit",
		trace.WithAttributes(attribute.Int("parser.input_bytes", len(text))))
	defer func() { endSpan(span, err) }()

	if err := p.validateStored(text); err != nil {
		return nil, err
	}

	var prompt *domain.Prompt
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StorePrompts(ctx, domain.Prompt{
			UserID: userID,
			Text:   text,
			Status: domain.PromptStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store prompt: %w", err)
		}
		prompt = &res[0]

		if _, err := tx.AddJob(ctx, JobArgs{
			PromptID:    uuid.UUID(prompt.ID),
			maxAttempts: p.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		if errors.Is(err, storage.ErrInvalidText) {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "prompt cannot be stored")
		}

		return nil, fmt.Errorf("could not submit prompt: %w", err)
	}

	span.SetAttributes(attribute.String("parser.prompt_id", prompt.ID.String()))

	return prompt, nil
}

// UserPrompts returns a page of prompts for the given user filtered by status.
// It supports cursor-based pagination using an RFC3339 timestamp string and
// returns the next cursor when more results are available.
func (p *parser) UserPrompts(ctx context.Context,
	userID domain.UserID,
	status domain.PromptStatus,
	cursor string,
	limit uint) ([]domain.Prompt, string, error) {
	if status != "" && !status.Valid() {
		return nil, "", serrors.With(serrors.ErrBadRequest, "invalid status %q", status)
	}

	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	page, err := p.storage.UserPrompts(ctx, userID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user prompts: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339Nano)
	}

	return page.Prompts, next, nil
}

// Result fetches a single prompt by ID for the given user. It returns a
// not-found error when no matching prompt exists.
func (p *parser) Result(ctx context.Context, userID domain.UserID, promptID domain.PromptID) (*domain.Prompt, error) {
	res, err := p.storage.PromptByID(ctx, userID, promptID)
	if err != nil {
		return nil, fmt.Errorf("could not get prompt: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "prompt not found")
	}

	return res, nil
}

// Delete removes a prompt belonging to the given user. If the prompt does not
// exist, a not-found error is returned. A queued job for a deleted prompt is
// cancelled by the worker once it finds the prompt gone.
func (p *parser) Delete(ctx context.Context, userID domain.UserID, promptID domain.PromptID) error {
	res, err := p.storage.DeletePrompt(ctx, userID, promptID)
	if err != nil {
		return fmt.Errorf("could not delete prompt: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "prompt not found")
	}

	return nil
}

// Process parses a pending prompt and stores its result. A prompt that is no
// longer pending yields a conflict error.
func (p *parser) Process(ctx context.Context, promptID domain.PromptID) (err error) {
	ctx, span := p.tracer.Start(ctx, "parser.Process",
		trace.WithAttributes(attribute.String("parser.prompt_id", promptID.String())))
	defer func() { endSpan(span, err) }()

	prompt, err := p.storage.PendingPrompt(ctx, promptID)
	if err != nil {
		return fmt.Errorf("could not get pending prompt: %w", err)
	}
	if prompt == nil {
		return serrors.With(serrors.ErrConflict, "prompt is not pending")
	}

	result := p.scan(ctx, prompt.Text, modeAsync)
	noError := ""
	updated, err := p.storage.UpdatePromptByID(ctx, promptID, storage.PromptUpdates{
		Status:    domain.PromptStatusCompleted,
		Result:    &result,
		LastError: &noError,
	})
	if err != nil {
		return fmt.Errorf("could not store parse result: %w", err)
	}
	if updated == nil {
		return serrors.With(serrors.ErrConflict, "prompt was deleted while processing")
	}

	return nil
}

// Fail marks a prompt as failed with the given reason. It is called once the
// worker has used up all attempts.
func (p *parser) Fail(ctx context.Context, promptID domain.PromptID, reason string) error {
	updated, err := p.storage.UpdatePromptByID(ctx, promptID, storage.PromptUpdates{
		Status:    domain.PromptStatusFailed,
		LastError: &reason,
	})
	if err != nil {
		return fmt.Errorf("could not mark prompt as failed: %w", err)
	}
	if updated == nil {
		return serrors.With(serrors.ErrNotFound, "prompt not found")
	}

	return nil
}
