package domain

import (
	"time"

	"promptparser/pkg/weighted"

	"github.com/google/uuid"
)

// PromptID uniquely identifies a submitted prompt.
// It wraps uuid.UUID to provide type safety at the domain layer.
type PromptID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id PromptID) String() string { return uuid.UUID(id).String() }

// PromptStatus represents the lifecycle state of a submitted prompt.
// It can be pending, completed, or failed.
type PromptStatus string

const (
	// PromptStatusPending indicates the prompt has been enqueued but not parsed yet.
	PromptStatusPending PromptStatus = "PENDING"
	// PromptStatusCompleted indicates the prompt was parsed and a result is available.
	PromptStatusCompleted PromptStatus = "COMPLETED"
	// PromptStatusFailed indicates processing gave up; see LastError and Attempts for details.
	PromptStatusFailed PromptStatus = "FAILED"
)

// Valid reports whether s is one of the known statuses.
func (s PromptStatus) Valid() bool {
	switch s {
	case PromptStatusPending, PromptStatusCompleted, PromptStatusFailed:
		return true
	default:
		return false
	}
}

// ParseResult is the stored and transported form of a weighted.Result.
// Its slices are index aligned.
type ParseResult struct {
	CleanedText string    `yaml:"cleanedText"`
	Phrases     []string  `yaml:"phrases"`
	Weights     []float64 `yaml:"weights"`
	Positions   []int     `yaml:"positions"`
	Offsets     []int     `yaml:"offsets"`
}

// NewParseResult converts the scanner output into a ParseResult.
func NewParseResult(r weighted.Result) ParseResult {
	return ParseResult{
		CleanedText: r.CleanedText,
		Phrases:     r.Phrases,
		Weights:     r.Weights,
		Positions:   r.Positions,
		Offsets:     r.Offsets,
	}
}

// Empty reports whether the result holds neither text nor phrases.
func (r ParseResult) Empty() bool {
	return r.CleanedText == "" && len(r.Phrases) == 0
}

// Prompt represents a single submitted prompt and its current state.
// It tracks the raw text, status, parse result, error information, and timestamps.
type Prompt struct {
	// ID is the unique identifier of the prompt.
	ID PromptID
	// UserID is the identifier of the user who submitted the prompt.
	UserID UserID

	// Text is the raw annotated prompt as submitted.
	Text string
	// Status is the current lifecycle state of the prompt.
	Status PromptStatus
	// Result contains the parse outcome once the prompt is completed.
	Result ParseResult

	// Attempts is the number of times the system has tried to process this prompt.
	Attempts uint
	// LastError stores the most recent error message, if any, encountered while processing the prompt.
	LastError string

	// CreatedAt is the time when the prompt was submitted.
	CreatedAt time.Time
	// UpdatedAt is the time when the prompt was last updated.
	UpdatedAt time.Time
	// DeletedAt marks when the prompt was soft-deleted; zero value means not deleted.
	DeletedAt time.Time
}
