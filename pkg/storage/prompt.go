package storage

import (
	"context"
	"time"

	"promptparser/pkg/domain"
)

// PromptUpdates describes a set of optional fields that can be applied to an
// existing prompt during an update. Only non-nil fields will be updated.
type PromptUpdates struct {
	// Status is the new status to set for the prompt.
	Status domain.PromptStatus
	// Result, when provided, replaces the stored parse result payload.
	Result *domain.ParseResult
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
}

// UserPrompts groups a page of prompts returned for a user together with an
// optional NextCursor used for pagination.
type UserPrompts struct {
	// Prompts contains the current page of prompt records.
	Prompts []domain.Prompt
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// PromptStorage defines CRUD and query operations related to prompts.
// Soft-deleted rows are invisible to every read and update.
type PromptStorage interface {
	// StorePrompts inserts one or more prompts and returns the stored rows as they
	// exist in the database (including generated fields).
	StorePrompts(ctx context.Context, prompts ...domain.Prompt) ([]domain.Prompt, error)
	// UpdatePromptByID updates a single prompt identified by its ID and returns the updated row,
	// or nil if it was not found. Attempts is incremented by 1 and updated_at is set automatically.
	UpdatePromptByID(ctx context.Context, ID domain.PromptID, updates PromptUpdates) (*domain.Prompt, error)
	// PendingPrompt fetches a pending prompt by ID regardless of its owner. Returns nil
	// when the prompt does not exist, is deleted or is no longer pending.
	PendingPrompt(ctx context.Context, ID domain.PromptID) (*domain.Prompt, error)
	// PromptByID fetches a prompt by its ID for the given user, excluding soft-deleted
	// records. Returns nil when not found.
	PromptByID(ctx context.Context, userID domain.UserID, ID domain.PromptID) (*domain.Prompt, error)
	// DeletePrompt performs a soft delete for the given prompt ID and user ID and
	// returns the deleted prompt, or nil if it was not found.
	DeletePrompt(ctx context.Context, userID domain.UserID, ID domain.PromptID) (*domain.Prompt, error)
	// UserPrompts returns a page of prompts for a user created before the optional
	// cursor time, limited by the given limit. If status is non-empty, results are
	// filtered to records with the given status.
	UserPrompts(ctx context.Context,
		userID domain.UserID,
		status domain.PromptStatus,
		cursor time.Time,
		limit uint) (UserPrompts, error)
}
