package postgres

import (
	"context"
	"fmt"
	"time"

	"promptparser/pkg/domain"
	"promptparser/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	promptsTable = "prompts"
)

// StorePrompts inserts prompts in one statement. Nothing is inserted when a
// text holds NUL characters.
func (p *PgSQL) StorePrompts(ctx context.Context, prompts ...domain.Prompt) ([]domain.Prompt, error) {
	if len(prompts) == 0 {
		return nil, nil
	}
	for _, prompt := range prompts {
		if err := storableText("prompt text", prompt.Text); err != nil {
			return nil, err
		}
	}

	pgPrompts, err := domainPromptsToPg(prompts)
	if err != nil {
		return nil, err
	}

	var result []PgPrompt
	if err := p.Builder.Insert(promptsTable).
		Rows(pgPrompts).
		Returning(&PgPrompt{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store prompts into pg: %w", err)
	}

	return pgPromptsToDomain(result)
}

// UpdatePromptByID updates a single prompt with provided fields.
// Only non-nil fields from updates are set. Attempts is incremented by 1 and updated_at is set.
func (p *PgSQL) UpdatePromptByID(ctx context.Context,
	id domain.PromptID,
	updates storage.PromptUpdates) (*domain.Prompt, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.Result != nil {
		if err := storableResult(updates.Result); err != nil {
			return nil, err
		}
		b, err := updates.Result.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("could not marshal result: %w", err)
		}

		rec["result"] = string(b)
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = sanitizeText(*updates.LastError)
		}
	}

	var row PgPrompt
	found, err := p.Builder.Update(promptsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgPrompt{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update prompt by id in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// PendingPrompt returns a pending, non-deleted prompt by its ID for any user.
func (p *PgSQL) PendingPrompt(ctx context.Context, id domain.PromptID) (*domain.Prompt, error) {
	var row PgPrompt
	found, err := p.Builder.From(promptsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Eq(string(domain.PromptStatusPending)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch pending prompt: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeletePrompt performs a soft delete by setting deleted_at timestamp
// for a given prompt id and user, returning the deleted record.
func (p *PgSQL) DeletePrompt(ctx context.Context, userID domain.UserID, id domain.PromptID) (*domain.Prompt, error) {
	var row PgPrompt
	found, err := p.Builder.Update(promptsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgPrompt{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete prompt in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserPrompts returns a list of prompts for a user filtered by optional status and cursor and limited by limit.
// Results are ordered by created_at DESC, id DESC.
func (p *PgSQL) UserPrompts(ctx context.Context,
	userID domain.UserID,
	status domain.PromptStatus,
	cursor time.Time,
	limit uint) (storage.UserPrompts, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(promptsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgPrompt
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserPrompts{}, fmt.Errorf("could not fetch user prompts from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	domainRows, err := pgPromptsToDomain(rows)
	if err != nil {
		return storage.UserPrompts{}, err
	}

	return storage.UserPrompts{
		Prompts:    domainRows,
		NextCursor: nextCursor,
	}, nil
}

// PromptByID returns a prompt by its ID, excluding soft-deleted rows.
func (p *PgSQL) PromptByID(ctx context.Context, userID domain.UserID, id domain.PromptID) (*domain.Prompt, error) {
	var row PgPrompt
	found, err := p.Builder.From(promptsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch prompt by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
