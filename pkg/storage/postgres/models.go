package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"promptparser/pkg/domain"

	"github.com/google/uuid"
)

type PgPrompt struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Text   string          `db:"text"`
	Status string          `db:"status"`
	Result json.RawMessage `db:"result" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgPrompt) ToDomain() (*domain.Prompt, error) {
	var result domain.ParseResult
	// pending prompts carry the column default '{}'
	if len(p.Result) > 0 {
		if err := result.UnmarshalJSON(p.Result); err != nil {
			return nil, fmt.Errorf("could not unmarshal parse result: %w", err)
		}
	}

	return &domain.Prompt{
		ID:        domain.PromptID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Text:      p.Text,
		Status:    domain.PromptStatus(p.Status),
		Result:    result,
		Attempts:  p.Attempts,
		LastError: p.LastError.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}, nil
}

func (p *PgPrompt) FromDomain(prompt domain.Prompt) error {
	result, err := prompt.Result.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not marshal parse result: %w", err)
	}

	*p = PgPrompt{
		ID:       uuid.UUID(prompt.ID),
		UserID:   uuid.UUID(prompt.UserID),
		Text:     prompt.Text,
		Status:   string(prompt.Status),
		Result:   result,
		Attempts: prompt.Attempts,
		LastError: sql.NullString{
			String: prompt.LastError,
			Valid:  prompt.LastError != "",
		},
		CreatedAt: prompt.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  prompt.UpdatedAt,
			Valid: !prompt.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  prompt.DeletedAt,
			Valid: !prompt.DeletedAt.IsZero(),
		},
	}

	return nil
}

func domainPromptsToPg(prompts []domain.Prompt) ([]PgPrompt, error) {
	out := make([]PgPrompt, len(prompts))
	for i := range out {
		if err := out[i].FromDomain(prompts[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgPromptsToDomain(prompts []PgPrompt) ([]domain.Prompt, error) {
	out := make([]domain.Prompt, 0, len(prompts))
	for _, prompt := range prompts {
		d, err := prompt.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
