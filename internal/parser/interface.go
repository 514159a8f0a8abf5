package parser

import (
	"context"

	"promptparser/pkg/domain"
)

//go:generate mockgen -package mockparser -source=interface.go -destination=mock/mockparser.go *
type Parser interface {
	Parse(ctx context.Context, text string) (domain.ParseResult, error)
	Submit(ctx context.Context, userID domain.UserID, text string) (*domain.Prompt, error)
	UserPrompts(ctx context.Context,
		userID domain.UserID,
		status domain.PromptStatus,
		cursor string,
		limit uint) ([]domain.Prompt, string, error)
	Result(ctx context.Context, userID domain.UserID, promptID domain.PromptID) (*domain.Prompt, error)
	Delete(ctx context.Context, userID domain.UserID, promptID domain.PromptID) error
	Process(ctx context.Context, promptID domain.PromptID) error
	Fail(ctx context.Context, promptID domain.PromptID, reason string) error
}
