package core

import "context"

type NoteRepository interface {
	Create(ctx context.Context, ownerID int64, chatID, content string) error
	ListAll(ctx context.Context, ownerID int64) ([]Note, error)
	Search(ctx context.Context, ownerID int64, query string) ([]Note, error)
	DeleteAll(ctx context.Context, ownerID int64) error
}

type MessageLog interface {
	Append(ctx context.Context, msg LoggedMessage) error
}

type BotConfigRepository interface {
	GetByOwner(ctx context.Context, ownerID int64) (*BotConfig, error)
	GetByToken(ctx context.Context, token string) (*BotConfig, error)
	Upsert(ctx context.Context, ownerID int64, botToken, webhookURL string) error
}
