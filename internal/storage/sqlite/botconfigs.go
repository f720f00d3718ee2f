package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sandevgo/notebot/internal/core"
)

type BotConfigsRepo struct {
	conn
}

func NewBotConfigsRepo(db *sql.DB) *BotConfigsRepo {
	return &BotConfigsRepo{conn{db: db}}
}

const botConfigColumns = `id, owner_id, bot_token, webhook_url, configured, created_at, updated_at`

func (r *BotConfigsRepo) GetByOwner(ctx context.Context, ownerID int64) (*core.BotConfig, error) {
	if r.offline(ctx, "bot_configs.get_by_owner") {
		return nil, nil
	}

	query := `SELECT ` + botConfigColumns + ` FROM bot_configs WHERE owner_id = ? LIMIT 1`
	return r.getOne(ctx, query, ownerID)
}

func (r *BotConfigsRepo) GetByToken(ctx context.Context, token string) (*core.BotConfig, error) {
	if r.offline(ctx, "bot_configs.get_by_token") {
		return nil, nil
	}

	query := `SELECT ` + botConfigColumns + ` FROM bot_configs WHERE bot_token = ? LIMIT 1`
	return r.getOne(ctx, query, token)
}

func (r *BotConfigsRepo) getOne(ctx context.Context, query string, arg any) (*core.BotConfig, error) {
	var (
		cfg        core.BotConfig
		configured int
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&cfg.ID, &cfg.OwnerID, &cfg.BotToken, &cfg.WebhookURL, &configured, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query bot config: %w", err)
	}

	cfg.Configured = configured != 0
	return &cfg, nil
}

// Upsert stores the owner's bot credential and callback URL, marking the
// config as completed. One config per owner.
func (r *BotConfigsRepo) Upsert(ctx context.Context, ownerID int64, botToken, webhookURL string) error {
	if r.offline(ctx, "bot_configs.upsert") {
		return nil
	}

	query := `INSERT INTO bot_configs (owner_id, bot_token, webhook_url, configured)
		VALUES (?, ?, ?, 1)
		ON CONFLICT(owner_id) DO UPDATE SET
			bot_token = excluded.bot_token,
			webhook_url = excluded.webhook_url,
			configured = 1,
			updated_at = CURRENT_TIMESTAMP`

	if _, err := r.db.ExecContext(ctx, query, ownerID, botToken, webhookURL); err != nil {
		return fmt.Errorf("failed to upsert bot config: %w", err)
	}
	return nil
}
