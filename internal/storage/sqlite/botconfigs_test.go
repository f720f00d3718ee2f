package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotConfigsRepo_GetByOwner_Missing(t *testing.T) {
	ctx := context.Background()
	repo := NewBotConfigsRepo(newTestDB(t))

	cfg, err := repo.GetByOwner(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestBotConfigsRepo_UpsertAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewBotConfigsRepo(newTestDB(t))

	require.NoError(t, repo.Upsert(ctx, 1, "123:token", "https://example.com/webhook/123:token"))

	byOwner, err := repo.GetByOwner(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, byOwner)
	assert.Equal(t, "123:token", byOwner.BotToken)
	assert.Equal(t, "https://example.com/webhook/123:token", byOwner.WebhookURL)
	assert.True(t, byOwner.Configured)

	byToken, err := repo.GetByToken(ctx, "123:token")
	require.NoError(t, err)
	require.NotNil(t, byToken)
	assert.Equal(t, int64(1), byToken.OwnerID)

	unknown, err := repo.GetByToken(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, unknown)
}

func TestBotConfigsRepo_UpsertReplacesExisting(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewBotConfigsRepo(db)

	require.NoError(t, repo.Upsert(ctx, 1, "old-token", "https://example.com/old"))
	require.NoError(t, repo.Upsert(ctx, 1, "new-token", "https://example.com/new"))

	cfg, err := repo.GetByOwner(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "new-token", cfg.BotToken)
	assert.Equal(t, "https://example.com/new", cfg.WebhookURL)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM bot_configs WHERE owner_id = 1`).Scan(&count))
	assert.Equal(t, 1, count, "one config per owner")
}

func TestBotConfigsRepo_Offline(t *testing.T) {
	ctx := context.Background()
	repo := NewBotConfigsRepo(nil)

	require.NoError(t, repo.Upsert(ctx, 1, "t", "https://example.com"))

	cfg, err := repo.GetByOwner(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, cfg)

	cfg, err = repo.GetByToken(ctx, "t")
	require.NoError(t, err)
	assert.Nil(t, cfg)
}
