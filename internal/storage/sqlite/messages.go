package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/notebot/internal/core"
)

type MessagesRepo struct {
	conn
}

func NewMessagesRepo(db *sql.DB) *MessagesRepo {
	return &MessagesRepo{conn{db: db}}
}

// Append records one inbound message. Rows are write-once; nothing in the bot
// ever updates or deletes them.
func (r *MessagesRepo) Append(ctx context.Context, msg core.LoggedMessage) error {
	if r.offline(ctx, "messages.append") {
		return nil
	}

	if msg.Type == "" {
		msg.Type = core.MessageTypeText
	}

	// Text is nullable in the schema; non-text payloads log an empty text.
	text := sql.NullString{String: msg.Text, Valid: msg.Text != ""}

	query := `INSERT INTO messages (owner_id, chat_id, platform_message_id, text, type) VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, msg.OwnerID, msg.ChatID, msg.PlatformMessageID, text, msg.Type); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}
