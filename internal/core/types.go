package core

import "time"

const (
	NotebotName    = "NoteBot"
	NotebotVersion = "0.1.0"
)

// MessageTypeText is the default type recorded for logged messages.
const MessageTypeText = "text"

// Note is a single free-text note. Notes are created atomically with all
// fields set and are never edited afterwards; the only mutation is bulk
// deletion of an owner's entire collection.
type Note struct {
	ID        int64
	OwnerID   int64
	ChatID    string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LoggedMessage is one inbound platform message, recorded append-only before
// command dispatch.
type LoggedMessage struct {
	OwnerID           int64
	ChatID            string
	PlatformMessageID int
	Text              string
	Type              string
}

// BotConfig maps one owner to one bot credential and callback URL. It is
// written by the configuration API and read by the webhook transport to
// resolve identities; the interpreter never touches it.
type BotConfig struct {
	ID         int64
	OwnerID    int64
	BotToken   string
	WebhookURL string
	Configured bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Identity is the resolved (owner, chat) pair for one inbound update.
// Resolution from a raw bot token is the transport's job.
type Identity struct {
	OwnerID int64
	ChatID  string
}

// Update is the validated inbound event handed to the interpreter. Text is
// empty when the platform delivered a payload without text.
type Update struct {
	ID        int
	MessageID int
	ChatID    int64
	Text      string
}
