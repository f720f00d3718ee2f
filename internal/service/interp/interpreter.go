// Package interp turns inbound chat messages into note store operations and
// renders the reply text. One update in, exactly one store action, one reply
// string out.
package interp

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/notebot/internal/core"
	"github.com/sandevgo/notebot/pkg/log"
)

const (
	ReplyNoText      = "message without text received"
	ReplyCleared     = "✅ All notes deleted"
	ReplyNoteAdded   = "✅ Note added"
	ReplySaved       = "✅ Message saved as a note"
	ReplyAddUsage    = "❌ Please provide the note text after /add"
	ReplySearchUsage = "❌ Please provide a search query after /search"
	ReplyNoNotes     = "📭 You have no saved notes"
	ReplyError       = "⚠️ Something went wrong, please try again"
)

const startMessage = `👋 Welcome to the Notes Bot!

📝 Here is what I can do:

/start - Show this message
/add text - Add a new note
/list - Show all notes
/search query - Find notes by keyword
/clear - Delete all notes

💡 Tip: any other message is saved as a note automatically!`

type Interpreter struct {
	notes    core.NoteRepository
	messages core.MessageLog
}

func New(notes core.NoteRepository, messages core.MessageLog) *Interpreter {
	return &Interpreter{
		notes:    notes,
		messages: messages,
	}
}

// Handle processes one inbound update for an already-resolved identity and
// returns the reply text. It never returns an error: validation problems and
// store failures are all rendered as user-facing strings.
func (i *Interpreter) Handle(ctx context.Context, upd core.Update, id core.Identity) string {
	text := strings.TrimSpace(upd.Text)
	if text == "" {
		return ReplyNoText
	}

	// Log the raw message before dispatch. A failed log write must not block
	// the command itself.
	entry := core.LoggedMessage{
		OwnerID:           id.OwnerID,
		ChatID:            id.ChatID,
		PlatformMessageID: upd.MessageID,
		Text:              text,
		Type:              core.MessageTypeText,
	}
	if err := i.messages.Append(ctx, entry); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to log inbound message")
	}

	cmd := Parse(text)
	switch cmd.Kind {
	case core.CmdStart:
		return startMessage

	case core.CmdList:
		notes, err := i.notes.ListAll(ctx, id.OwnerID)
		if err != nil {
			return i.fail(ctx, err, "list notes")
		}
		if len(notes) == 0 {
			return ReplyNoNotes
		}
		return renderList(notes)

	case core.CmdClear:
		if err := i.notes.DeleteAll(ctx, id.OwnerID); err != nil {
			return i.fail(ctx, err, "clear notes")
		}
		return ReplyCleared

	case core.CmdAdd:
		if cmd.Arg == "" {
			return ReplyAddUsage
		}
		if err := i.notes.Create(ctx, id.OwnerID, id.ChatID, cmd.Arg); err != nil {
			return i.fail(ctx, err, "add note")
		}
		return ReplyNoteAdded

	case core.CmdSearch:
		if cmd.Arg == "" {
			return ReplySearchUsage
		}
		matches, err := i.notes.Search(ctx, id.OwnerID, cmd.Arg)
		if err != nil {
			return i.fail(ctx, err, "search notes")
		}
		if len(matches) == 0 {
			return fmt.Sprintf("🔍 No notes found for %q", cmd.Arg)
		}
		return renderSearchResults(cmd.Arg, matches)

	default:
		if err := i.notes.Create(ctx, id.OwnerID, id.ChatID, cmd.Arg); err != nil {
			return i.fail(ctx, err, "save freeform note")
		}
		return ReplySaved
	}
}

func (i *Interpreter) fail(ctx context.Context, err error, op string) string {
	log.FromCtx(ctx).Error().Err(err).Str("op", op).Msg("store operation failed")
	return ReplyError
}
