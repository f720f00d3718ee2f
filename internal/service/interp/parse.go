package interp

import (
	"strings"

	"github.com/sandevgo/notebot/internal/core"
)

const (
	addPrefix    = "/add "
	searchPrefix = "/search "
)

// Parse maps trimmed message text to exactly one command. Prefix matching is
// case-sensitive and includes the trailing space, so "/addfoo" falls through
// to a freeform note.
func Parse(text string) core.Command {
	switch {
	case text == "/start":
		return core.Command{Kind: core.CmdStart}
	case text == "/list":
		return core.Command{Kind: core.CmdList}
	case text == "/clear":
		return core.Command{Kind: core.CmdClear}
	case strings.HasPrefix(text, addPrefix):
		return core.Command{Kind: core.CmdAdd, Arg: strings.TrimSpace(text[len(addPrefix):])}
	case strings.HasPrefix(text, searchPrefix):
		return core.Command{Kind: core.CmdSearch, Arg: strings.TrimSpace(text[len(searchPrefix):])}
	default:
		return core.Command{Kind: core.CmdFreeform, Arg: text}
	}
}
