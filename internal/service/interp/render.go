package interp

import (
	"fmt"
	"strings"

	"github.com/sandevgo/notebot/internal/core"
)

const (
	maxListEntries  = 10
	maxPreviewRunes = 50
)

func renderList(notes []core.Note) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 Your notes (%d total):\n\n", len(notes))
	writeEntries(&b, notes)
	if len(notes) > maxListEntries {
		fmt.Fprintf(&b, "\n... and %d more notes", len(notes)-maxListEntries)
	}
	return b.String()
}

func renderSearchResults(query string, notes []core.Note) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔍 Results for %q (%d found):\n\n", query, len(notes))
	writeEntries(&b, notes)
	if len(notes) > maxListEntries {
		fmt.Fprintf(&b, "\n... and %d more results", len(notes)-maxListEntries)
	}
	return b.String()
}

func writeEntries(b *strings.Builder, notes []core.Note) {
	for i, n := range notes {
		if i == maxListEntries {
			break
		}
		fmt.Fprintf(b, "%d. %s\n", i+1, preview(n.Content))
	}
}

// preview truncates by runes, not bytes, so multibyte content never gets cut
// mid-character.
func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= maxPreviewRunes {
		return content
	}
	return string(runes[:maxPreviewRunes]) + "..."
}
