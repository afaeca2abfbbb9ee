package markdown

import (
	"fmt"
	"strings"

	"github.com/zjrosen/vimwizard/internal/engine"
)

type sheetEntry struct {
	key  string
	desc string
}

var navigationSheet = []sheetEntry{
	{"h", "left one character"},
	{"l", "right one character"},
	{"j", "down one line"},
	{"k", "up one line"},
	{"w", "start of the next word"},
	{"b", "start of the previous word"},
	{"0", "start of the line"},
	{"$", "end of the line"},
	{"x", "delete the character under the cursor"},
	{"i", "insert before the cursor"},
	{"a", "append after the cursor"},
}

var insertionSheet = []sheetEntry{
	{"any character", "type it at the cursor"},
	{"Backspace", "delete the character before the cursor"},
	{"Enter", "split the line at the cursor"},
	{"Escape", "back to navigation"},
}

// CheatSheet returns the command reference as markdown. Keys outside allowed are marked
// as sealed; a nil set seals nothing.
func CheatSheet(allowed engine.KeySet) string {
	var sb strings.Builder
	sb.WriteString("# Grimoire\n\n")

	sb.WriteString("## Navigation\n\n")
	sb.WriteString("| key | effect | |\n|---|---|---|\n")
	for _, e := range navigationSheet {
		state := "ready"
		if !allowed.Allows(engine.Key(e.key)) {
			state = "sealed"
		}
		fmt.Fprintf(&sb, "| `%s` | %s | %s |\n", e.key, e.desc, state)
	}

	sb.WriteString("\n## Insertion\n\n")
	sb.WriteString("| key | effect |\n|---|---|\n")
	for _, e := range insertionSheet {
		fmt.Fprintf(&sb, "| `%s` | %s |\n", e.key, e.desc)
	}

	sb.WriteString("\nSealed runes are forbidden in the current trial.\n")
	return sb.String()
}
