package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/vimwizard/internal/engine"
)

// namedKeys maps terminal key types to the engine's key names. Keys the engine has no
// command for are still named so the journal records what was pressed.
var namedKeys = map[tea.KeyType]engine.Key{
	tea.KeyEsc:       engine.KeyEscape,
	tea.KeyBackspace: engine.KeyBackspace,
	tea.KeyEnter:     engine.KeyEnter,
	tea.KeySpace:     " ",
	tea.KeyTab:       "Tab",
	tea.KeyLeft:      "ArrowLeft",
	tea.KeyRight:     "ArrowRight",
	tea.KeyUp:        "ArrowUp",
	tea.KeyDown:      "ArrowDown",
	tea.KeyDelete:    "Delete",
	tea.KeyHome:      "Home",
	tea.KeyEnd:       "End",
}

// toKeystrokes translates a terminal key message into engine keystrokes. Runes arrive in
// batches when text is pasted, so each grapheme becomes its own keystroke.
func toKeystrokes(msg tea.KeyMsg) []engine.Keystroke {
	mods := engine.Modifiers{Alt: msg.Alt}

	if msg.Type == tea.KeyRunes {
		var out []engine.Keystroke
		g := uniseg.NewGraphemes(string(msg.Runes))
		for g.Next() {
			out = append(out, engine.Keystroke{Key: engine.Key(g.Str()), Mods: mods})
		}
		return out
	}

	if k, ok := namedKeys[msg.Type]; ok {
		return []engine.Keystroke{{Key: k, Mods: mods}}
	}

	// Control chords arrive as their own key types; tea names them "ctrl+x".
	name := msg.String()
	name = strings.TrimPrefix(name, "alt+")
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok && rest != "" {
		mods.Ctrl = true
		return []engine.Keystroke{{Key: engine.Key(rest), Mods: mods}}
	}
	return nil
}
