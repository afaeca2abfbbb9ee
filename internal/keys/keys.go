// Package keys contains keybinding definitions for the game shell. Every printable key
// belongs to the editor, so shell bindings use control keys.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the game screen.
type KeyMap struct {
	// Level
	Reset key.Binding
	Next  key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset level"),
		),
		Next: key.NewBinding(
			key.WithKeys("ctrl+n", "enter"),
			key.WithHelp("enter", "next level"),
			key.WithDisabled(),
		),
		Help: key.NewBinding(
			key.WithKeys("f1", "ctrl+t"),
			key.WithHelp("ctrl+t", "cheat sheet"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Next, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reset, k.Next}, // Level
		{k.Help, k.Quit},  // General
	}
}

// CheatSheetKeyMap defines the keybindings while the cheat sheet is open.
type CheatSheetKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Close key.Binding
}

// DefaultCheatSheetKeyMap returns the keybindings for the cheat sheet.
func DefaultCheatSheetKeyMap() CheatSheetKeyMap {
	return CheatSheetKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up", "pgup"),
			key.WithHelp("k/↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down", "pgdown"),
			key.WithHelp("j/↓", "scroll down"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q", "f1", "ctrl+t"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp returns keybindings for the mini help view.
func (k CheatSheetKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Close}
}

// FullHelp returns keybindings for the full help view.
func (k CheatSheetKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
