// Package engine implements the modal text-editing engine: a buffer, a cursor and an editing
// mode, advanced one keystroke at a time by a registry of mode-scoped commands.
package engine

// Mode represents the current editing mode.
type Mode int

const (
	// ModeNavigation moves the cursor and runs single-key commands. It is the initial mode.
	ModeNavigation Mode = iota
	// ModeInsertion enters literal text at the cursor.
	ModeInsertion
	// ModeSelection is reserved. No command is registered for it, so every key is a no-op.
	ModeSelection
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNavigation:
		return "NORMAL"
	case ModeInsertion:
		return "INSERT"
	case ModeSelection:
		return "VISUAL"
	default:
		return "UNKNOWN"
	}
}
