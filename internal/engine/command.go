package engine

// ExecuteResult indicates the outcome of handling a keystroke.
type ExecuteResult int

const (
	// Executed means a command ran and consumed the key.
	Executed ExecuteResult = iota
	// Skipped means a command matched but its pre-conditions weren't met
	// (e.g., backspace at column 0, x on an empty line). The state is unchanged.
	Skipped
	// Filtered means the allowed-key filter rejected the key. The state is unchanged.
	Filtered
	// Unhandled means no command is bound to the key in the current mode. The state is unchanged.
	Unhandled
)

// String returns the string representation of the result.
func (r ExecuteResult) String() string {
	switch r {
	case Executed:
		return "executed"
	case Skipped:
		return "skipped"
	case Filtered:
		return "filtered"
	case Unhandled:
		return "unhandled"
	default:
		return "unknown"
	}
}

// Command is a single state transition bound to one or more keys in one mode.
// Execute mutates the state it is given; the engine always hands it a private copy.
type Command interface {
	// Execute applies the command. It returns Executed or Skipped.
	Execute(s *State) ExecuteResult

	// Keys returns the trigger key(s) that invoke this command.
	Keys() []Key

	// Mode returns which mode this command operates in.
	Mode() Mode

	// ID returns a hierarchical identifier such as "move.left" or "insert.text".
	ID() string

	// ChangesContent returns true if this command modifies the buffer.
	ChangesContent() bool

	// IsModeChange returns true if this command changes the mode.
	IsModeChange() bool

	// Filtered returns true if the allowed-key filter applies to this command.
	Filtered() bool
}

// ============================================================================
// Base structs for reducing boilerplate in Command implementations
// ============================================================================

// MotionBase provides defaults for navigation motions: no content change, no mode change,
// subject to the allowed-key filter.
type MotionBase struct{}

func (MotionBase) ChangesContent() bool { return false }
func (MotionBase) IsModeChange() bool   { return false }
func (MotionBase) Filtered() bool       { return true }

// DeleteBase provides defaults for navigation commands that edit the buffer.
type DeleteBase struct{}

func (DeleteBase) ChangesContent() bool { return true }
func (DeleteBase) IsModeChange() bool   { return false }
func (DeleteBase) Filtered() bool       { return true }

// ModeEntryBase provides defaults for the filtered mode-switch keys (i, a).
type ModeEntryBase struct{}

func (ModeEntryBase) ChangesContent() bool { return false }
func (ModeEntryBase) IsModeChange() bool   { return true }
func (ModeEntryBase) Filtered() bool       { return true }

// InsertBase provides defaults for insertion-mode editing. Once text entry is active the
// filter no longer applies.
type InsertBase struct{}

func (InsertBase) ChangesContent() bool { return true }
func (InsertBase) IsModeChange() bool   { return false }
func (InsertBase) Filtered() bool       { return false }

// ============================================================================
// CommandRegistry
// ============================================================================

// CommandRegistry provides mode-aware, key-based command dispatch.
type CommandRegistry struct {
	// commands maps Mode -> trigger key -> command
	commands map[Mode]map[Key]Command
}

// NewCommandRegistry creates an empty command registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[Mode]map[Key]Command),
	}
}

// Register adds a command under each of its Keys() in its Mode().
func (r *CommandRegistry) Register(cmd Command) {
	mode := cmd.Mode()
	if r.commands[mode] == nil {
		r.commands[mode] = make(map[Key]Command)
	}
	for _, key := range cmd.Keys() {
		r.commands[mode][key] = cmd
	}
}

// Get retrieves the command bound to key in mode.
func (r *CommandRegistry) Get(mode Mode, key Key) (Command, bool) {
	if modeMap, ok := r.commands[mode]; ok {
		if cmd, ok := modeMap[key]; ok {
			return cmd, true
		}
	}
	return nil, false
}

// Keys returns every key bound in mode.
func (r *CommandRegistry) Keys(mode Mode) []Key {
	out := make([]Key, 0, len(r.commands[mode]))
	for k := range r.commands[mode] {
		out = append(out, k)
	}
	return out
}

// DefaultRegistry holds the built-in command set. Commands carry no per-execution state,
// so the registered instances are shared.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *CommandRegistry {
	r := NewCommandRegistry()

	// ============================================================================
	// Navigation Mode Commands
	// ============================================================================

	r.Register(&MoveLeftCommand{})
	r.Register(&MoveRightCommand{})
	r.Register(&MoveDownCommand{})
	r.Register(&MoveUpCommand{})
	r.Register(&MoveWordForwardCommand{})
	r.Register(&MoveWordBackwardCommand{})
	r.Register(&MoveToLineStartCommand{})
	r.Register(&MoveToLineEndCommand{})

	r.Register(&DeleteCharCommand{})

	r.Register(&EnterInsertModeCommand{})
	r.Register(&EnterInsertModeAfterCommand{})

	// ============================================================================
	// Insertion Mode Commands
	// ============================================================================

	r.Register(&EscapeCommand{})
	r.Register(&BackspaceCommand{})
	r.Register(&SplitLineCommand{})

	return r
}

// isSpace reports whether a grapheme separates words. Only the space character does.
func isSpace(cluster string) bool {
	return cluster == " "
}
