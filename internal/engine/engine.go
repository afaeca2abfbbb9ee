package engine

// Outcome describes how a keystroke was handled.
type Outcome struct {
	Result ExecuteResult
	// CommandID is the ID of the matched command, empty when Unhandled.
	CommandID string
	// ChangedContent is true when the buffer was edited.
	ChangedContent bool
	// ChangedMode is true when the mode switched.
	ChangedMode bool
}

// Engine dispatches keystrokes through a command registry. It holds no editing state:
// every call takes a State and returns the next one.
type Engine struct {
	registry *CommandRegistry
}

// New returns an engine over the built-in command set.
func New() *Engine {
	return &Engine{registry: DefaultRegistry}
}

// NewWithRegistry returns an engine over a custom command set.
func NewWithRegistry(r *CommandRegistry) *Engine {
	return &Engine{registry: r}
}

var defaultEngine = New()

// ApplyKey applies one keystroke with the built-in command set and returns the next state.
// Disallowed, unbound and inapplicable keys return s unchanged.
func ApplyKey(s State, key Key, mods Modifiers, allowed KeySet) State {
	next, _ := defaultEngine.Apply(s, key, mods, allowed)
	return next
}

// Apply is ApplyKey with an Outcome describing what happened.
func Apply(s State, key Key, mods Modifiers, allowed KeySet) (State, Outcome) {
	return defaultEngine.Apply(s, key, mods, allowed)
}

// Apply applies one keystroke and returns the next state. The input state is never
// modified; when the key has no effect the input is returned as is.
func (e *Engine) Apply(s State, key Key, mods Modifiers, allowed KeySet) (State, Outcome) {
	next := s.Clone()
	next.normalize()

	cmd, ok := e.registry.Get(next.Mode, key)
	if !ok {
		// Fallback: literal character input in insertion mode
		if next.Mode != ModeInsertion || mods.Any() || !key.IsPrintable() {
			return s, Outcome{Result: Unhandled}
		}
		cmd = &InsertTextCommand{text: string(key)}
	}

	outcome := Outcome{CommandID: cmd.ID()}
	if cmd.Filtered() && !allowed.Allows(key) {
		outcome.Result = Filtered
		return s, outcome
	}

	outcome.Result = cmd.Execute(&next)
	if outcome.Result != Executed {
		return s, outcome
	}
	next.clampCol()
	outcome.ChangedContent = cmd.ChangesContent()
	outcome.ChangedMode = cmd.IsModeChange()
	return next, outcome
}

// Replay applies a sequence of keystrokes from a starting state.
func (e *Engine) Replay(s State, strokes []Keystroke, allowed KeySet) State {
	for _, ks := range strokes {
		s, _ = e.Apply(s, ks.Key, ks.Mods, allowed)
	}
	return s
}
