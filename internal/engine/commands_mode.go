package engine

// ============================================================================
// Mode Entry Commands
// ============================================================================

// EnterInsertModeCommand enters insertion mode at the cursor (i command).
type EnterInsertModeCommand struct {
	ModeEntryBase
}

// Execute switches to insertion mode without moving the cursor.
func (c *EnterInsertModeCommand) Execute(s *State) ExecuteResult {
	s.Mode = ModeInsertion
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *EnterInsertModeCommand) Keys() []Key { return []Key{"i"} }

// Mode returns the mode this command operates in.
func (c *EnterInsertModeCommand) Mode() Mode { return ModeNavigation }

// ID returns the hierarchical identifier for this command.
func (c *EnterInsertModeCommand) ID() string { return "mode.insert" }

// EnterInsertModeAfterCommand enters insertion mode after the cursor (a command).
type EnterInsertModeAfterCommand struct {
	ModeEntryBase
}

// Execute advances the cursor by one, allowing one past the last character, then switches
// to insertion mode.
func (c *EnterInsertModeAfterCommand) Execute(s *State) ExecuteResult {
	s.Cursor.Col = min(s.Cursor.Col+1, s.LineLen())
	s.Mode = ModeInsertion
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *EnterInsertModeAfterCommand) Keys() []Key { return []Key{"a"} }

// Mode returns the mode this command operates in.
func (c *EnterInsertModeAfterCommand) Mode() Mode { return ModeNavigation }

// ID returns the hierarchical identifier for this command.
func (c *EnterInsertModeAfterCommand) ID() string { return "mode.insert_after" }

// EscapeCommand leaves insertion mode. The cursor steps back onto the character it was
// placed after, floored at column 0.
type EscapeCommand struct{}

// Execute switches back to navigation mode.
func (c *EscapeCommand) Execute(s *State) ExecuteResult {
	s.Mode = ModeNavigation
	s.Cursor.Col = max(s.Cursor.Col-1, 0)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *EscapeCommand) Keys() []Key { return []Key{KeyEscape} }

// Mode returns the mode this command operates in.
func (c *EscapeCommand) Mode() Mode { return ModeInsertion }

// ID returns the hierarchical identifier for this command.
func (c *EscapeCommand) ID() string { return "mode.navigation" }

func (c *EscapeCommand) ChangesContent() bool { return false }
func (c *EscapeCommand) IsModeChange() bool   { return true }
func (c *EscapeCommand) Filtered() bool       { return false }
