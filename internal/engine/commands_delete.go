package engine

// DeleteCharCommand deletes the character under the cursor (x command).
// It is the only navigation command that edits the buffer.
type DeleteCharCommand struct {
	DeleteBase
}

// Execute removes the character under the cursor and pulls the cursor back onto the line
// if it was left past the end.
func (c *DeleteCharCommand) Execute(s *State) ExecuteResult {
	n := s.LineLen()
	if n == 0 {
		return Skipped
	}
	row := s.Cursor.Row
	if s.Cursor.Col < n {
		s.Lines[row] = DeleteGraphemeRange(s.Lines[row], s.Cursor.Col, s.Cursor.Col+1)
	}
	if remaining := s.LineLen(); s.Cursor.Col >= remaining {
		s.Cursor.Col = max(remaining-1, 0)
	}
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *DeleteCharCommand) Keys() []Key { return []Key{"x"} }

// Mode returns the mode this command operates in.
func (c *DeleteCharCommand) Mode() Mode { return ModeNavigation }

// ID returns the hierarchical identifier for this command.
func (c *DeleteCharCommand) ID() string { return "delete.char" }
