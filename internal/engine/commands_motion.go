package engine

// ============================================================================
// Motion Commands
// ============================================================================
//
// Motions compute a new cursor from the current one and never touch the buffer.

// MoveLeftCommand moves the cursor one character left (h motion), floored at column 0.
type MoveLeftCommand struct {
	MotionBase
}

// Execute moves the cursor one character to the left.
func (c *MoveLeftCommand) Execute(s *State) ExecuteResult {
	s.Cursor.Col = max(s.Cursor.Col-1, 0)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveLeftCommand) Keys() []Key { return []Key{"h"} }

// Mode returns the mode this command operates in.
func (c *MoveLeftCommand) Mode() Mode { return ModeNavigation }

// ID returns the hierarchical identifier for this command.
func (c *MoveLeftCommand) ID() string { return "move.left" }

// MoveRightCommand moves the cursor one character right (l motion), stopping on the last
// character. On an empty line the column stays at 0.
type MoveRightCommand struct {
	MotionBase
}

// Execute moves the cursor one character to the right.
func (c *MoveRightCommand) Execute(s *State) ExecuteResult {
	s.Cursor.Col = min(s.Cursor.Col+1, max(s.LineLen()-1, 0))
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveRightCommand) Keys() []Key { return []Key{"l"} }

// Mode returns the mode this command operates in.
func (c *MoveRightCommand) Mode() Mode { return ModeNavigation }

// ID returns the hierarchical identifier for this command.
func (c *MoveRightCommand) ID() string { return "move.right" }

// MoveDownCommand moves the cursor one line down (j motion), stopping at the last line.
// The column is re-clamped to the target line.
type MoveDownCommand struct {
	MotionBase
}

// Execute moves the cursor one line down.
func (c *MoveDownCommand) Execute(s *State) ExecuteResult {
	s.Cursor.Row = min(s.Cursor.Row+1, len(s.Lines)-1)
	s.Cursor.Col = min(s.Cursor.Col, max(s.LineLen()-1, 0))
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveDownCommand) Keys() []Key { return []Key{"j"} }

// Mode returns the mode this command operates in.
func (c *MoveDownCommand) Mode() Mode { return ModeNavigation }

// ID returns the hierarchical identifier for this command.
func (c *MoveDownCommand) ID() string { return "move.down" }

// MoveUpCommand moves the cursor one line up (k motion), stopping at the first line.
type MoveUpCommand struct {
	MotionBase
}

// Execute moves the cursor one line up.
func (c *MoveUpCommand) Execute(s *State) ExecuteResult {
	s.Cursor.Row = max(s.Cursor.Row-1, 0)
	s.Cursor.Col = min(s.Cursor.Col, max(s.LineLen()-1, 0))
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveUpCommand) Keys() []Key { return []Key{"k"} }

// Mode returns the mode this command operates in.
func (c *MoveUpCommand) Mode() Mode { return ModeNavigation }

// ID returns the hierarchical identifier for this command.
func (c *MoveUpCommand) ID() string { return "move.up" }

// MoveWordForwardCommand moves to the start of the next word (w motion).
// Words are runs of non-space characters; punctuation is not a boundary.
type MoveWordForwardCommand struct {
	MotionBase
}

// Execute moves the cursor to the start of the next word.
// When the current line has no further word the cursor moves to the first non-space
// character of the next line, or stays put on the last line.
func (c *MoveWordForwardCommand) Execute(s *State) ExecuteResult {
	line := graphemes(s.Line())
	col := s.Cursor.Col + 1

	// Skip the remainder of the current word
	for col < len(line) && !isSpace(line[col]) {
		col++
	}
	// Skip the gap
	for col < len(line) && isSpace(line[col]) {
		col++
	}

	if col < len(line) {
		s.Cursor.Col = col
		return Executed
	}
	if s.Cursor.Row >= len(s.Lines)-1 {
		return Executed
	}

	s.Cursor.Row++
	next := graphemes(s.Line())
	col = 0
	for col < len(next) && isSpace(next[col]) {
		col++
	}
	// A line of only spaces has no word start; rest on its last character.
	s.Cursor.Col = min(col, max(len(next)-1, 0))
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveWordForwardCommand) Keys() []Key { return []Key{"w"} }

// Mode returns the mode this command operates in.
func (c *MoveWordForwardCommand) Mode() Mode { return ModeNavigation }

// ID returns the hierarchical identifier for this command.
func (c *MoveWordForwardCommand) ID() string { return "move.word_forward" }

// MoveWordBackwardCommand moves to the start of the current or previous word (b motion).
type MoveWordBackwardCommand struct {
	MotionBase
}

// Execute moves the cursor backward to a word start.
// When the scan runs off the start of the line the cursor moves to the last character of
// the previous line, or stays put on the first line.
func (c *MoveWordBackwardCommand) Execute(s *State) ExecuteResult {
	line := graphemes(s.Line())
	col := min(s.Cursor.Col, len(line)) - 1

	// Skip spaces before the cursor
	for col >= 0 && isSpace(line[col]) {
		col--
	}
	// Walk back to the start of that word
	for col > 0 && !isSpace(line[col-1]) {
		col--
	}

	if col >= 0 {
		s.Cursor.Col = col
		return Executed
	}
	if s.Cursor.Row == 0 {
		return Executed
	}

	s.Cursor.Row--
	s.Cursor.Col = max(s.LineLen()-1, 0)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveWordBackwardCommand) Keys() []Key { return []Key{"b"} }

// Mode returns the mode this command operates in.
func (c *MoveWordBackwardCommand) Mode() Mode { return ModeNavigation }

// ID returns the hierarchical identifier for this command.
func (c *MoveWordBackwardCommand) ID() string { return "move.word_backward" }

// MoveToLineStartCommand moves the cursor to column 0 (0 motion).
type MoveToLineStartCommand struct {
	MotionBase
}

// Execute moves the cursor to the start of the line.
func (c *MoveToLineStartCommand) Execute(s *State) ExecuteResult {
	s.Cursor.Col = 0
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveToLineStartCommand) Keys() []Key { return []Key{"0"} }

// Mode returns the mode this command operates in.
func (c *MoveToLineStartCommand) Mode() Mode { return ModeNavigation }

// ID returns the hierarchical identifier for this command.
func (c *MoveToLineStartCommand) ID() string { return "move.line_start" }

// MoveToLineEndCommand moves the cursor onto the last character ($ motion).
type MoveToLineEndCommand struct {
	MotionBase
}

// Execute moves the cursor to the end of the line.
func (c *MoveToLineEndCommand) Execute(s *State) ExecuteResult {
	s.Cursor.Col = max(s.LineLen()-1, 0)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveToLineEndCommand) Keys() []Key { return []Key{"$"} }

// Mode returns the mode this command operates in.
func (c *MoveToLineEndCommand) Mode() Mode { return ModeNavigation }

// ID returns the hierarchical identifier for this command.
func (c *MoveToLineEndCommand) ID() string { return "move.line_end" }
