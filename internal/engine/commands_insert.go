package engine

// ============================================================================
// Insertion Mode Commands
// ============================================================================

// InsertTextCommand inserts one printable character at the cursor.
// It is built per keystroke rather than registered, since any printable key triggers it.
type InsertTextCommand struct {
	InsertBase
	text string
}

// Execute inserts the text and advances the cursor past it.
func (c *InsertTextCommand) Execute(s *State) ExecuteResult {
	row := s.Cursor.Row
	s.Lines[row] = InsertAtGrapheme(s.Lines[row], s.Cursor.Col, c.text)
	s.Cursor.Col += GraphemeCount(c.text)
	return Executed
}

// Keys returns nil; the command is dispatched as the insertion-mode fallback.
func (c *InsertTextCommand) Keys() []Key { return nil }

// Mode returns the mode this command operates in.
func (c *InsertTextCommand) Mode() Mode { return ModeInsertion }

// ID returns the hierarchical identifier for this command.
func (c *InsertTextCommand) ID() string { return "insert.text" }

// BackspaceCommand deletes the character before the cursor. At column 0 it does nothing:
// lines are never joined.
type BackspaceCommand struct {
	InsertBase
}

// Execute deletes the previous character.
func (c *BackspaceCommand) Execute(s *State) ExecuteResult {
	if s.Cursor.Col == 0 {
		return Skipped
	}
	row := s.Cursor.Row
	s.Lines[row] = DeleteGraphemeRange(s.Lines[row], s.Cursor.Col-1, s.Cursor.Col)
	s.Cursor.Col--
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *BackspaceCommand) Keys() []Key { return []Key{KeyBackspace} }

// Mode returns the mode this command operates in.
func (c *BackspaceCommand) Mode() Mode { return ModeInsertion }

// ID returns the hierarchical identifier for this command.
func (c *BackspaceCommand) ID() string { return "delete.backspace" }

// SplitLineCommand splits the current line at the cursor (Enter in insertion mode).
// Text before the cursor stays; the rest becomes a new line below, and the cursor moves to
// its start.
type SplitLineCommand struct {
	InsertBase
}

// Execute splits the line.
func (c *SplitLineCommand) Execute(s *State) ExecuteResult {
	row := s.Cursor.Row
	line := s.Lines[row]
	split := GraphemeToByteOffset(line, s.Cursor.Col)
	before, after := line[:split], line[split:]

	lines := make([]string, 0, len(s.Lines)+1)
	lines = append(lines, s.Lines[:row]...)
	lines = append(lines, before, after)
	lines = append(lines, s.Lines[row+1:]...)

	s.Lines = lines
	s.Cursor = Cursor{Row: row + 1, Col: 0}
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *SplitLineCommand) Keys() []Key { return []Key{KeyEnter} }

// Mode returns the mode this command operates in.
func (c *SplitLineCommand) Mode() Mode { return ModeInsertion }

// ID returns the hierarchical identifier for this command.
func (c *SplitLineCommand) ID() string { return "insert.split_line" }
