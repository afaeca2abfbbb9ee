package engine

// Cursor is a position in the buffer. Col counts grapheme clusters.
type Cursor struct {
	Row int
	Col int
}

// State is the buffer/cursor/mode triple the engine advances.
type State struct {
	Lines  []string
	Cursor Cursor
	Mode   Mode
}

// NewState returns the state a level starts from: the given lines, the cursor at the origin
// and Navigation mode. The lines are copied.
func NewState(lines []string) State {
	return State{
		Lines:  cloneLines(lines),
		Cursor: Cursor{},
		Mode:   ModeNavigation,
	}
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	s.Lines = cloneLines(s.Lines)
	return s
}

// Line returns the line under the cursor.
func (s *State) Line() string {
	return s.Lines[s.Cursor.Row]
}

// LineLen returns the grapheme length of the line under the cursor.
func (s *State) LineLen() int {
	return GraphemeCount(s.Lines[s.Cursor.Row])
}

// MaxCol returns the largest column valid for the current mode on the current line.
func (s *State) MaxCol() int {
	return maxColFor(s.Mode, s.LineLen())
}

// Valid reports whether the state satisfies the buffer and cursor invariants for its mode.
func (s State) Valid() bool {
	if len(s.Lines) == 0 {
		return false
	}
	if s.Cursor.Row < 0 || s.Cursor.Row >= len(s.Lines) {
		return false
	}
	return s.Cursor.Col >= 0 && s.Cursor.Col <= s.MaxCol()
}

// CharCount returns the number of characters in the buffer, excluding line breaks.
func (s State) CharCount() int {
	n := 0
	for _, line := range s.Lines {
		n += GraphemeCount(line)
	}
	return n
}

// normalize resolves out-of-range input by clamping. Columns are clamped to the insertion
// bound so a valid state in either mode passes through unchanged.
func (s *State) normalize() {
	if len(s.Lines) == 0 {
		s.Lines = []string{""}
	}
	s.Cursor.Row = clamp(s.Cursor.Row, 0, len(s.Lines)-1)
	s.Cursor.Col = clamp(s.Cursor.Col, 0, s.LineLen())
}

// clampCol pulls the column back into the valid range for the current mode and line.
func (s *State) clampCol() {
	s.Cursor.Col = clamp(s.Cursor.Col, 0, s.MaxCol())
}

func maxColFor(mode Mode, lineLen int) int {
	if mode == ModeInsertion {
		return lineLen
	}
	return max(lineLen-1, 0)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func cloneLines(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}
