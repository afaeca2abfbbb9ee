package engine

// newTestState creates a navigation-mode state with the given lines and cursor.
func newTestState(row, col int, lines ...string) *State {
	if len(lines) == 0 {
		lines = []string{""}
	}
	return &State{
		Lines:  lines,
		Cursor: Cursor{Row: row, Col: col},
		Mode:   ModeNavigation,
	}
}

// newInsertState creates an insertion-mode state with the given lines and cursor.
func newInsertState(row, col int, lines ...string) *State {
	s := newTestState(row, col, lines...)
	s.Mode = ModeInsertion
	return s
}

// press applies keys in order with no modifiers and no filter.
func press(s State, keys ...Key) State {
	for _, k := range keys {
		s = ApplyKey(s, k, Modifiers{}, nil)
	}
	return s
}
