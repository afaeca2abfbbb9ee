package level

import (
	"fmt"
	"slices"

	"github.com/zjrosen/vimwizard/internal/engine"
)

// Goal is the win condition of a level. It is either ExactText or CursorAt.
type Goal interface {
	// Satisfied reports whether the buffer and cursor meet the goal.
	Satisfied(lines []string, cursor engine.Cursor) bool
	// String describes the goal for the player.
	String() string
}

// ExactText is won when the buffer equals Lines exactly.
type ExactText struct {
	Lines []string
}

// Satisfied compares the buffer line by line.
func (g ExactText) Satisfied(lines []string, _ engine.Cursor) bool {
	return slices.Equal(lines, g.Lines)
}

func (g ExactText) String() string {
	return fmt.Sprintf("make the text match (%d lines)", len(g.Lines))
}

// CursorAt is won when Predicate holds for the buffer and cursor.
type CursorAt struct {
	Predicate   func(lines []string, cursor engine.Cursor) bool
	Description string

	// set by CursorAtPosition so the goal can be written back to a pack
	row, col int
	fixed    bool
}

// Satisfied evaluates the predicate. A nil predicate is never satisfied.
func (g CursorAt) Satisfied(lines []string, cursor engine.Cursor) bool {
	if g.Predicate == nil {
		return false
	}
	return g.Predicate(lines, cursor)
}

func (g CursorAt) String() string {
	return g.Description
}

// CursorAtPosition returns a goal met when the cursor rests on row, col.
func CursorAtPosition(row, col int) CursorAt {
	return CursorAt{
		Predicate: func(_ []string, c engine.Cursor) bool {
			return c.Row == row && c.Col == col
		},
		Description: fmt.Sprintf("move the cursor to line %d, column %d", row+1, col+1),
		row:         row,
		col:         col,
		fixed:       true,
	}
}

func (g CursorAt) position() (row, col int, ok bool) {
	return g.row, g.col, g.fixed
}

// Target returns the goal text of an ExactText goal.
func Target(g Goal) ([]string, bool) {
	t, ok := g.(ExactText)
	if !ok {
		return nil, false
	}
	return t.Lines, true
}
