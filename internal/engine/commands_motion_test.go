package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// h / l
// ============================================================================

func TestMoveLeftCommand_Execute(t *testing.T) {
	s := newTestState(0, 3, "hello")

	result := (&MoveLeftCommand{}).Execute(s)

	require.Equal(t, Executed, result)
	require.Equal(t, 2, s.Cursor.Col)
}

func TestMoveLeftCommand_FlooredAtZero(t *testing.T) {
	s := newTestState(0, 0, "hello")

	(&MoveLeftCommand{}).Execute(s)

	require.Equal(t, 0, s.Cursor.Col)
}

func TestMoveRightCommand_StopsOnLastCharacter(t *testing.T) {
	s := newTestState(0, 4, "hello")

	(&MoveRightCommand{}).Execute(s)

	require.Equal(t, 4, s.Cursor.Col)
}

func TestMoveRightCommand_EmptyLine(t *testing.T) {
	s := newTestState(0, 0, "")

	(&MoveRightCommand{}).Execute(s)

	require.Equal(t, 0, s.Cursor.Col, "empty line keeps column at 0")
}

func TestMoveRightCommand_Grapheme(t *testing.T) {
	// "e" + combining acute is one column
	s := newTestState(0, 0, "he\u0301y")

	(&MoveRightCommand{}).Execute(s)
	(&MoveRightCommand{}).Execute(s)
	(&MoveRightCommand{}).Execute(s)

	require.Equal(t, 2, s.Cursor.Col)
}

// ============================================================================
// j / k
// ============================================================================

func TestMoveDownCommand_ClampsColumnToShorterLine(t *testing.T) {
	s := newTestState(0, 8, "long line here", "short")

	(&MoveDownCommand{}).Execute(s)

	require.Equal(t, Cursor{Row: 1, Col: 4}, s.Cursor)
}

func TestMoveDownCommand_EmptyTargetLine(t *testing.T) {
	s := newTestState(0, 3, "hello", "")

	(&MoveDownCommand{}).Execute(s)

	require.Equal(t, Cursor{Row: 1, Col: 0}, s.Cursor)
}

func TestMoveDownCommand_StopsAtLastRow(t *testing.T) {
	s := newTestState(1, 2, "abc", "def")

	(&MoveDownCommand{}).Execute(s)

	require.Equal(t, Cursor{Row: 1, Col: 2}, s.Cursor)
}

func TestMoveUpCommand_ClampsColumn(t *testing.T) {
	s := newTestState(1, 6, "ab", "abcdefg")

	(&MoveUpCommand{}).Execute(s)

	require.Equal(t, Cursor{Row: 0, Col: 1}, s.Cursor)
}

func TestMoveUpCommand_StopsAtFirstRow(t *testing.T) {
	s := newTestState(0, 1, "abc")

	(&MoveUpCommand{}).Execute(s)

	require.Equal(t, Cursor{Row: 0, Col: 1}, s.Cursor)
}

// ============================================================================
// w
// ============================================================================

func TestMoveWordForwardCommand(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		start    Cursor
		expected Cursor
	}{
		{"start of next word", []string{"one two three"}, Cursor{0, 0}, Cursor{0, 4}},
		{"from middle of word", []string{"one two three"}, Cursor{0, 5}, Cursor{0, 8}},
		{"from a space", []string{"a  b"}, Cursor{0, 1}, Cursor{0, 3}},
		{"multiple spaces", []string{"one   two"}, Cursor{0, 0}, Cursor{0, 6}},
		{"punctuation is not a boundary", []string{"foo.bar baz"}, Cursor{0, 0}, Cursor{0, 8}},
		{"wraps to next line", []string{"one", "two"}, Cursor{0, 0}, Cursor{1, 0}},
		{"skips leading spaces on next line", []string{"last", "   next"}, Cursor{0, 1}, Cursor{1, 3}},
		{"last word wraps", []string{"one two", "x"}, Cursor{0, 4}, Cursor{1, 0}},
		{"stays on last line", []string{"one two"}, Cursor{0, 5}, Cursor{0, 5}},
		{"empty next line", []string{"abc", ""}, Cursor{0, 0}, Cursor{1, 0}},
		{"all-space next line rests on last char", []string{"abc", "   "}, Cursor{0, 0}, Cursor{1, 2}},
		{"trailing spaces wrap", []string{"abc   ", "def"}, Cursor{0, 0}, Cursor{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(tt.start.Row, tt.start.Col, tt.lines...)

			result := (&MoveWordForwardCommand{}).Execute(s)

			require.Equal(t, Executed, result)
			require.Equal(t, tt.expected, s.Cursor)
		})
	}
}

// ============================================================================
// b
// ============================================================================

func TestMoveWordBackwardCommand(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		start    Cursor
		expected Cursor
	}{
		{"start of previous word", []string{"one two three"}, Cursor{0, 8}, Cursor{0, 4}},
		{"start of current word", []string{"one two three"}, Cursor{0, 6}, Cursor{0, 4}},
		{"from second char of first word", []string{"one two"}, Cursor{0, 1}, Cursor{0, 0}},
		{"across multiple spaces", []string{"one   two"}, Cursor{0, 6}, Cursor{0, 0}},
		{"column 0 of later line", []string{"abc def", "ghi"}, Cursor{1, 0}, Cursor{0, 6}},
		{"column 0 of later line after empty line", []string{"", "ghi"}, Cursor{1, 0}, Cursor{0, 0}},
		{"column 0 of first line stays", []string{"abc"}, Cursor{0, 0}, Cursor{0, 0}},
		{"leading spaces underflow to previous line", []string{"abc", "   x"}, Cursor{1, 3}, Cursor{0, 2}},
		{"all-space first line stays", []string{"    "}, Cursor{0, 2}, Cursor{0, 2}},
		{"all-space later line goes up", []string{"ab", "    "}, Cursor{1, 3}, Cursor{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(tt.start.Row, tt.start.Col, tt.lines...)

			result := (&MoveWordBackwardCommand{}).Execute(s)

			require.Equal(t, Executed, result)
			require.Equal(t, tt.expected, s.Cursor)
		})
	}
}

// ============================================================================
// 0 / $
// ============================================================================

func TestMoveToLineStartCommand(t *testing.T) {
	s := newTestState(0, 4, "hello")

	(&MoveToLineStartCommand{}).Execute(s)

	require.Equal(t, 0, s.Cursor.Col)
}

func TestMoveToLineEndCommand(t *testing.T) {
	s := newTestState(0, 0, "hello")

	(&MoveToLineEndCommand{}).Execute(s)

	require.Equal(t, 4, s.Cursor.Col)
}

func TestMoveToLineEndCommand_EmptyLine(t *testing.T) {
	s := newTestState(0, 0, "")

	(&MoveToLineEndCommand{}).Execute(s)

	require.Equal(t, 0, s.Cursor.Col)
}

func TestMotionCommands_Metadata(t *testing.T) {
	tests := []struct {
		cmd Command
		key Key
		id  string
	}{
		{&MoveLeftCommand{}, "h", "move.left"},
		{&MoveRightCommand{}, "l", "move.right"},
		{&MoveDownCommand{}, "j", "move.down"},
		{&MoveUpCommand{}, "k", "move.up"},
		{&MoveWordForwardCommand{}, "w", "move.word_forward"},
		{&MoveWordBackwardCommand{}, "b", "move.word_backward"},
		{&MoveToLineStartCommand{}, "0", "move.line_start"},
		{&MoveToLineEndCommand{}, "$", "move.line_end"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			require.Equal(t, []Key{tt.key}, tt.cmd.Keys())
			require.Equal(t, ModeNavigation, tt.cmd.Mode())
			require.Equal(t, tt.id, tt.cmd.ID())
			require.False(t, tt.cmd.ChangesContent())
			require.False(t, tt.cmd.IsModeChange())
			require.True(t, tt.cmd.Filtered())
		})
	}
}
