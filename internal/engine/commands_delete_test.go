package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeleteCharCommand_Execute(t *testing.T) {
	tests := []struct {
		name          string
		line          string
		col           int
		expectedLine  string
		expectedCol   int
		expectedState ExecuteResult
	}{
		{"middle", "Remgove", 3, "Remove", 3, Executed},
		{"first character", "abc", 0, "bc", 0, Executed},
		{"last character pulls cursor back", "abc", 2, "ab", 1, Executed},
		{"only character", "a", 0, "", 0, Executed},
		{"empty line", "", 0, "", 0, Skipped},
		{"past end clamps without deleting", "abc", 3, "abc", 2, Executed},
		{"combining mark removed with base", "ae\u0301b", 1, "ab", 1, Executed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(0, tt.col, tt.line)

			result := (&DeleteCharCommand{}).Execute(s)

			require.Equal(t, tt.expectedState, result)
			require.Equal(t, []string{tt.expectedLine}, s.Lines)
			require.Equal(t, tt.expectedCol, s.Cursor.Col)
		})
	}
}

func TestDeleteCharCommand_OnlyTouchesCurrentLine(t *testing.T) {
	s := newTestState(1, 0, "keep", "xdrop", "keep")

	(&DeleteCharCommand{}).Execute(s)

	require.Equal(t, []string{"keep", "drop", "keep"}, s.Lines)
}

func TestDeleteCharCommand_Metadata(t *testing.T) {
	cmd := &DeleteCharCommand{}
	require.Equal(t, []Key{"x"}, cmd.Keys())
	require.Equal(t, ModeNavigation, cmd.Mode())
	require.Equal(t, "delete.char", cmd.ID())
	require.True(t, cmd.ChangesContent())
	require.False(t, cmd.IsModeChange())
	require.True(t, cmd.Filtered())
}
