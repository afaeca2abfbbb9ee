package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnterInsertModeCommand_KeepsColumn(t *testing.T) {
	s := newTestState(0, 2, "abc")

	result := (&EnterInsertModeCommand{}).Execute(s)

	require.Equal(t, Executed, result)
	require.Equal(t, ModeInsertion, s.Mode)
	require.Equal(t, 2, s.Cursor.Col)
}

func TestEnterInsertModeAfterCommand(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		col      int
		expected int
	}{
		{"middle", "abc", 1, 2},
		{"last character allows one past end", "abc", 2, 3},
		{"empty line", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(0, tt.col, tt.line)

			(&EnterInsertModeAfterCommand{}).Execute(s)

			require.Equal(t, ModeInsertion, s.Mode)
			require.Equal(t, tt.expected, s.Cursor.Col)
		})
	}
}

func TestEscapeCommand_StepsBack(t *testing.T) {
	s := newInsertState(0, 3, "abc")

	result := (&EscapeCommand{}).Execute(s)

	require.Equal(t, Executed, result)
	require.Equal(t, ModeNavigation, s.Mode)
	require.Equal(t, 2, s.Cursor.Col)
}

func TestEscapeCommand_FlooredAtZero(t *testing.T) {
	s := newInsertState(0, 0, "abc")

	(&EscapeCommand{}).Execute(s)

	require.Equal(t, ModeNavigation, s.Mode)
	require.Equal(t, 0, s.Cursor.Col)
}

func TestModeCommands_Metadata(t *testing.T) {
	tests := []struct {
		cmd      Command
		key      Key
		mode     Mode
		id       string
		filtered bool
	}{
		{&EnterInsertModeCommand{}, "i", ModeNavigation, "mode.insert", true},
		{&EnterInsertModeAfterCommand{}, "a", ModeNavigation, "mode.insert_after", true},
		{&EscapeCommand{}, KeyEscape, ModeInsertion, "mode.navigation", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			require.Equal(t, []Key{tt.key}, tt.cmd.Keys())
			require.Equal(t, tt.mode, tt.cmd.Mode())
			require.Equal(t, tt.id, tt.cmd.ID())
			require.False(t, tt.cmd.ChangesContent())
			require.True(t, tt.cmd.IsModeChange())
			require.Equal(t, tt.filtered, tt.cmd.Filtered())
		})
	}
}

func TestMode_String(t *testing.T) {
	require.Equal(t, "NORMAL", ModeNavigation.String())
	require.Equal(t, "INSERT", ModeInsertion.String())
	require.Equal(t, "VISUAL", ModeSelection.String())
}
