package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimwizard/internal/engine"
)

func TestBuilder_StandardAttempts(t *testing.T) {
	path := NewJournalPath(t)
	ids := NewBuilder(t, path).WithStandardAttempts().Build()
	require.Len(t, ids, 3)

	j := OpenJournal(t, path)
	ctx := context.Background()

	attempts, err := j.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, attempts, 3)
	require.Equal(t, ids[2], attempts[0].ID, "newest first")
	require.Equal(t, BaseTime.Add(2*time.Minute), attempts[0].StartedAt.UTC())

	won, err := j.Get(ctx, ids[0])
	require.NoError(t, err)
	require.True(t, won.Completed())
	require.Equal(t, 4, won.Keystrokes)

	abandoned, err := j.Get(ctx, ids[1])
	require.NoError(t, err)
	require.False(t, abandoned.Completed())

	final, err := j.Replay(ctx, ids[1], engine.New())
	require.NoError(t, err)
	require.Equal(t, []string{"Ncrromancy"}, final.Lines, "the sealed i is skipped")
}

func TestBuilder_StartedAt(t *testing.T) {
	path := NewJournalPath(t)
	at := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	ids := NewBuilder(t, path).WithAttempt(TypoLevel(), StartedAt(at)).Build()

	a, err := OpenJournal(t, path).Get(context.Background(), ids[0])
	require.NoError(t, err)
	require.Equal(t, at, a.StartedAt.UTC())
	require.Zero(t, a.Keystrokes)
}

func TestParseKeystroke(t *testing.T) {
	tests := []struct {
		in   string
		want engine.Keystroke
	}{
		{"x", engine.Keystroke{Key: "x"}},
		{"Escape", engine.Keystroke{Key: engine.KeyEscape}},
		{"ctrl+w", engine.Keystroke{Key: "w", Mods: engine.Modifiers{Ctrl: true}}},
		{"ctrl+alt+x", engine.Keystroke{Key: "x", Mods: engine.Modifiers{Ctrl: true, Alt: true}}},
		{"meta+a", engine.Keystroke{Key: "a", Mods: engine.Modifiers{Meta: true}}},
		{"+", engine.Keystroke{Key: "+"}},
		{"ctrl++", engine.Keystroke{Key: "+", Mods: engine.Modifiers{Ctrl: true}}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, ParseKeystroke(tt.in))
		})
	}
}
