package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimwizard/internal/engine"
)

const samplePack = `
levels:
  - title: Banish the typo
    description: Remove the stray letter.
    start: ["Necrromancy"]
    goal:
      lines: ["Necromancy"]
    allowed_keys: [h, l, x]
    hints: ["x deletes"]
    intro: "A typo festers."
    success: "Clean."
  - start: ["..", "..*"]
    goal:
      cursor: { row: 1, col: 2 }
`

func TestParsePack(t *testing.T) {
	levels, err := ParsePack([]byte(samplePack))
	require.NoError(t, err)
	require.Len(t, levels, 2)

	first := levels[0]
	require.Equal(t, 1, first.ID)
	require.Equal(t, "Banish the typo", first.Title)
	require.Equal(t, []string{"h", "l", "x"}, first.AllowedKeys)
	require.Equal(t, ExactText{Lines: []string{"Necromancy"}}, first.Goal)

	second := levels[1]
	require.Equal(t, 2, second.ID)
	require.Equal(t, "Level 2", second.Title)
	require.Equal(t, DefaultAllowedKeys, second.AllowedKeys)
	require.True(t, second.Goal.Satisfied(second.Start, engine.Cursor{Row: 1, Col: 2}))
}

func TestParsePack_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "levels: [\n"},
		{"no levels", "levels: []\n"},
		{"no goal", "levels:\n  - start: [a]\n"},
		{"both goals", "levels:\n  - start: [a]\n    goal: {lines: [b], cursor: {row: 0, col: 0}}\n"},
		{"already solved", "levels:\n  - start: [a]\n    goal: {lines: [a]}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePack([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestLoadPack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(samplePack), 0o600))

	levels, err := LoadPack(path)
	require.NoError(t, err)
	require.Len(t, levels, 2)
}

func TestLoadPack_MissingFile(t *testing.T) {
	_, err := LoadPack(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalPack_RoundTripsTutorial(t *testing.T) {
	data, err := MarshalPack(Tutorial())
	require.NoError(t, err)

	levels, err := ParsePack(data)
	require.NoError(t, err)
	require.Len(t, levels, 3)

	for i, want := range Tutorial() {
		got := levels[i]
		require.Equal(t, want.Title, got.Title)
		require.Equal(t, want.Start, got.Start)
		require.Equal(t, want.AllowedKeys, got.AllowedKeys)
		require.Equal(t, want.Intro, got.Intro)
	}
	require.True(t, levels[0].Goal.Satisfied(nil, engine.Cursor{Row: 2, Col: 5}))
}

func TestMarshalPack_RejectsOpaquePredicate(t *testing.T) {
	_, err := MarshalPack([]Level{{
		Title: "opaque",
		Start: []string{"a"},
		Goal:  CursorAt{Predicate: func([]string, engine.Cursor) bool { return true }},
	}})
	require.Error(t, err)
}
