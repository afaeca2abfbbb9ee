package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimwizard/internal/config"
	"github.com/zjrosen/vimwizard/internal/journal"
	"github.com/zjrosen/vimwizard/internal/level"
	"github.com/zjrosen/vimwizard/internal/presentation"
	"github.com/zjrosen/vimwizard/internal/testutil"
)

// writeConfig creates a config file whose journal lives in the test's temp dir.
func writeConfig(t *testing.T, extra string) (configPath, journalPath string) {
	t.Helper()
	dir := t.TempDir()
	configPath = filepath.Join(dir, "config.yaml")
	journalPath = filepath.Join(dir, "journal.db")
	body := "journal:\n  enabled: true\n  path: " + journalPath + "\n" + extra
	require.NoError(t, os.WriteFile(configPath, []byte(body), 0o600))
	return configPath, journalPath
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		cfgFile = ""
		debugFlag = false
		levelsExport = ""
		historyLimit = 20
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInitConfig_ReadsFile(t *testing.T) {
	path, journalPath := writeConfig(t, "topic: Potions\nstart_level: 3\noracle:\n  timeout: 2s\n")
	cfgFile = path
	t.Cleanup(func() { cfgFile = "" })

	initConfig()

	require.Equal(t, "Potions", cfg.Topic)
	require.Equal(t, 3, cfg.StartLevel)
	require.Equal(t, "2s", cfg.Oracle.Timeout.String())
	require.Equal(t, journalPath, cfg.Journal.Path)
	require.True(t, cfg.UI.ShowPreview, "unset keys fall back to defaults")
	require.NoError(t, cfg.Validate())
}

func TestStartIndex(t *testing.T) {
	saved := config.Config{StartLevel: 2, Progress: config.Progress{Level: 6}}
	tests := []struct {
		name   string
		cfg    config.Config
		resume bool
		want   int
	}{
		{"first level", config.Config{StartLevel: 1}, true, 0},
		{"configured start", config.Config{StartLevel: 4}, true, 3},
		{"saved progress wins", saved, true, 5},
		{"resume disabled", saved, false, 1},
		{"zero start clamps", config.Config{}, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, startIndex(tt.cfg, tt.resume))
		})
	}
}

func TestNewOracle_BundledPackByDefault(t *testing.T) {
	orc, pack, err := newOracle(config.Defaults(), nil)
	require.NoError(t, err)
	require.Equal(t, len(level.Builtin()), pack.Len())

	l := orc.Level(context.Background(), orc.TutorialLen())
	require.Equal(t, level.Builtin()[0].Title, l.Title)
	require.Equal(t, orc.TutorialLen()+1, l.ID)
}

func TestNewOracle_Errors(t *testing.T) {
	c := config.Defaults()
	c.LevelPack = filepath.Join(t.TempDir(), "missing.yaml")
	_, _, err := newOracle(c, nil)
	require.ErrorContains(t, err, "loading level pack")

	c = config.Defaults()
	c.Oracle.Script = map[string][]string{"bored": {"yawn"}}
	_, _, err = newOracle(c, nil)
	require.ErrorContains(t, err, "oracle.script")
}

func TestLevelsCommand_ListsTutorialThenPack(t *testing.T) {
	path, _ := writeConfig(t, "")

	out, err := execute(t, "--config", path, "levels")
	require.NoError(t, err)

	var got []presentation.LevelDTO
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, len(level.Tutorial())+len(level.Builtin()))
	require.Equal(t, presentation.SourceTutorial, got[0].Source)
	require.Equal(t, "The Four Directions", got[0].Title)
	last := got[len(got)-1]
	require.Equal(t, presentation.SourcePack, last.Source)
	require.Equal(t, len(got), last.ID)
}

func TestLevelsCommand_ExportRoundTrips(t *testing.T) {
	path, _ := writeConfig(t, "")
	export := filepath.Join(t.TempDir(), "pack.yaml")

	out, err := execute(t, "--config", path, "levels", "--export", export)
	require.NoError(t, err)
	require.Contains(t, out, "Wrote 8 levels")

	levels, err := level.LoadPack(export)
	require.NoError(t, err)
	require.Len(t, levels, 8)
	require.Equal(t, "The Four Directions", levels[0].Title)

	// The exported pack can be played in place of the bundled one.
	path, _ = writeConfig(t, "level_pack: "+export+"\n")
	out, err = execute(t, "--config", path, "levels")
	require.NoError(t, err)
	var got []presentation.LevelDTO
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, len(level.Tutorial())+8)
}

func TestHistoryCommand_Empty(t *testing.T) {
	path, _ := writeConfig(t, "")
	out, err := execute(t, "--config", path, "history")
	require.NoError(t, err)
	require.Equal(t, "[]\n", out)
}

func TestHistoryAndReplay(t *testing.T) {
	path, journalPath := writeConfig(t, "")
	ids := testutil.NewBuilder(t, journalPath).WithStandardAttempts().Build()

	out, err := execute(t, "--config", path, "history", "--limit", "2")
	require.NoError(t, err)
	var attempts []presentation.AttemptDTO
	require.NoError(t, json.Unmarshal([]byte(out), &attempts))
	require.Len(t, attempts, 2)
	require.Equal(t, ids[2], attempts[0].ID)
	require.Equal(t, ids[1], attempts[1].ID)
	require.False(t, attempts[1].Completed)

	out, err = execute(t, "--config", path, "replay", ids[0])
	require.NoError(t, err)
	var replay presentation.ReplayDTO
	require.NoError(t, json.Unmarshal([]byte(out), &replay))
	require.Equal(t, []string{"l", "l", "l", "x"}, replay.Keys)
	require.Equal(t, []string{"Necromancy"}, replay.Lines)
	require.Equal(t, "NORMAL", replay.Mode)
	require.True(t, replay.Attempt.Completed)
	require.Equal(t, 4, replay.Attempt.Keystrokes)
}

func TestReplayCommand_UnknownAttempt(t *testing.T) {
	path, _ := writeConfig(t, "")
	_, err := execute(t, "--config", path, "replay", "nope")
	require.ErrorIs(t, err, journal.ErrAttemptNotFound)
}
