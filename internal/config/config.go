// Package config provides configuration types and defaults for vimwizard.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/vimwizard/internal/log"
	"github.com/zjrosen/vimwizard/internal/oracle"
	"github.com/zjrosen/vimwizard/internal/tracing"
)

// Config holds all configuration options for vimwizard.
type Config struct {
	// Topic is the subject generated levels are themed on.
	Topic string `mapstructure:"topic"`
	// LevelPack is a YAML level pack serving the levels after the tutorial.
	LevelPack string `mapstructure:"level_pack"`
	// WatchPack reloads the level pack when the file changes.
	WatchPack bool `mapstructure:"watch_pack"`
	// StartLevel is the 1-based level to open with.
	StartLevel int            `mapstructure:"start_level"`
	UI         UIConfig       `mapstructure:"ui"`
	Oracle     OracleConfig   `mapstructure:"oracle"`
	Journal    JournalConfig  `mapstructure:"journal"`
	Tracing    tracing.Config `mapstructure:"tracing"`
	Progress   Progress       `mapstructure:"progress"`
	// Flags overrides feature flags by name; see package flags for the known names.
	Flags map[string]bool `mapstructure:"flags"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowPreview   bool   `mapstructure:"show_preview"`    // Diff of the buffer against the target text
	ShowHints     bool   `mapstructure:"show_hints"`      // Level hints under the description
	ShowStatusBar bool   `mapstructure:"show_status_bar"` // Mode, counts, allowed keys, cursor position
	MarkdownStyle string `mapstructure:"markdown_style"`  // "dark" (default) or "light"
}

// OracleConfig bounds the level and dialogue services.
type OracleConfig struct {
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"` // 0 disables the level cache
	// Script overrides the wizard's canned lines per emotion.
	Script map[string][]string `mapstructure:"script"`
}

// JournalConfig holds attempt journal settings.
type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Progress is what the game remembers between runs.
type Progress struct {
	Level int `mapstructure:"level" yaml:"level"` // 1-based level reached
	Score int `mapstructure:"score" yaml:"score"`
}

// DefaultJournalPath returns the default location of the attempt journal.
func DefaultJournalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vimwizard", "journal.db")
}

// DefaultTracesFilePath returns the default path for trace files.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vimwizard", "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	tc := tracing.DefaultConfig()
	tc.FilePath = DefaultTracesFilePath()

	return Config{
		Topic:      oracle.DefaultTopic,
		StartLevel: 1,
		UI: UIConfig{
			ShowPreview:   true,
			ShowHints:     true,
			ShowStatusBar: true,
			MarkdownStyle: "dark",
		},
		Oracle: OracleConfig{
			Timeout:  oracle.DefaultTimeout,
			CacheTTL: oracle.DefaultCacheTTL,
		},
		Journal: JournalConfig{
			Enabled: true,
			Path:    DefaultJournalPath(),
		},
		Tracing: tc,
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.StartLevel < 1 {
		return fmt.Errorf("start_level must be at least 1, got %d", c.StartLevel)
	}
	if c.WatchPack && c.LevelPack == "" {
		return fmt.Errorf("watch_pack requires level_pack")
	}
	switch c.UI.MarkdownStyle {
	case "", "dark", "light":
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", c.UI.MarkdownStyle)
	}
	if c.Oracle.Timeout < 0 {
		return fmt.Errorf("oracle.timeout must not be negative, got %s", c.Oracle.Timeout)
	}
	if c.Oracle.CacheTTL < 0 {
		return fmt.Errorf("oracle.cache_ttl must not be negative, got %s", c.Oracle.CacheTTL)
	}
	if _, err := c.Oracle.Emotions(); err != nil {
		return err
	}
	if c.Journal.Enabled && c.Journal.Path == "" {
		return fmt.Errorf("journal.path is required when the journal is enabled")
	}
	if err := c.Tracing.Validate(); err != nil {
		return err
	}
	return nil
}

// Emotions converts the configured script to dialogue lines keyed by emotion. It returns nil
// when no script is configured.
func (o OracleConfig) Emotions() (map[oracle.Emotion][]string, error) {
	if len(o.Script) == 0 {
		return nil, nil
	}
	script := make(map[oracle.Emotion][]string, len(oracle.Emotions))
	for _, e := range oracle.Emotions {
		script[e] = oracle.DefaultScript[e]
	}
	for name, lines := range o.Script {
		e, err := oracle.ParseEmotion(name)
		if err != nil {
			return nil, fmt.Errorf("oracle.script: %w", err)
		}
		script[e] = lines
	}
	return script, nil
}

// DefaultConfigTemplate returns the default config as a commented YAML string.
func DefaultConfigTemplate() string {
	return `# vimwizard configuration

# Subject the wizard themes generated levels on
topic: "Refactoring Necromancy Code"

# YAML level pack serving the levels after the tutorial
# level_pack: ~/.config/vimwizard/levels.yaml
# watch_pack: true       # Reload the pack when the file changes

# Level to open with (1-based)
start_level: 1

ui:
  show_preview: true     # Diff of the buffer against the target text
  show_hints: true       # Level hints under the description
  show_status_bar: true  # Mode, counts, allowed keys, cursor position
  markdown_style: dark   # Cheat sheet style: dark or light

oracle:
  timeout: 10s           # Give up on a level or remark after this long
  cache_ttl: 30m         # Keep generated levels this long (0 disables)
  # Override the wizard's lines per emotion (neutral, happy, angry, casting, impressed)
  # script:
  #   happy:
  #     - "The runes align."

# Every attempt is journaled so it can be listed and replayed
journal:
  enabled: true
  # path: ~/.config/vimwizard/journal.db

# Feature flags (all on by default)
# flags:
#   mouse-remarks: true    # The wizard scolds clicks on the editor
#   victory-remarks: true  # A fresh remark after each generated level is won
#   resume-progress: true  # Start at the saved level instead of start_level
#   save-progress: true    # Write the level reached and the score to this file

# Tracing around level generation, remarks and the journal
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/vimwizard/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
