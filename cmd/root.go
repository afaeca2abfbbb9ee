package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/vimwizard/internal/app"
	"github.com/zjrosen/vimwizard/internal/config"
	"github.com/zjrosen/vimwizard/internal/flags"
	"github.com/zjrosen/vimwizard/internal/game"
	"github.com/zjrosen/vimwizard/internal/log"
	"github.com/zjrosen/vimwizard/internal/pubsub"
	"github.com/zjrosen/vimwizard/internal/tracing"
	"github.com/zjrosen/vimwizard/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in the editor.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const localConfigPath = ".vimwizard/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vimwizard",
	Short: "Learn vim motions from a grumpy wizard",
	Long: `vimwizard is a terminal game that teaches modal editing. Each trial gives you a
scroll of text, a goal and a handful of permitted keys. Reach the goal and the wizard
grudgingly lets you move on.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/vimwizard/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write a debug log (also VIMWIZARD_DEBUG=1)")
	rootCmd.Flags().IntP("level", "l", 0, "level to start at (1-based, overrides saved progress)")
	rootCmd.Flags().StringP("topic", "t", "", "subject generated levels are themed on")
	rootCmd.Flags().StringP("pack", "p", "", "YAML level pack to play after the tutorial")
}

func initConfig() {
	viper.Reset()

	defaults := config.Defaults()
	viper.SetDefault("topic", defaults.Topic)
	viper.SetDefault("start_level", defaults.StartLevel)
	viper.SetDefault("ui.show_preview", defaults.UI.ShowPreview)
	viper.SetDefault("ui.show_hints", defaults.UI.ShowHints)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("oracle.timeout", defaults.Oracle.Timeout)
	viper.SetDefault("oracle.cache_ttl", defaults.Oracle.CacheTTL)
	viper.SetDefault("journal.enabled", defaults.Journal.Enabled)
	viper.SetDefault("journal.path", defaults.Journal.Path)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.file_path", defaults.Tracing.FilePath)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	// Bind flags to viper
	_ = viper.BindPFlag("topic", rootCmd.Flags().Lookup("topic"))
	_ = viper.BindPFlag("level_pack", rootCmd.Flags().Lookup("pack"))

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .vimwizard/config.yaml (current directory)
		// 2. ~/.config/vimwizard/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "vimwizard"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at ~/.config/vimwizard/config.yaml
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if defaultPath := userConfigPath(); defaultPath != "" {
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	cfg = config.Config{}
	_ = viper.Unmarshal(&cfg)
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vimwizard", "config.yaml")
}

// initLogging enables the debug log when requested by flag or environment.
func initLogging(prefix string) (func(), error) {
	if os.Getenv("VIMWIZARD_DEBUG") == "" && !debugFlag {
		return func() {}, nil
	}
	logPath := os.Getenv("VIMWIZARD_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}
	cleanup, err := log.InitWithTeaLog(logPath, prefix)
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	log.Info(log.CatConfig, "vimwizard starting", "debug", true, "logPath", logPath, "version", version)
	return cleanup, nil
}

func runApp(cmd *cobra.Command, _ []string) error {
	cleanupLog, err := initLogging("vimwizard")
	if err != nil {
		return err
	}
	defer cleanupLog()

	if cmd.Flags().Changed("level") {
		cfg.StartLevel, _ = cmd.Flags().GetInt("level")
		cfg.Progress.Level = 0
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	featureFlags := flags.New(cfg.Flags)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			log.ErrorErr(log.CatTrace, "tracing shutdown failed", err)
		}
	}()

	orc, pack, err := newOracle(cfg, provider.Tracer())
	if err != nil {
		return err
	}

	events := pubsub.NewBroker[game.Snapshot]()
	defer events.Close()
	sessionOpts := []game.Option{
		game.WithPublisher(events),
		game.WithScore(cfg.Progress.Score),
	}

	if cfg.Journal.Enabled {
		j, err := openJournal(ctx, cfg, provider.Tracer())
		if err != nil {
			return err
		}
		defer func() { _ = j.Close() }()
		sessionOpts = append(sessionOpts, game.WithRecorder(j))
	}

	opts := app.Options{
		Oracle:     orc,
		Session:    game.NewSession(sessionOpts...),
		Events:     events,
		Config:     cfg,
		Flags:      featureFlags,
		ConfigPath: viper.ConfigFileUsed(),
		StartIndex: startIndex(cfg, featureFlags.Enabled(flags.FlagResumeProgress)),
		DebugMode:  os.Getenv("VIMWIZARD_DEBUG") != "" || debugFlag,
	}

	if cfg.WatchPack && pack != nil {
		w, err := watcher.New(watcher.DefaultConfig(cfg.LevelPack))
		if err != nil {
			return fmt.Errorf("watching level pack: %w", err)
		}
		changes, err := w.Start()
		if err != nil {
			return fmt.Errorf("watching level pack: %w", err)
		}
		defer func() { _ = w.Stop() }()
		opts.Pack = pack
		opts.PackChanges = changes
	}

	zone.NewGlobal()
	p := tea.NewProgram(
		app.New(ctx, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// startIndex picks the 0-based level to open: saved progress wins over start_level when
// resuming.
func startIndex(c config.Config, resume bool) int {
	if resume && c.Progress.Level > 0 {
		return c.Progress.Level - 1
	}
	return max(0, c.StartLevel-1)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
