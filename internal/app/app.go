// Package app contains the root application model: the terminal shell around a game
// session. It turns key presses into engine keystrokes, fetches levels and remarks off the
// update loop and renders the buffer, the wizard and the target preview.
package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/vimwizard/internal/config"
	"github.com/zjrosen/vimwizard/internal/engine"
	"github.com/zjrosen/vimwizard/internal/flags"
	"github.com/zjrosen/vimwizard/internal/game"
	"github.com/zjrosen/vimwizard/internal/keys"
	"github.com/zjrosen/vimwizard/internal/log"
	"github.com/zjrosen/vimwizard/internal/markdown"
	"github.com/zjrosen/vimwizard/internal/oracle"
	"github.com/zjrosen/vimwizard/internal/pubsub"
)

// Zone IDs for mouse hit testing.
const (
	zoneEditor = "editor"
	zoneReset  = "btn-reset"
	zoneNext   = "btn-next"
	zoneSheet  = "btn-sheet"
)

// MouseSituation is reported to the dialogue service when the player clicks the editor.
const MouseSituation = "The student reached for the mouse instead of the keys."

// Options wires the model to its services.
type Options struct {
	Oracle  *oracle.Oracle
	Session *game.Session
	// Events is the broker the session publishes to. Optional.
	Events  *pubsub.Broker[game.Snapshot]
	Config  config.Config
	// Flags toggles optional behaviour. Nil disables every flag.
	Flags   *flags.Registry

	// ConfigPath is where progress is saved. Empty disables saving.
	ConfigPath string
	// StartIndex is the 0-based level to open with.
	StartIndex int

	// Pack and PackChanges enable hot reload of the level pack. Both optional.
	Pack        *oracle.PackLevels
	PackChanges <-chan struct{}

	DebugMode bool
}

// Model is the root application state.
type Model struct {
	ctx     context.Context
	oracle  *oracle.Oracle
	session *game.Session
	cfg     config.Config
	flags   *flags.Registry

	configPath string
	startIndex int

	keys      keys.KeyMap
	sheetKeys keys.CheatSheetKeyMap
	help      help.Model
	spinner   spinner.Model

	loading      bool
	loadingIndex int

	showSheet bool
	sheet     viewport.Model

	toast toast

	pack        *oracle.PackLevels
	packChanges <-chan struct{}

	events      *pubsub.ContinuousListener[game.Snapshot]
	lastCommand string

	debugMode bool
	logs      *log.LogListener
	logLines  []string
	showLogs  bool

	width  int
	height int
}

// New creates the application model.
func New(ctx context.Context, opts Options) Model {
	s := spinner.New(spinner.WithSpinner(spinner.Moon))

	m := Model{
		ctx:          ctx,
		oracle:       opts.Oracle,
		session:      opts.Session,
		cfg:          opts.Config,
		flags:        opts.Flags,
		configPath:   opts.ConfigPath,
		startIndex:   opts.StartIndex,
		keys:         keys.DefaultKeyMap(),
		sheetKeys:    keys.DefaultCheatSheetKeyMap(),
		help:         help.New(),
		spinner:      s,
		loading:      true,
		loadingIndex: opts.StartIndex,
		sheet:        viewport.New(0, 0),
		pack:         opts.Pack,
		packChanges:  opts.PackChanges,
		debugMode:    opts.DebugMode,
	}
	if opts.Events != nil {
		m.events = pubsub.NewContinuousListener(ctx, opts.Events)
	}
	if opts.DebugMode {
		m.logs = log.NewListener(ctx)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		loadLevelCmd(m.ctx, m.oracle, m.startIndex),
	}
	if m.packChanges != nil {
		cmds = append(cmds, waitForPackChange(m.packChanges))
	}
	if m.events != nil {
		cmds = append(cmds, m.events.Listen())
	}
	if m.logs != nil {
		cmds = append(cmds, m.logs.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.sheet.Width = max(20, msg.Width*3/4)
		m.sheet.Height = max(5, msg.Height*3/4)
		if m.showSheet {
			m.sheet.SetContent(m.renderCheatSheet())
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case levelLoadedMsg:
		return m.handleLevelLoaded(msg)

	case remarkMsg:
		// A remark for a level the player already left is stale.
		if msg.index == m.session.Index() {
			m.session.SetRemark(msg.text, msg.emotion)
		}
		return m, nil

	case packChangedMsg:
		return m.handlePackChanged()

	case progressSavedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatConfig, "failed to save progress", msg.err, "path", m.configPath)
			var cmd tea.Cmd
			m.toast, cmd = m.toast.show("Could not save progress", toastError)
			return m, cmd
		}
		return m, nil

	case toastDismissMsg:
		m.toast = m.toast.dismiss(msg)
		return m, nil

	case pubsub.Event[game.Snapshot]:
		if msg.Type == pubsub.KeyApplied && msg.Payload.Outcome.Result == engine.Executed {
			m.lastCommand = msg.Payload.Outcome.CommandID
		}
		return m, m.events.Listen()

	case log.LogEvent:
		m.logLines = append(m.logLines, msg.Payload)
		if len(m.logLines) > maxLogLines {
			m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
		}
		return m, m.logs.Listen()

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

const maxLogLines = 200

func (m Model) handleLevelLoaded(msg levelLoadedMsg) (tea.Model, tea.Cmd) {
	// Only the most recent request counts.
	if msg.index != m.loadingIndex {
		return m, nil
	}
	m.loading = false
	m.session.Load(m.ctx, msg.index, msg.level)
	m.keys.Next.SetEnabled(false)
	if m.showSheet {
		m.sheet.SetContent(m.renderCheatSheet())
	}
	return m, nil
}

func (m Model) handlePackChanged() (tea.Model, tea.Cmd) {
	next := waitForPackChange(m.packChanges)
	if m.pack == nil {
		return m, next
	}
	n, err := m.pack.Reload(m.cfg.LevelPack)
	var cmd tea.Cmd
	if err != nil {
		log.ErrorErr(log.CatWatcher, "level pack reload failed", err, "path", m.cfg.LevelPack)
		m.toast, cmd = m.toast.show("Level pack has errors, keeping the old one", toastError)
		return m, tea.Batch(cmd, next)
	}
	m.oracle.Invalidate(m.ctx)
	log.Info(log.CatWatcher, "level pack reloaded", "levels", n)
	m.toast, cmd = m.toast.show(fmt.Sprintf("Level pack reloaded (%d levels)", n), toastInfo)
	return m, tea.Batch(cmd, next)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showSheet {
		if key.Matches(msg, m.sheetKeys.Close) {
			m.showSheet = false
			return m, nil
		}
		var cmd tea.Cmd
		m.sheet, cmd = m.sheet.Update(msg)
		return m, cmd
	}

	if m.debugMode && msg.Type == tea.KeyCtrlX {
		m.showLogs = !m.showLogs
		return m, nil
	}

	if m.loading || !m.session.Loaded() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		return m.openCheatSheet(), nil
	case key.Matches(msg, m.keys.Reset):
		return m.reset()
	case key.Matches(msg, m.keys.Next):
		return m.nextLevel()
	}

	return m.applyKeys(toKeystrokes(msg))
}

func (m Model) applyKeys(strokes []engine.Keystroke) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, ks := range strokes {
		res := m.session.HandleKey(m.ctx, ks.Key, ks.Mods)
		if !res.Forwarded {
			break
		}
		if res.Outcome.Result == engine.Filtered {
			var cmd tea.Cmd
			m.toast, cmd = m.toast.show(fmt.Sprintf("The rune %q is sealed in this trial", string(ks.Key)), toastWarn)
			cmds = append(cmds, cmd)
		}
		if res.JustWon {
			cmds = append(cmds, m.onWin()...)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) onWin() []tea.Cmd {
	m.keys.Next.SetEnabled(true)

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.toast, cmd = m.toast.show(fmt.Sprintf("Trial complete in %d keystrokes", m.session.Keystrokes()), toastSuccess)
	cmds = append(cmds, cmd)

	if m.flags.Enabled(flags.FlagVictoryRemarks) && m.session.Index() >= m.oracle.TutorialLen() {
		cmds = append(cmds, remarkCmd(m.ctx, m.oracle, m.session.Index(), oracle.GeneratedLevelWon, oracle.Impressed))
	}
	if m.configPath != "" && m.flags.Enabled(flags.FlagSaveProgress) {
		p := config.Progress{Level: m.session.NextIndex() + 1, Score: m.session.Score()}
		cmds = append(cmds, saveProgressCmd(m.configPath, p))
	}
	return cmds
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	m.session.Reset(m.ctx)
	m.keys.Next.SetEnabled(false)
	return m, nil
}

func (m Model) nextLevel() (tea.Model, tea.Cmd) {
	if !m.session.Won() {
		return m, nil
	}
	m.loading = true
	m.loadingIndex = m.session.NextIndex()
	m.keys.Next.SetEnabled(false)
	m.session.SetRemark("", oracle.Casting)
	return m, tea.Batch(m.spinner.Tick, loadLevelCmd(m.ctx, m.oracle, m.loadingIndex))
}

func (m Model) openCheatSheet() Model {
	m.showSheet = true
	m.sheet.SetContent(m.renderCheatSheet())
	m.sheet.GotoTop()
	return m
}

func (m Model) renderCheatSheet() string {
	allowed := m.session.Level().KeySet()
	r, err := markdown.New(max(20, m.sheet.Width-4), m.cfg.UI)
	if err != nil {
		log.ErrorErr(log.CatUI, "markdown renderer unavailable", err)
		return markdown.CheatSheet(allowed)
	}
	out, err := r.Grimoire(allowed)
	if err != nil {
		log.ErrorErr(log.CatUI, "cheat sheet render failed", err)
		return markdown.CheatSheet(allowed)
	}
	return out
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.loading || m.showSheet || !m.session.Loaded() {
		return m, nil
	}

	switch {
	case zone.Get(zoneReset).InBounds(msg):
		return m.reset()
	case zone.Get(zoneNext).InBounds(msg):
		return m.nextLevel()
	case zone.Get(zoneSheet).InBounds(msg):
		return m.openCheatSheet(), nil
	case m.flags.Enabled(flags.FlagMouseRemarks) && zone.Get(zoneEditor).InBounds(msg):
		// The cursor only moves by keys; clicking the buffer earns a scolding instead.
		return m, remarkCmd(m.ctx, m.oracle, m.session.Index(), MouseSituation, oracle.Angry)
	}
	return m, nil
}
