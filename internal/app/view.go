package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/vimwizard/internal/engine"
	"github.com/zjrosen/vimwizard/internal/level"
	"github.com/zjrosen/vimwizard/internal/oracle"
)

const (
	defaultWidth   = 80
	minEditorWidth = 24
)

var emotionGlyphs = map[oracle.Emotion]string{
	oracle.Neutral:   "🧙",
	oracle.Happy:     "🧙✨",
	oracle.Angry:     "🧙💢",
	oracle.Casting:   "🧙🔮",
	oracle.Impressed: "🧙🌟",
}

// View implements tea.Model.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var body string
	if m.loading {
		body = m.renderLoading(width)
	} else {
		body = m.renderGame(width)
	}

	if m.showLogs {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.renderLogs(width))
	}

	height := m.height
	if height <= 0 {
		height = lipgloss.Height(body)
	}
	if m.showSheet {
		body = placeOver(width, height, placeCenter, sheetStyle.Render(m.sheet.View()), body)
	}
	if m.toast.visible() {
		body = placeOver(width, height, placeBottom, m.toast.view(), body)
	}
	return zone.Scan(body)
}

func (m Model) renderLoading(width int) string {
	text := fmt.Sprintf("%s The wizard is conjuring trial %d...", m.spinner.View(), m.loadingIndex+1)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(width, "Summoning"),
		"",
		remarkStyle.Render(text),
	)
}

func (m Model) renderGame(width int) string {
	l := m.session.Level()
	innerWidth := max(minEditorWidth, width-4)

	sections := []string{
		m.renderHeader(width, fmt.Sprintf("Level %d: %s", l.ID, l.Title)),
		m.renderRemark(innerWidth),
		descriptionStyle.Render(wordwrap.String(l.Description, innerWidth)),
	}
	if m.cfg.UI.ShowHints && len(l.Hints) > 0 {
		var hints []string
		for _, h := range l.Hints {
			hints = append(hints, "• "+h)
		}
		sections = append(sections, hintStyle.Render(wordwrap.String(strings.Join(hints, "\n"), innerWidth)))
	}

	sections = append(sections, zone.Mark(zoneEditor, m.renderEditor(innerWidth)))
	if m.cfg.UI.ShowStatusBar {
		sections = append(sections, m.renderStatus(innerWidth))
	}

	if m.session.Won() {
		sections = append(sections, winStyle.Render(fmt.Sprintf("✨ Trial complete in %d keystrokes! Press enter to continue.", m.session.Keystrokes())))
	} else if m.cfg.UI.ShowPreview {
		if preview := m.session.Preview(); preview != nil {
			sections = append(sections, renderPreview(preview))
		}
	}

	sections = append(sections, m.renderButtons(), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader(width int, title string) string {
	left := titleStyle.Render(title)
	right := scoreStyle.Render(fmt.Sprintf("Score %d", m.session.Score()))
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderRemark(width int) string {
	text := m.session.Remark()
	if m.session.Emotion() == oracle.Casting && text == "" {
		text = m.spinner.View() + " ..."
	}
	glyph := emotionGlyphs[m.session.Emotion()]
	if glyph == "" {
		glyph = emotionGlyphs[oracle.Neutral]
	}
	wrapped := wordwrap.String(text, max(10, width-lipgloss.Width(glyph)-5))
	return remarkStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, glyph+" ", wrapped))
}

// renderEditor draws the buffer with the cursor cell highlighted. In Insertion mode the
// cursor may sit one past the last grapheme; that position is drawn as a space.
func (m Model) renderEditor(width int) string {
	st := m.session.State()
	cursor := cursorBlockStyle
	if st.Mode == engine.ModeInsertion {
		cursor = cursorInsertStyle
	}

	lines := make([]string, len(st.Lines))
	for row, line := range st.Lines {
		if row != st.Cursor.Row {
			lines[row] = runewidth.FillRight(line, width-2)
			continue
		}
		n := engine.GraphemeCount(line)
		col := min(st.Cursor.Col, n)
		before := engine.SliceByGraphemes(line, 0, col)
		under := " "
		after := ""
		if col < n {
			under = engine.GraphemeAt(line, col)
			after = engine.SliceByGraphemes(line, col+1, n)
		}
		pad := max(0, width-2-runewidth.StringWidth(line)-boolInt(col >= n))
		lines[row] = before + cursor.Render(under) + after + strings.Repeat(" ", pad)
	}
	return editorStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (m Model) renderStatus(width int) string {
	st := m.session.State()
	badge := modeBadgeStyle.Background(navigationModeColor)
	if st.Mode == engine.ModeInsertion {
		badge = modeBadgeStyle.Background(insertionModeColor)
	}

	parts := []string{
		badge.Render(st.Mode.String()),
		statusStyle.Render(fmt.Sprintf("%dL, %dC", len(st.Lines), st.CharCount())),
		statusStyle.Render(allowedKeysLabel(m.session.Level().KeySet())),
	}
	if m.lastCommand != "" {
		parts = append(parts, statusStyle.Render("last: "+m.lastCommand))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	right := statusStyle.Render(fmt.Sprintf("Ln %d, Col %d  ⌨ %d", st.Cursor.Row+1, st.Cursor.Col+1, m.session.Keystrokes()))
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

func allowedKeysLabel(allowed engine.KeySet) string {
	if allowed == nil {
		return "runes: all"
	}
	keys := allowed.Keys()
	slices.Sort(keys)
	return "runes: " + strings.Join(keys, " ")
}

func renderPreview(lines []level.PreviewLine) string {
	rows := []string{mutedStyle.Render(fmt.Sprintf("Target (%d lines to go)", level.Remaining(lines)))}
	for _, pl := range lines {
		if pl.Done {
			rows = append(rows, previewDoneStyle.Render("✔ "+pl.Target))
			continue
		}
		var b strings.Builder
		b.WriteString("  ")
		for _, seg := range pl.Segments {
			switch seg.Kind {
			case level.SegmentMissing:
				b.WriteString(previewMissingStyle.Render(seg.Text))
			case level.SegmentExtra:
				b.WriteString(previewExtraStyle.Render(seg.Text))
			default:
				b.WriteString(previewMatchStyle.Render(seg.Text))
			}
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderButtons() string {
	buttons := []string{
		zone.Mark(zoneReset, buttonStyle.Render("[ reset ]")),
		zone.Mark(zoneSheet, buttonStyle.Render("[ grimoire ]")),
	}
	if m.session.Won() {
		buttons = append(buttons, zone.Mark(zoneNext, buttonStyle.Render("[ next trial ]")))
	}
	return strings.Join(buttons, " ")
}

func (m Model) renderLogs(width int) string {
	start := max(0, len(m.logLines)-10)
	var b strings.Builder
	for _, line := range m.logLines[start:] {
		b.WriteString(runewidth.Truncate(strings.TrimRight(line, "\n"), width, "…"))
		b.WriteString("\n")
	}
	return mutedStyle.Render(strings.TrimRight(b.String(), "\n"))
}
