// Package markdown renders the grimoire, the in-game command reference, with glamour.
package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/zjrosen/vimwizard/internal/config"
	"github.com/zjrosen/vimwizard/internal/engine"
)

// grimoireStyle is layered over the base style: no document margins, and headings
// tinted with the %s colour of the chosen base.
const grimoireStyle = `{
	"document": {"margin": 0, "block_prefix": "", "block_suffix": ""},
	"h1": {"color": "%[1]s", "bold": true},
	"h2": {"color": "%[1]s", "bold": true}
}`

var headingColors = map[string]string{
	"dark":  "#B48EAD",
	"light": "#6C3483",
}

// Renderer turns grimoire markdown into terminal output.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
	style    string
}

// New builds a renderer that wraps at width in the configured base style, "dark" when
// unset. Auto style detection is never used: the terminal's answer to its background
// query arrives on stdin where the editor would read it as keystrokes.
func New(width int, ui config.UIConfig) (*Renderer, error) {
	style := ui.MarkdownStyle
	if style == "" {
		style = "dark"
	}
	color, ok := headingColors[style]
	if !ok {
		return nil, fmt.Errorf("unknown markdown style %q", style)
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(fmt.Sprintf(grimoireStyle, color))),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("building %s renderer: %w", style, err)
	}
	return &Renderer{renderer: r, width: width, style: style}, nil
}

// Width returns the word wrap width.
func (r *Renderer) Width() int { return r.width }

// Style returns the base style in use.
func (r *Renderer) Style() string { return r.style }

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}

// Grimoire renders the cheat sheet for allowed without trailing blank lines.
func (r *Renderer) Grimoire(allowed engine.KeySet) (string, error) {
	out, err := r.Render(CheatSheet(allowed))
	if err != nil {
		return "", fmt.Errorf("rendering grimoire: %w", err)
	}
	return strings.TrimRight(out, "\n "), nil
}
