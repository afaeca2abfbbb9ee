package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type placement int

const (
	placeCenter placement = iota
	placeBottom
)

// placeOver draws fg on top of bg inside a width x height screen without disturbing the
// styling of the background cells to either side.
func placeOver(width, height int, where placement, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	x := max(0, (width-lipgloss.Width(fg))/2)
	y := max(0, (height-len(fgLines))/2)
	if where == placeBottom {
		y = max(0, height-len(fgLines)-1)
	}

	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		under := bgLines[row]

		left := ansi.Truncate(under, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		var right string
		if end := x + ansi.StringWidth(line); end < ansi.StringWidth(under) {
			right = ansi.TruncateLeft(under, end, "")
		}
		bgLines[row] = left + line + right
	}
	return strings.Join(bgLines, "\n")
}
