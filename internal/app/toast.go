package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type toastKind int

const (
	toastSuccess toastKind = iota
	toastInfo
	toastWarn
	toastError
)

const toastDuration = 3 * time.Second

// toast is a short notice shown at the bottom of the screen. seq ties a dismiss tick to
// the toast that scheduled it, so an old tick cannot hide a newer toast.
type toast struct {
	message string
	kind    toastKind
	seq     int
}

type toastDismissMsg struct{ seq int }

func (t toast) show(message string, kind toastKind) (toast, tea.Cmd) {
	t.message = message
	t.kind = kind
	t.seq++
	seq := t.seq
	return t, tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastDismissMsg{seq: seq} })
}

func (t toast) dismiss(msg toastDismissMsg) toast {
	if msg.seq == t.seq {
		t.message = ""
	}
	return t
}

func (t toast) visible() bool {
	return t.message != ""
}

func (t toast) view() string {
	if !t.visible() {
		return ""
	}
	style := toastBaseStyle
	prefix := "✔ "
	switch t.kind {
	case toastInfo:
		style = style.BorderForeground(infoColor)
		prefix = "ℹ "
	case toastWarn:
		style = style.BorderForeground(warningColor)
		prefix = "⚠ "
	case toastError:
		style = style.BorderForeground(errorColor)
		prefix = "✘ "
	default:
		style = style.BorderForeground(successColor)
	}
	return style.Render(prefix + t.message)
}
