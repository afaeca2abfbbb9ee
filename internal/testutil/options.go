package testutil

import (
	"strings"
	"time"

	"github.com/zjrosen/vimwizard/internal/engine"
)

// attemptData holds everything needed to journal one attempt.
type attemptData struct {
	startedAt *time.Time
	keys      []engine.Keystroke
	completed bool
}

// AttemptOption configures an attempt added with Builder.WithAttempt.
type AttemptOption func(*attemptData)

// Keys records keystrokes in order. Names take the "ctrl+", "alt+" and "meta+" prefixes
// the shell prints, e.g. "ctrl+w".
func Keys(names ...string) AttemptOption {
	return func(a *attemptData) {
		for _, name := range names {
			a.keys = append(a.keys, ParseKeystroke(name))
		}
	}
}

// Completed marks the attempt as won after its keys.
func Completed() AttemptOption {
	return func(a *attemptData) { a.completed = true }
}

// StartedAt fixes the attempt's start time.
func StartedAt(t time.Time) AttemptOption {
	return func(a *attemptData) { a.startedAt = &t }
}

// ParseKeystroke turns "ctrl+alt+x" into a keystroke. A bare "+" is the plus key.
func ParseKeystroke(name string) engine.Keystroke {
	var ks engine.Keystroke
	for {
		prefix, rest, ok := strings.Cut(name, "+")
		if !ok || rest == "" {
			break
		}
		switch prefix {
		case "ctrl":
			ks.Mods.Ctrl = true
		case "alt":
			ks.Mods.Alt = true
		case "meta":
			ks.Mods.Meta = true
		default:
			ks.Key = engine.Key(name)
			return ks
		}
		name = rest
	}
	ks.Key = engine.Key(name)
	return ks
}
