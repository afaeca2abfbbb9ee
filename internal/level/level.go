// Package level defines puzzles for the trainer: a start buffer, a goal, and the keys the
// player may use to reach it.
package level

import (
	"errors"
	"fmt"

	"github.com/zjrosen/vimwizard/internal/engine"
)

// ErrInvalid is returned by Validate for levels that cannot be played.
var ErrInvalid = errors.New("invalid level")

// Level is a single puzzle.
type Level struct {
	// ID is the 1-based level number.
	ID          int
	Title       string
	Description string
	Start       []string
	Goal        Goal
	// AllowedKeys lists the command keys the level permits. Nil means unrestricted.
	AllowedKeys []string
	Hints       []string
	Intro       string
	Success     string
}

// StartState returns a fresh engine state for the level: the start text, the cursor at the
// origin and Navigation mode.
func (l Level) StartState() engine.State {
	return engine.NewState(l.Start)
}

// KeySet returns the allowed-key filter for the level.
func (l Level) KeySet() engine.KeySet {
	if l.AllowedKeys == nil {
		return nil
	}
	return engine.NewKeySet(l.AllowedKeys...)
}

// IsWon reports whether the state satisfies the level goal.
func (l Level) IsWon(s engine.State) bool {
	if l.Goal == nil {
		return false
	}
	return l.Goal.Satisfied(s.Lines, s.Cursor)
}

// Validate checks that a level can be played.
func (l Level) Validate() error {
	if len(l.Start) == 0 {
		return fmt.Errorf("%w: %q has no start text", ErrInvalid, l.Title)
	}
	if l.Goal == nil {
		return fmt.Errorf("%w: %q has no goal", ErrInvalid, l.Title)
	}
	if t, ok := l.Goal.(ExactText); ok && len(t.Lines) == 0 {
		return fmt.Errorf("%w: %q has an empty target", ErrInvalid, l.Title)
	}
	if l.IsWon(l.StartState()) {
		return fmt.Errorf("%w: %q is already solved at the start", ErrInvalid, l.Title)
	}
	return nil
}

// Default values for generated levels missing optional fields.
const (
	DefaultDescription = "Survive."
	DefaultHint        = "Use the force... err, the keys."
)

// DefaultAllowedKeys is the key set given to generated levels that do not name one.
var DefaultAllowedKeys = []string{"h", "j", "k", "l", "i", "x", "w", "b", "Escape", "0", "$"}

// WithDefaults fills the optional fields of a generated level and stamps its ID.
func WithDefaults(l Level, id int) Level {
	l.ID = id
	if l.Title == "" {
		l.Title = fmt.Sprintf("Level %d", id)
	}
	if l.Description == "" {
		l.Description = DefaultDescription
	}
	if len(l.AllowedKeys) == 0 {
		l.AllowedKeys = append([]string(nil), DefaultAllowedKeys...)
	}
	if len(l.Hints) == 0 {
		l.Hints = []string{DefaultHint}
	}
	return l
}
