package presentation

import (
	"time"

	"github.com/zjrosen/vimwizard/internal/engine"
	"github.com/zjrosen/vimwizard/internal/journal"
	"github.com/zjrosen/vimwizard/internal/level"
)

// LevelDTO represents a level for presentation
type LevelDTO struct {
	Index       int      `json:"index"`
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Goal        string   `json:"goal"`
	AllowedKeys []string `json:"allowed_keys"` // null means every key is allowed
	Source      string   `json:"source"`
}

// Level sources.
const (
	SourceTutorial = "tutorial"
	SourcePack     = "pack"
)

// FromLevel converts a level at the given 0-based index.
func FromLevel(index int, l level.Level, source string) LevelDTO {
	goal := ""
	if l.Goal != nil {
		goal = l.Goal.String()
	}
	return LevelDTO{
		Index:       index,
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Goal:        goal,
		AllowedKeys: l.AllowedKeys,
		Source:      source,
	}
}

// AttemptDTO represents a journaled attempt
type AttemptDTO struct {
	ID          string     `json:"id"`
	LevelID     int        `json:"level_id"`
	LevelTitle  string     `json:"level_title"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Completed   bool       `json:"completed"`
	Keystrokes  int        `json:"keystrokes"`
}

// FromAttempt converts a journal attempt.
func FromAttempt(a journal.Attempt) AttemptDTO {
	return AttemptDTO{
		ID:          a.ID,
		LevelID:     a.LevelID,
		LevelTitle:  a.LevelTitle,
		StartedAt:   a.StartedAt.UTC(),
		CompletedAt: utcPtr(a.CompletedAt),
		Completed:   a.Completed(),
		Keystrokes:  a.Keystrokes,
	}
}

// FromAttempts converts a list of attempts, never returning nil.
func FromAttempts(attempts []journal.Attempt) []AttemptDTO {
	out := make([]AttemptDTO, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, FromAttempt(a))
	}
	return out
}

// ReplayDTO is the buffer reached by replaying an attempt.
type ReplayDTO struct {
	Attempt AttemptDTO `json:"attempt"`
	Keys    []string   `json:"keys"`
	Lines   []string   `json:"lines"`
	Cursor  CursorDTO  `json:"cursor"`
	Mode    string     `json:"mode"`
}

// CursorDTO is a 0-based buffer position.
type CursorDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// FromReplay builds a ReplayDTO from an attempt, its keys and the final state.
func FromReplay(a journal.Attempt, keys []engine.Keystroke, s engine.State) ReplayDTO {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = keyName(k)
	}
	return ReplayDTO{
		Attempt: FromAttempt(a),
		Keys:    names,
		Lines:   s.Lines,
		Cursor:  CursorDTO{Row: s.Cursor.Row, Col: s.Cursor.Col},
		Mode:    s.Mode.String(),
	}
}

func keyName(k engine.Keystroke) string {
	name := string(k.Key)
	if k.Mods.Meta {
		name = "meta+" + name
	}
	if k.Mods.Alt {
		name = "alt+" + name
	}
	if k.Mods.Ctrl {
		name = "ctrl+" + name
	}
	return name
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
