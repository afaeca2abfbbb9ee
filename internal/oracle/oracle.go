// Package oracle supplies levels and wizard dialogue. The services behind it may be slow or
// fail; the Oracle bounds every call with a timeout and substitutes fixed fallbacks so the
// game never sees an error.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zjrosen/vimwizard/internal/level"
)

var (
	// ErrNoLevels is returned by a LevelService with nothing to serve.
	ErrNoLevels = errors.New("no levels available")
	// ErrUnknownEmotion is returned for an emotion a DialogueService has no voice for.
	ErrUnknownEmotion = errors.New("unknown emotion")
)

// LevelService produces levels beyond the tutorial.
type LevelService interface {
	// GenerateLevel returns the n-th generated level (n counts from 0) on topic.
	// Optional fields may be left empty; the caller fills defaults.
	GenerateLevel(ctx context.Context, n int, topic string) (level.Level, error)
}

// DialogueService produces the wizard's remarks.
type DialogueService interface {
	// Remark returns a line reacting to situation in the given mood.
	Remark(ctx context.Context, situation string, emotion Emotion) (string, error)
}

// Emotion is the wizard's mood for a remark.
type Emotion string

const (
	Neutral   Emotion = "neutral"
	Happy     Emotion = "happy"
	Angry     Emotion = "angry"
	Casting   Emotion = "casting"
	Impressed Emotion = "impressed"
)

// Emotions lists every known emotion.
var Emotions = []Emotion{Neutral, Happy, Angry, Casting, Impressed}

// ParseEmotion maps a name such as "Happy" to an Emotion.
func ParseEmotion(s string) (Emotion, error) {
	e := Emotion(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Emotions {
		if e == known {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEmotion, s)
}

// Fixed remarks used when dialogue fails.
const (
	FallbackRemark = "The spirits of the machine are restless (API Error)."
	SilentRemark   = "...The void is silent..."
)

// Situations the game reports to the dialogue service.
const (
	// DefaultTopic is the subject of generated levels.
	DefaultTopic = "Refactoring Necromancy Code"
	// GeneratedLevelWon is reported after the player beats a generated level.
	GeneratedLevelWon = "The student has completed a complex necromancy refactor."
)
