package testutil

import "github.com/zjrosen/vimwizard/internal/level"

// TypoLevel is a one-line level won by "l l l x".
func TypoLevel() level.Level {
	return level.Level{
		ID:          4,
		Title:       "Banish the Typo",
		Start:       []string{"Necrromancy"},
		Goal:        level.ExactText{Lines: []string{"Necromancy"}},
		AllowedKeys: []string{"h", "l", "x"},
	}
}

// WithStandardAttempts adds the standard journal dataset: a won typo attempt, an abandoned
// one that pressed a sealed key, and a won tutorial attempt.
func (b *Builder) WithStandardAttempts() *Builder {
	return b.
		WithAttempt(TypoLevel(), Keys("l", "l", "l", "x"), Completed()).
		WithAttempt(TypoLevel(), Keys("l", "i", "x")).
		WithAttempt(level.Tutorial()[0], Keys("j", "j", "l", "l", "l", "l", "l"), Completed())
}
