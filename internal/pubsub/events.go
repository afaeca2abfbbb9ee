// Package pubsub is a small generic publish/subscribe layer. The game session publishes its
// events through it and the debug log fans entries out with it.
package pubsub

import (
	"context"
	"time"
)

// EventType names what happened.
type EventType string

const (
	// LevelLoaded fires when a session starts or advances to a level.
	LevelLoaded EventType = "level_loaded"
	// KeyApplied fires after every keystroke the session forwards to the engine.
	KeyApplied EventType = "key_applied"
	// LevelWon fires once when the goal is first met.
	LevelWon EventType = "level_won"
	// LevelReset fires when the player restores the start text.
	LevelReset EventType = "level_reset"
	// RemarkChanged fires when the wizard says something new.
	RemarkChanged EventType = "remark_changed"
	// PackReloaded fires after the level pack file changed on disk.
	PackReloaded EventType = "pack_reloaded"
	// LogEntry carries one formatted debug log line.
	LogEntry EventType = "log_entry"
)

// Event is a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber hands out event channels.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher accepts events.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
