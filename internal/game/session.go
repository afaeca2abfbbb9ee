// Package game runs one play session: it loads levels, routes keystrokes through the
// engine, checks the goal after every keystroke and keeps the score.
package game

import (
	"context"

	"github.com/zjrosen/vimwizard/internal/engine"
	"github.com/zjrosen/vimwizard/internal/level"
	"github.com/zjrosen/vimwizard/internal/log"
	"github.com/zjrosen/vimwizard/internal/oracle"
	"github.com/zjrosen/vimwizard/internal/pubsub"
)

// WinScore is added to the score for every level won.
const WinScore = 100

// Recorder journals attempts. A failing recorder never interrupts play.
type Recorder interface {
	Begin(ctx context.Context, l level.Level) (string, error)
	RecordKey(ctx context.Context, attemptID string, seq int, k engine.Keystroke) error
	Complete(ctx context.Context, attemptID string, keystrokes int) error
}

// Snapshot is the observable state of a session, published with every event.
type Snapshot struct {
	LevelIndex int
	Level      level.Level
	State      engine.State
	Won        bool
	Keystrokes int
	Score      int
	Remark     string
	Emotion    oracle.Emotion
	// Outcome is set for KeyApplied events.
	Outcome engine.Outcome
}

// KeyResult is what HandleKey reports back to the shell.
type KeyResult struct {
	Outcome engine.Outcome
	// Forwarded is false when the key was dropped because the level is already won.
	Forwarded bool
	// JustWon is true for the keystroke that first met the goal.
	JustWon bool
}

// Session is single-writer: one goroutine (the UI update loop) drives it.
type Session struct {
	engine    *engine.Engine
	recorder  Recorder
	publisher pubsub.Publisher[Snapshot]

	index      int
	level      level.Level
	allowed    engine.KeySet
	state      engine.State
	won        bool
	keystrokes int
	score      int
	remark     string
	emotion    oracle.Emotion
	attemptID  string
	loaded     bool
}

// Option configures a Session.
type Option func(*Session)

// WithRecorder journals every attempt.
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithPublisher publishes session events.
func WithPublisher(p pubsub.Publisher[Snapshot]) Option {
	return func(s *Session) { s.publisher = p }
}

// WithScore resumes from a saved score.
func WithScore(score int) Option {
	return func(s *Session) { s.score = score }
}

// NewSession returns a session with no level loaded.
func NewSession(opts ...Option) *Session {
	s := &Session{engine: engine.New(), emotion: oracle.Neutral}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the current level. index is the 0-based position in the level sequence.
func (s *Session) Load(ctx context.Context, index int, l level.Level) {
	s.index = index
	s.level = l
	s.allowed = l.KeySet()
	s.loaded = true
	s.restart(ctx)
	s.remark = l.Intro
	s.emotion = oracle.Neutral

	log.Info(log.CatGame, "level loaded", "index", index, "id", l.ID, "title", l.Title)
	s.publish(pubsub.LevelLoaded, engine.Outcome{})
}

// Reset restores the start text, puts the cursor at the origin in Navigation mode and
// starts a new attempt. The score is kept.
func (s *Session) Reset(ctx context.Context) {
	if !s.loaded {
		return
	}
	s.restart(ctx)
	log.Debug(log.CatGame, "level reset", "id", s.level.ID)
	s.publish(pubsub.LevelReset, engine.Outcome{})
}

func (s *Session) restart(ctx context.Context) {
	s.state = s.level.StartState()
	s.won = false
	s.keystrokes = 0
	s.attemptID = ""

	if s.recorder == nil {
		return
	}
	id, err := s.recorder.Begin(ctx, s.level)
	if err != nil {
		log.ErrorErr(log.CatJournal, "failed to begin attempt", err, "level", s.level.ID)
		return
	}
	s.attemptID = id
}

// HandleKey forwards one keystroke to the engine under the level's key filter and checks
// the goal. Keys arriving after the level is won, or before any level is loaded, are dropped.
func (s *Session) HandleKey(ctx context.Context, key engine.Key, mods engine.Modifiers) KeyResult {
	if !s.loaded || s.won {
		return KeyResult{}
	}

	next, outcome := s.engine.Apply(s.state, key, mods, s.allowed)
	s.state = next
	s.keystrokes++
	s.record(ctx, engine.Keystroke{Key: key, Mods: mods})

	res := KeyResult{Outcome: outcome, Forwarded: true}
	log.Debug(log.CatGame, "key applied", "key", string(key), "result", outcome.Result.String(), "cmd", outcome.CommandID)
	s.publish(pubsub.KeyApplied, outcome)

	if s.level.IsWon(s.state) {
		s.win(ctx)
		res.JustWon = true
	}
	return res
}

func (s *Session) record(ctx context.Context, k engine.Keystroke) {
	if s.recorder == nil || s.attemptID == "" {
		return
	}
	if err := s.recorder.RecordKey(ctx, s.attemptID, s.keystrokes, k); err != nil {
		log.ErrorErr(log.CatJournal, "failed to record keystroke", err, "attempt", s.attemptID)
	}
}

func (s *Session) win(ctx context.Context) {
	s.won = true
	s.score += WinScore
	s.remark = s.level.Success
	s.emotion = oracle.Happy

	log.Info(log.CatGame, "level won", "id", s.level.ID, "keystrokes", s.keystrokes, "score", s.score)
	if s.recorder != nil && s.attemptID != "" {
		if err := s.recorder.Complete(ctx, s.attemptID, s.keystrokes); err != nil {
			log.ErrorErr(log.CatJournal, "failed to complete attempt", err, "attempt", s.attemptID)
		}
	}
	s.publish(pubsub.LevelWon, engine.Outcome{})
}

// SetRemark replaces the wizard's current line.
func (s *Session) SetRemark(text string, emotion oracle.Emotion) {
	s.remark = text
	s.emotion = emotion
	s.publish(pubsub.RemarkChanged, engine.Outcome{})
}

// Loaded reports whether a level has been loaded.
func (s *Session) Loaded() bool { return s.loaded }

// Index returns the 0-based position of the current level.
func (s *Session) Index() int { return s.index }

// NextIndex is the position of the level after the current one.
func (s *Session) NextIndex() int { return s.index + 1 }

func (s *Session) Level() level.Level { return s.level }

func (s *Session) State() engine.State { return s.state }

func (s *Session) Won() bool { return s.won }

func (s *Session) Keystrokes() int { return s.keystrokes }

func (s *Session) Score() int { return s.score }

func (s *Session) Remark() string { return s.remark }

func (s *Session) Emotion() oracle.Emotion { return s.emotion }

// AttemptID returns the journal ID of the current attempt, or "" when not journaling.
func (s *Session) AttemptID() string { return s.attemptID }

// Preview compares the buffer with the level's target text. It returns nil for goals
// without a target, and once the level is won.
func (s *Session) Preview() []level.PreviewLine {
	if s.won {
		return nil
	}
	target, ok := level.Target(s.level.Goal)
	if !ok {
		return nil
	}
	return level.Preview(s.state.Lines, target)
}

// Snapshot returns a copy of the session's observable state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		LevelIndex: s.index,
		Level:      s.level,
		State:      s.state.Clone(),
		Won:        s.won,
		Keystrokes: s.keystrokes,
		Score:      s.score,
		Remark:     s.remark,
		Emotion:    s.emotion,
	}
}

func (s *Session) publish(t pubsub.EventType, outcome engine.Outcome) {
	if s.publisher == nil {
		return
	}
	snap := s.Snapshot()
	snap.Outcome = outcome
	s.publisher.Publish(t, snap)
}
