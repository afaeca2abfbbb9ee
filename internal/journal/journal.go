// Package journal records every attempt at a level, keystroke by keystroke, in a SQLite
// database so attempts can be listed and replayed through the engine.
package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/vimwizard/internal/engine"
	"github.com/zjrosen/vimwizard/internal/level"
	"github.com/zjrosen/vimwizard/internal/log"
	"github.com/zjrosen/vimwizard/internal/tracing"
)

// ErrAttemptNotFound is returned when an attempt ID is unknown.
var ErrAttemptNotFound = errors.New("attempt not found")

// Attempt is one play-through of a level.
type Attempt struct {
	ID          string
	LevelID     int
	LevelTitle  string
	Start       []string
	// AllowedKeys is nil for an unrestricted level.
	AllowedKeys []string
	StartedAt   time.Time
	// CompletedAt is nil until the level is won.
	CompletedAt *time.Time
	Keystrokes  int
}

// Completed reports whether the attempt ended in a win.
func (a Attempt) Completed() bool {
	return a.CompletedAt != nil
}

// KeySet returns the allowed-key filter the attempt was played under.
func (a Attempt) KeySet() engine.KeySet {
	if a.AllowedKeys == nil {
		return nil
	}
	return engine.NewKeySet(a.AllowedKeys...)
}

// Journal is a SQLite-backed attempt log. It is safe for concurrent use.
type Journal struct {
	db     *sql.DB
	path   string
	tracer trace.Tracer
	now    func() time.Time
}

// Option configures a Journal.
type Option func(*Journal)

// WithTracer records spans for attempt creation and replay.
func WithTracer(t trace.Tracer) Option {
	return func(j *Journal) { j.tracer = t }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) { j.now = now }
}

// Open opens or creates the journal at path and brings its schema up to date.
func Open(ctx context.Context, path string, opts ...Option) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating journal directory: %w", err)
	}

	log.Debug(log.CatJournal, "Opening journal", "path", path)
	db, err := sql.Open("sqlite3", "file:"+path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating journal %s: %w", path, err)
	}

	j := &Journal{db: db, path: path, now: time.Now}
	for _, opt := range opts {
		opt(j)
	}
	log.Info(log.CatJournal, "Journal ready", "path", path)
	return j, nil
}

// Close closes the database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Path returns the database file.
func (j *Journal) Path() string {
	return j.path
}

// Begin starts a new attempt at l and returns its ID.
func (j *Journal) Begin(ctx context.Context, l level.Level) (string, error) {
	id := uuid.New().String()
	ctx, span := tracing.Start(ctx, j.tracer, tracing.SpanJournalBegin,
		attribute.String(tracing.AttrAttemptID, id),
		attribute.Int(tracing.AttrLevelID, l.ID),
	)

	start, err := json.Marshal(l.Start)
	if err == nil {
		var allowed []byte
		allowed, err = json.Marshal(l.AllowedKeys)
		if err == nil {
			_, err = j.db.ExecContext(ctx,
				`INSERT INTO attempts (id, level_id, level_title, start_text, allowed_keys, started_at)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				id, l.ID, l.Title, string(start), string(allowed), j.now().UnixMilli(),
			)
		}
	}
	tracing.End(span, err)
	if err != nil {
		return "", fmt.Errorf("beginning attempt: %w", err)
	}
	log.Debug(log.CatJournal, "attempt started", "id", id, "level", l.ID)
	return id, nil
}

// RecordKey appends keystroke number seq (1-based) to an attempt.
func (j *Journal) RecordKey(ctx context.Context, attemptID string, seq int, k engine.Keystroke) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO keystrokes (attempt_id, seq, key, ctrl, alt, meta) VALUES (?, ?, ?, ?, ?, ?)`,
		attemptID, seq, string(k.Key), k.Mods.Ctrl, k.Mods.Alt, k.Mods.Meta,
	)
	if err != nil {
		return fmt.Errorf("recording keystroke %d of %s: %w", seq, attemptID, err)
	}
	return nil
}

// Complete marks an attempt as won after the given number of counted keystrokes.
func (j *Journal) Complete(ctx context.Context, attemptID string, keystrokes int) error {
	res, err := j.db.ExecContext(ctx,
		`UPDATE attempts SET completed_at = ?, keystrokes = ? WHERE id = ?`,
		j.now().UnixMilli(), keystrokes, attemptID,
	)
	if err != nil {
		return fmt.Errorf("completing attempt %s: %w", attemptID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("completing attempt %s: %w", attemptID, ErrAttemptNotFound)
	}
	return nil
}

const attemptColumns = `id, level_id, level_title, start_text, allowed_keys, started_at, completed_at, keystrokes`

// Get returns a single attempt.
func (j *Journal) Get(ctx context.Context, id string) (Attempt, error) {
	row := j.db.QueryRowContext(ctx, `SELECT `+attemptColumns+` FROM attempts WHERE id = ?`, id)
	a, err := scanAttempt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Attempt{}, fmt.Errorf("%w: %s", ErrAttemptNotFound, id)
	}
	return a, err
}

// List returns the most recent attempts, newest first. A limit <= 0 returns all of them.
func (j *Journal) List(ctx context.Context, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := j.db.QueryContext(ctx,
		`SELECT `+attemptColumns+` FROM attempts ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing attempts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var attempts []Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// Keys returns the keystrokes of an attempt in the order they were pressed.
func (j *Journal) Keys(ctx context.Context, attemptID string) ([]engine.Keystroke, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT key, ctrl, alt, meta FROM keystrokes WHERE attempt_id = ? ORDER BY seq`, attemptID)
	if err != nil {
		return nil, fmt.Errorf("reading keystrokes of %s: %w", attemptID, err)
	}
	defer func() { _ = rows.Close() }()

	var keys []engine.Keystroke
	for rows.Next() {
		var (
			k   string
			mod engine.Modifiers
		)
		if err := rows.Scan(&k, &mod.Ctrl, &mod.Alt, &mod.Meta); err != nil {
			return nil, err
		}
		keys = append(keys, engine.Keystroke{Key: engine.Key(k), Mods: mod})
	}
	return keys, rows.Err()
}

// Replay re-runs an attempt from its start text and returns the final state.
func (j *Journal) Replay(ctx context.Context, attemptID string, eng *engine.Engine) (engine.State, error) {
	ctx, span := tracing.Start(ctx, j.tracer, tracing.SpanJournalReplay,
		attribute.String(tracing.AttrAttemptID, attemptID),
	)

	a, err := j.Get(ctx, attemptID)
	if err != nil {
		tracing.End(span, err)
		return engine.State{}, err
	}
	keys, err := j.Keys(ctx, attemptID)
	if err != nil {
		tracing.End(span, err)
		return engine.State{}, err
	}

	span.SetAttributes(attribute.Int(tracing.AttrKeystrokes, len(keys)))
	final := eng.Replay(engine.NewState(a.Start), keys, a.KeySet())
	tracing.End(span, nil)
	return final, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAttempt(s scanner) (Attempt, error) {
	var (
		a              Attempt
		start, allowed string
		startedAt      int64
		completedAt    sql.NullInt64
	)
	if err := s.Scan(&a.ID, &a.LevelID, &a.LevelTitle, &start, &allowed, &startedAt, &completedAt, &a.Keystrokes); err != nil {
		return Attempt{}, err
	}
	if err := json.Unmarshal([]byte(start), &a.Start); err != nil {
		return Attempt{}, fmt.Errorf("decoding start text of %s: %w", a.ID, err)
	}
	if err := json.Unmarshal([]byte(allowed), &a.AllowedKeys); err != nil {
		return Attempt{}, fmt.Errorf("decoding allowed keys of %s: %w", a.ID, err)
	}
	a.StartedAt = time.UnixMilli(startedAt).UTC()
	if completedAt.Valid {
		t := time.UnixMilli(completedAt.Int64).UTC()
		a.CompletedAt = &t
	}
	return a, nil
}
