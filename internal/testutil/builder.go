package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimwizard/internal/journal"
	"github.com/zjrosen/vimwizard/internal/level"
)

// BaseTime is when the first built attempt starts. Later attempts start a minute apart.
var BaseTime = time.Date(2026, time.January, 2, 15, 4, 5, 0, time.UTC)

type attemptEntry struct {
	level level.Level
	data  attemptData
}

// Builder accumulates attempts and journals them in order.
type Builder struct {
	t        *testing.T
	path     string
	attempts []attemptEntry
}

// NewBuilder creates a builder for the journal database at path.
func NewBuilder(t *testing.T, path string) *Builder {
	t.Helper()
	return &Builder{t: t, path: path}
}

// WithAttempt adds an attempt at l with optional configuration.
func (b *Builder) WithAttempt(l level.Level, opts ...AttemptOption) *Builder {
	var data attemptData
	for _, opt := range opts {
		opt(&data)
	}
	b.attempts = append(b.attempts, attemptEntry{level: l, data: data})
	return b
}

// Build journals every attempt and returns their IDs in insertion order. The journal is
// closed afterwards so the database can be reopened by the code under test.
func (b *Builder) Build() []string {
	b.t.Helper()
	ctx := context.Background()

	now := BaseTime
	clock := func() time.Time { return now }
	j, err := journal.Open(ctx, b.path, journal.WithClock(clock))
	require.NoError(b.t, err)
	defer func() { require.NoError(b.t, j.Close()) }()

	ids := make([]string, 0, len(b.attempts))
	for i, a := range b.attempts {
		now = BaseTime.Add(time.Duration(i) * time.Minute)
		if a.data.startedAt != nil {
			now = *a.data.startedAt
		}

		id, err := j.Begin(ctx, a.level)
		require.NoError(b.t, err)
		for seq, k := range a.data.keys {
			require.NoError(b.t, j.RecordKey(ctx, id, seq+1, k))
		}
		if a.data.completed {
			require.NoError(b.t, j.Complete(ctx, id, len(a.data.keys)))
		}
		ids = append(ids, id)
	}
	return ids
}
