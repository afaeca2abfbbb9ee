// Package testutil provides test utilities for journal setup.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimwizard/internal/journal"
)

// NewJournalPath returns a journal database path inside the test's temp dir.
func NewJournalPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "journal.db")
}

// OpenJournal opens the journal at path and closes it when the test ends.
func OpenJournal(t *testing.T, path string, opts ...journal.Option) *journal.Journal {
	t.Helper()
	j, err := journal.Open(context.Background(), path, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}
