// Package log is the trainer's structured debug log. Entries go to a file and are fanned out
// to pub/sub listeners. Nothing is written until Init or SetOutput is called, which the CLI
// does only with --debug or VIMWIZARD_DEBUG set.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/vimwizard/internal/pubsub"
)

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config value such as "warn" to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelDebug, fmt.Errorf("unknown log level %q", s)
	}
}

// Category groups related log messages.
type Category string

const (
	CatGame    Category = "game"    // Session lifecycle, wins, resets
	CatLevel   Category = "level"   // Level packs and validation
	CatOracle  Category = "oracle"  // Level generation and wizard dialogue
	CatJournal Category = "journal" // SQLite attempt journal
	CatConfig  Category = "config"  // Configuration loading/saving
	CatWatcher Category = "watcher" // Level pack file watcher
	CatUI      Category = "ui"      // Terminal shell
	CatCache   Category = "cache"   // Cache operations
	CatTrace   Category = "trace"   // Tracing provider
)

// Logger writes formatted entries and publishes them.
type Logger struct {
	mu       sync.Mutex
	closer   io.Closer
	writer   io.Writer
	enabled  bool
	minLevel Level
	broker   *pubsub.Broker[string]
}

var (
	mu            sync.RWMutex
	defaultLogger *Logger
)

func install(w io.Writer, c io.Closer) func() {
	l := &Logger{
		closer:   c,
		writer:   w,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   pubsub.NewBroker[string](),
	}

	mu.Lock()
	prev := defaultLogger
	defaultLogger = l
	mu.Unlock()

	if prev != nil {
		prev.broker.Close()
	}

	return func() {
		mu.Lock()
		if defaultLogger == l {
			defaultLogger = nil
		}
		mu.Unlock()
		l.broker.Close()
		if l.closer != nil {
			_ = l.closer.Close()
		}
	}
}

// Init opens path for appending and routes the log there.
// The returned function closes the file.
func Init(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) //nolint:gosec // G304: debug log path from the user
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return install(f, f), nil
}

// InitWithTeaLog routes the log through tea.LogToFile so Bubble Tea's own messages land in
// the same file.
func InitWithTeaLog(path, prefix string) (func(), error) {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return install(f, f), nil
}

// SetOutput routes the log to w. Tests use it to capture entries.
func SetOutput(w io.Writer) func() {
	return install(w, nil)
}

// SetEnabled toggles logging on or off.
func SetEnabled(enabled bool) {
	withLogger(func(l *Logger) { l.enabled = enabled })
}

// SetMinLevel drops entries below level.
func SetMinLevel(level Level) {
	withLogger(func(l *Logger) { l.minLevel = level })
}

func withLogger(fn func(*Logger)) {
	mu.RLock()
	l := defaultLogger
	mu.RUnlock()
	if l == nil {
		return
	}
	l.mu.Lock()
	fn(l)
	l.mu.Unlock()
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	write(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	write(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	write(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	write(LevelError, cat, msg, fields...)
}

// ErrorErr logs at error level with err appended as the "error" field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	errText := "<nil>"
	if err != nil {
		errText = err.Error()
	}
	write(LevelError, cat, msg, append(fields, "error", errText)...)
}

func write(level Level, cat Category, msg string, fields ...any) {
	mu.RLock()
	l := defaultLogger
	mu.RUnlock()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || level < l.minLevel {
		return
	}

	// 2026-01-02T15:04:05 [WARN] [oracle] message key=value
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", time.Now().Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}
	b.WriteByte('\n')
	entry := b.String()

	if l.writer != nil {
		_, _ = io.WriteString(l.writer, entry)
	}
	l.broker.Publish(pubsub.LogEntry, entry)
}

// LogEvent is a published log entry.
type LogEvent = pubsub.Event[string]

// LogListener receives log entries until its context is cancelled.
type LogListener = pubsub.ContinuousListener[string]

// NewListener subscribes to log entries. It returns nil when logging is not initialised.
func NewListener(ctx context.Context) *LogListener {
	mu.RLock()
	l := defaultLogger
	mu.RUnlock()
	if l == nil {
		return nil
	}
	return pubsub.NewContinuousListener(ctx, l.broker)
}
