package presentation

import (
	"encoding/json"
	"io"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatLevels formats a list of levels as JSON
func (f *Formatter) FormatLevels(levels []LevelDTO) error {
	return f.encode(levels)
}

// FormatAttempts formats a list of journal attempts as JSON
func (f *Formatter) FormatAttempts(attempts []AttemptDTO) error {
	return f.encode(attempts)
}

// FormatReplay formats a replay result as JSON
func (f *Formatter) FormatReplay(replay ReplayDTO) error {
	return f.encode(replay)
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
