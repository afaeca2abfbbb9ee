package level

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// packFile is the on-disk shape of a level pack.
type packFile struct {
	Levels []packLevel `yaml:"levels"`
}

type packLevel struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Start       []string `yaml:"start"`
	Goal        packGoal `yaml:"goal"`
	AllowedKeys []string `yaml:"allowed_keys,omitempty"`
	Hints       []string `yaml:"hints,omitempty"`
	Intro       string   `yaml:"intro,omitempty"`
	Success     string   `yaml:"success,omitempty"`
}

type packGoal struct {
	Lines  []string    `yaml:"lines,omitempty"`
	Cursor *packCursor `yaml:"cursor,omitempty"`
}

type packCursor struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// LoadPack reads and parses a YAML level pack.
func LoadPack(path string) ([]Level, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from user config
	if err != nil {
		return nil, fmt.Errorf("reading level pack: %w", err)
	}
	levels, err := ParsePack(data)
	if err != nil {
		return nil, fmt.Errorf("parsing level pack %s: %w", path, err)
	}
	return levels, nil
}

// ParsePack decodes a level pack. Levels are numbered from 1 in file order and completed
// with defaults; every level must validate.
func ParsePack(data []byte) ([]Level, error) {
	var pf packFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, err
	}
	if len(pf.Levels) == 0 {
		return nil, errors.New("pack has no levels")
	}

	levels := make([]Level, 0, len(pf.Levels))
	for i, pl := range pf.Levels {
		goal, err := pl.Goal.toGoal()
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", i+1, err)
		}
		l := WithDefaults(Level{
			Title:       pl.Title,
			Description: pl.Description,
			Start:       pl.Start,
			Goal:        goal,
			AllowedKeys: pl.AllowedKeys,
			Hints:       pl.Hints,
			Intro:       pl.Intro,
			Success:     pl.Success,
		}, i+1)
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("level %d: %w", i+1, err)
		}
		levels = append(levels, l)
	}
	return levels, nil
}

func (g packGoal) toGoal() (Goal, error) {
	switch {
	case g.Cursor != nil && len(g.Lines) > 0:
		return nil, fmt.Errorf("%w: goal sets both lines and cursor", ErrInvalid)
	case g.Cursor != nil:
		return CursorAtPosition(g.Cursor.Row, g.Cursor.Col), nil
	case len(g.Lines) > 0:
		return ExactText{Lines: g.Lines}, nil
	default:
		return nil, fmt.Errorf("%w: goal needs lines or cursor", ErrInvalid)
	}
}

// MarshalPack encodes levels as a YAML level pack. CursorAt goals other than those built by
// CursorAtPosition cannot be encoded and are rejected.
func MarshalPack(levels []Level) ([]byte, error) {
	pf := packFile{Levels: make([]packLevel, 0, len(levels))}
	for _, l := range levels {
		pl := packLevel{
			Title:       l.Title,
			Description: l.Description,
			Start:       l.Start,
			AllowedKeys: l.AllowedKeys,
			Hints:       l.Hints,
			Intro:       l.Intro,
			Success:     l.Success,
		}
		switch g := l.Goal.(type) {
		case ExactText:
			pl.Goal.Lines = g.Lines
		case CursorAt:
			row, col, ok := g.position()
			if !ok {
				return nil, fmt.Errorf("level %q: cursor predicate cannot be encoded", l.Title)
			}
			pl.Goal.Cursor = &packCursor{Row: row, Col: col}
		default:
			return nil, fmt.Errorf("level %q: unknown goal type %T", l.Title, l.Goal)
		}
		pf.Levels = append(pf.Levels, pl)
	}
	return yaml.Marshal(pf)
}
