package oracle

import (
	"context"
	"sync"

	"github.com/zjrosen/vimwizard/internal/level"
)

// PackLevels serves generated levels from a level pack, cycling through it in order.
// Replace swaps the pack atomically, so it can be hot-reloaded while the game runs.
type PackLevels struct {
	mu     sync.RWMutex
	levels []level.Level
}

// NewPackLevels serves the given levels.
func NewPackLevels(levels []level.Level) *PackLevels {
	p := &PackLevels{}
	p.Replace(levels)
	return p
}

// LoadPackLevels reads a pack file.
func LoadPackLevels(path string) (*PackLevels, error) {
	levels, err := level.LoadPack(path)
	if err != nil {
		return nil, err
	}
	return NewPackLevels(levels), nil
}

// GenerateLevel returns level n mod the pack size. The topic is ignored.
func (p *PackLevels) GenerateLevel(ctx context.Context, n int, _ string) (level.Level, error) {
	if err := ctx.Err(); err != nil {
		return level.Level{}, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if len(p.levels) == 0 {
		return level.Level{}, ErrNoLevels
	}
	n %= len(p.levels)
	if n < 0 {
		n += len(p.levels)
	}
	return p.levels[n], nil
}

// Replace swaps in a new set of levels.
func (p *PackLevels) Replace(levels []level.Level) {
	cp := make([]level.Level, len(levels))
	copy(cp, levels)

	p.mu.Lock()
	p.levels = cp
	p.mu.Unlock()
}

// Reload re-reads the pack file. On error the current levels stay in place.
func (p *PackLevels) Reload(path string) (int, error) {
	levels, err := level.LoadPack(path)
	if err != nil {
		return 0, err
	}
	p.Replace(levels)
	return len(levels), nil
}

// Len returns the number of levels in the pack.
func (p *PackLevels) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.levels)
}
