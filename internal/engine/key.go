package engine

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Key identifies a single logical keystroke: either one printable character ("h", "$", " ")
// or a named key such as KeyEscape.
type Key string

// Named keys understood by the engine. Any other multi-character name is accepted and ignored.
const (
	KeyEscape    Key = "Escape"
	KeyBackspace Key = "Backspace"
	KeyEnter     Key = "Enter"
)

// Modifiers records which modifier keys were held. They only suppress literal insertion.
type Modifiers struct {
	Ctrl bool
	Alt  bool
	Meta bool
}

// Any reports whether any modifier is held.
func (m Modifiers) Any() bool {
	return m.Ctrl || m.Alt || m.Meta
}

// Keystroke is a key together with the modifiers held when it was pressed.
type Keystroke struct {
	Key  Key
	Mods Modifiers
}

// IsPrintable reports whether the key is a single printable character that may be inserted
// as text. Named keys, control characters and multi-grapheme strings are not printable.
func (k Key) IsPrintable() bool {
	s := string(k)
	if s == "" || uniseg.GraphemeClusterCount(s) != 1 {
		return false
	}
	for i, r := range s {
		if unicode.IsControl(r) || (i == 0 && !unicode.IsGraphic(r)) {
			return false
		}
	}
	return true
}

// KeySet is the per-level allowed-key filter. A nil KeySet permits every key; an empty
// non-nil KeySet permits none.
type KeySet map[Key]struct{}

// NewKeySet builds a KeySet from key identifiers.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[Key(k)] = struct{}{}
	}
	return s
}

// Allows reports whether the filter permits the key.
func (s KeySet) Allows(k Key) bool {
	if s == nil {
		return true
	}
	_, ok := s[k]
	return ok
}

// Keys returns the members as strings, in no particular order.
func (s KeySet) Keys() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, string(k))
	}
	return out
}
