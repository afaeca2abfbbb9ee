package engine

// Columns are grapheme indices, not byte offsets: "e" followed by a combining accent is one
// column, and so is a ZWJ emoji sequence. The helpers below translate between the two.

import (
	"github.com/rivo/uniseg"
)

// GraphemeCount returns the number of grapheme clusters in a string.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// GraphemeAt returns the grapheme cluster at the given index, or "" when out of bounds.
func GraphemeAt(s string, graphemeIdx int) string {
	if graphemeIdx < 0 {
		return ""
	}

	idx := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		if idx == graphemeIdx {
			return cluster
		}
		idx++
		s = rest
		state = newState
	}
	return ""
}

// GraphemeToByteOffset converts a grapheme index to a byte offset.
// Returns 0 for indices <= 0 and len(s) for indices past the end.
func GraphemeToByteOffset(s string, graphemeIdx int) int {
	if graphemeIdx <= 0 {
		return 0
	}

	idx := 0
	state := -1
	original := s
	for len(s) > 0 {
		_, rest, _, newState := uniseg.StepString(s, state)
		idx++
		if idx == graphemeIdx {
			return len(original) - len(rest)
		}
		s = rest
		state = newState
	}
	return len(original)
}

// SliceByGraphemes returns the substring between grapheme indices start and end (exclusive).
func SliceByGraphemes(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		return ""
	}
	startByte := GraphemeToByteOffset(s, start)
	endByte := GraphemeToByteOffset(s, end)
	return s[startByte:endByte]
}

// InsertAtGrapheme inserts text at the given grapheme index.
func InsertAtGrapheme(s string, graphemeIdx int, insert string) string {
	byteOffset := GraphemeToByteOffset(s, graphemeIdx)
	return s[:byteOffset] + insert + s[byteOffset:]
}

// DeleteGraphemeRange deletes grapheme clusters from start to end (exclusive).
func DeleteGraphemeRange(s string, start, end int) string {
	startByte := GraphemeToByteOffset(s, start)
	endByte := GraphemeToByteOffset(s, end)
	if endByte < startByte {
		return s
	}
	return s[:startByte] + s[endByte:]
}

// graphemes splits a line into its clusters. Word motions scan this slice by index.
func graphemes(s string) []string {
	out := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		out = append(out, cluster)
		s = rest
		state = newState
	}
	return out
}
