package level

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// SegmentKind classifies a run of text in a preview line.
type SegmentKind int

const (
	// SegmentMatch is text present in both the buffer and the target.
	SegmentMatch SegmentKind = iota
	// SegmentMissing is target text the buffer still lacks.
	SegmentMissing
	// SegmentExtra is buffer text the target does not have.
	SegmentExtra
)

// Segment is a run of text with its diff status.
type Segment struct {
	Kind SegmentKind
	Text string
}

// PreviewLine compares one target line with the buffer line at the same row.
type PreviewLine struct {
	Target   string
	Segments []Segment
	Done     bool
}

// Preview compares the buffer with the target line by line. Rows past the end of either side
// compare against the empty string.
func Preview(buffer, target []string) []PreviewLine {
	dmp := diffmatchpatch.New()

	n := max(len(buffer), len(target))
	out := make([]PreviewLine, 0, n)
	for i := range n {
		var have, want string
		if i < len(buffer) {
			have = buffer[i]
		}
		if i < len(target) {
			want = target[i]
		}

		line := PreviewLine{Target: want, Done: have == want}
		if line.Done {
			line.Segments = []Segment{{Kind: SegmentMatch, Text: want}}
			out = append(out, line)
			continue
		}

		diffs := dmp.DiffMain(have, want, false)
		diffs = dmp.DiffCleanupSemantic(diffs)
		for _, d := range diffs {
			if d.Text == "" {
				continue
			}
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				line.Segments = append(line.Segments, Segment{Kind: SegmentMatch, Text: d.Text})
			case diffmatchpatch.DiffInsert:
				line.Segments = append(line.Segments, Segment{Kind: SegmentMissing, Text: d.Text})
			case diffmatchpatch.DiffDelete:
				line.Segments = append(line.Segments, Segment{Kind: SegmentExtra, Text: d.Text})
			}
		}
		out = append(out, line)
	}
	return out
}

// Remaining counts the preview lines that do not yet match.
func Remaining(lines []PreviewLine) int {
	n := 0
	for _, l := range lines {
		if !l.Done {
			n++
		}
	}
	return n
}
