package anchor

import "github.com/markdown-neuraxis/mdcore/internal/buffer"

// Bias selects which side of an insertion boundary an anchor endpoint
// sticks to when the insertion lands exactly on it.
type Bias int

const (
	// Before means an insertion exactly at the offset does not extend
	// the anchor: the offset stays put, ahead of the inserted text.
	Before Bias = iota
	// After means an insertion exactly at the offset pushes the anchor
	// forward, past the inserted text.
	After
)

type segment struct {
	oldStart, oldEnd int
	newStart, newEnd int
	isInsert         bool
}

func buildSegments(d buffer.Delta) []segment {
	var segs []segment
	oldCursor, newCursor := 0, 0

	for _, op := range d.Ops {
		switch op.Kind {
		case buffer.OpCopy:
			if op.From > oldCursor {
				segs = append(segs, segment{oldStart: oldCursor, oldEnd: op.From, newStart: newCursor, newEnd: newCursor})
			}
			length := op.To - op.From
			if length < 0 {
				length = 0
			}
			segs = append(segs, segment{oldStart: op.From, oldEnd: op.To, newStart: newCursor, newEnd: newCursor + length})
			newCursor += length
			oldCursor = op.To
		case buffer.OpInsert:
			segs = append(segs, segment{oldStart: oldCursor, oldEnd: oldCursor, newStart: newCursor, newEnd: newCursor + len(op.Text), isInsert: true})
			newCursor += len(op.Text)
		}
	}

	if oldCursor < d.BaseLen {
		segs = append(segs, segment{oldStart: oldCursor, oldEnd: d.BaseLen, newStart: newCursor, newEnd: newCursor})
	}

	return segs
}

// transformOffset maps an old-buffer offset through delta to its new-buffer
// position, honoring bias at exact insertion boundaries.
func transformOffset(d buffer.Delta, offset int, bias Bias) int {
	segs := buildSegments(d)

	finalNew := 0
	for _, s := range segs {
		if s.isInsert {
			if offset == s.oldStart {
				if bias == After {
					return s.newEnd
				}

				return s.newStart
			}

			finalNew = s.newEnd

			continue
		}

		if offset >= s.oldStart && offset < s.oldEnd {
			if s.newEnd > s.newStart {
				return s.newStart + (offset - s.oldStart)
			}

			return s.newStart
		}

		finalNew = s.newEnd
	}

	return finalNew
}
