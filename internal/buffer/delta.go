package buffer

import "bytes"

// OpKind distinguishes the two element kinds a Delta program is built from.
type OpKind int

const (
	// OpCopy retains bytes [From, To) of the base buffer.
	OpCopy OpKind = iota
	// OpInsert inserts Text at the current output position.
	OpInsert
)

// Op is a single element of a Delta program.
type Op struct {
	Kind OpKind
	From int // valid for OpCopy
	To   int // valid for OpCopy
	Text []byte
}

// Copy builds a retain-range element.
func Copy(from, to int) Op {
	return Op{Kind: OpCopy, From: from, To: to}
}

// Insert builds an insertion element.
func Insert(text []byte) Op {
	return Op{Kind: OpInsert, Text: text}
}

// Delta is an ordered copy/insert program over a buffer whose length is
// BaseLen. The From values of successive Copy elements are non-decreasing;
// the final Copy's To may be less than BaseLen (a trailing delete).
type Delta struct {
	BaseLen int
	Ops     []Op
}

// HasInsert reports whether the delta contains at least one Insert element.
// Per the apply pipeline's failure semantics, a delta with no inserts is a
// pure-copy (no-op or pure deletion is still meaningful, but a delta with
// zero Insert elements and full retention is rejected by command compilers
// as carrying nothing new to version).
func (d Delta) HasInsert() bool {
	for _, op := range d.Ops {
		if op.Kind == OpInsert {
			return true
		}
	}

	return false
}

// apply executes the program against base and returns the resulting bytes.
// Complexity is O(k + d) in the size of the program and the output; callers
// needing the stricter O((k+d) log n) bound documented in the specification
// should back this by a rope rather than a flat byte slice (see DESIGN.md).
func (d Delta) apply(base []byte) []byte {
	var out bytes.Buffer
	out.Grow(d.outputLenEstimate())

	for _, op := range d.Ops {
		switch op.Kind {
		case OpCopy:
			out.Write(clampSlice(base, op.From, op.To))
		case OpInsert:
			out.Write(op.Text)
		}
	}

	return out.Bytes()
}

func (d Delta) outputLenEstimate() int {
	n := 0
	for _, op := range d.Ops {
		switch op.Kind {
		case OpCopy:
			if op.To > op.From {
				n += op.To - op.From
			}
		case OpInsert:
			n += len(op.Text)
		}
	}

	return n
}

// ChangedRanges returns the post-delta byte ranges produced by Insert
// elements, in output (post-delta) coordinates.
func (d Delta) ChangedRanges() [][2]int {
	var ranges [][2]int
	outPos := 0

	for _, op := range d.Ops {
		switch op.Kind {
		case OpCopy:
			if op.To > op.From {
				outPos += op.To - op.From
			}
		case OpInsert:
			start := outPos
			outPos += len(op.Text)
			ranges = append(ranges, [2]int{start, outPos})
		}
	}

	return ranges
}

// Point is a zero-based row/column position, used for incremental-parser
// edit coordinates.
type Point struct {
	Row, Col int
}

// Edit is a single tree-edit record in the pre-delta buffer's coordinate
// system, per the delta-to-edit translation contract.
type Edit struct {
	StartByte   int
	OldEndByte  int
	NewEndByte  int
	StartPoint  Point
	OldEndPoint Point
	NewEndPoint Point
}

// Edits translates the delta into the ordered edit records the parser must
// be notified of, computed entirely against oldSource (the pre-delta
// buffer). This must be called, and its result consumed, before the delta
// is applied to the buffer; reversing that order corrupts the coordinates.
func (d Delta) Edits(oldSource []byte) []Edit {
	var edits []Edit
	oldCursor := 0

	emitGap := func(from, to int) {
		if to <= from {
			return
		}
		edits = append(edits, Edit{
			StartByte:   from,
			OldEndByte:  to,
			NewEndByte:  from,
			StartPoint:  pointAt(oldSource, from),
			OldEndPoint: pointAt(oldSource, to),
			NewEndPoint: pointAt(oldSource, from),
		})
	}

	for _, op := range d.Ops {
		switch op.Kind {
		case OpCopy:
			if op.From > oldCursor {
				emitGap(oldCursor, op.From)
			}
			oldCursor = op.To
		case OpInsert:
			start := pointAt(oldSource, oldCursor)
			edits = append(edits, Edit{
				StartByte:   oldCursor,
				OldEndByte:  oldCursor,
				NewEndByte:  oldCursor + len(op.Text),
				StartPoint:  start,
				OldEndPoint: start,
				NewEndPoint: advancePoint(start, op.Text),
			})
		}
	}

	if oldCursor < d.BaseLen {
		emitGap(oldCursor, d.BaseLen)
	}

	return edits
}

// pointAt scans oldSource from the beginning to compute the row/column of
// offset. Rows and columns are both zero-based; column counts bytes since
// the last newline.
func pointAt(source []byte, offset int) Point {
	row, lineStart := 0, 0
	limit := offset
	if limit > len(source) {
		limit = len(source)
	}

	for i := 0; i < limit; i++ {
		if source[i] == '\n' {
			row++
			lineStart = i + 1
		}
	}

	return Point{Row: row, Col: offset - lineStart}
}

// advancePoint computes the point reached after writing text starting at
// start, accounting for embedded newlines.
func advancePoint(start Point, text []byte) Point {
	row := start.Row
	col := start.Col
	lineStart := 0

	for i, b := range text {
		if b == '\n' {
			row++
			lineStart = i + 1
		}
	}

	if bytes.IndexByte(text, '\n') == -1 {
		return Point{Row: row, Col: col + len(text)}
	}

	return Point{Row: row, Col: len(text) - lineStart}
}
