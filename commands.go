package mdcore

import "github.com/markdown-neuraxis/mdcore/internal/buffer"

// edit is one point- or range-level change: delete buf[Start:End) (which
// may be empty) and insert Insert at that point, in document order.
type edit struct {
	Start, End int
	Insert     []byte
}

// buildDelta turns a document-ordered, non-overlapping list of edits into
// an ordered Copy/Insert program over a buffer of length bufLen.
func buildDelta(bufLen int, edits []edit) buffer.Delta {
	var ops []buffer.Op
	cursor := 0

	for _, e := range edits {
		if e.Start > cursor {
			ops = append(ops, buffer.Copy(cursor, e.Start))
		}
		if len(e.Insert) > 0 {
			ops = append(ops, buffer.Insert(e.Insert))
		}
		cursor = e.End
	}
	if cursor < bufLen {
		ops = append(ops, buffer.Copy(cursor, bufLen))
	}

	return buffer.Delta{BaseLen: bufLen, Ops: ops}
}

func validRange(r Range, bufLen int) bool {
	return r.Start >= 0 && r.End >= r.Start && r.End <= bufLen
}

func validOffset(at, bufLen int) bool {
	return at >= 0 && at <= bufLen
}

// compileCmd compiles cmd into its edit list and the Delta built from it.
// It returns *ErrInvalidRange for any command whose offsets are out of
// bounds or reversed; the caller must leave the document unchanged then.
func compileCmd(buf []byte, cmd Cmd) ([]edit, buffer.Delta, error) {
	bufLen := len(buf)

	switch c := cmd.(type) {
	case InsertText:
		if !validOffset(c.At, bufLen) {
			return nil, buffer.Delta{}, &ErrInvalidRange{Start: c.At, End: c.At, BufferLen: bufLen}
		}

		edits := []edit{{Start: c.At, End: c.At, Insert: []byte(c.Text)}}

		return edits, buildDelta(bufLen, edits), nil

	case DeleteRange:
		if !validRange(c.Range, bufLen) {
			return nil, buffer.Delta{}, &ErrInvalidRange{Start: c.Range.Start, End: c.Range.End, BufferLen: bufLen}
		}

		edits := []edit{{Start: c.Range.Start, End: c.Range.End}}

		return edits, buildDelta(bufLen, edits), nil

	case ReplaceRange:
		if !validRange(c.Range, bufLen) {
			return nil, buffer.Delta{}, &ErrInvalidRange{Start: c.Range.Start, End: c.Range.End, BufferLen: bufLen}
		}

		edits := []edit{{Start: c.Range.Start, End: c.Range.End, Insert: []byte(c.Text)}}

		return edits, buildDelta(bufLen, edits), nil

	case SplitListItem:
		if !validOffset(c.At, bufLen) {
			return nil, buffer.Delta{}, &ErrInvalidRange{Start: c.At, End: c.At, BufferLen: bufLen}
		}

		edits := []edit{{Start: c.At, End: c.At, Insert: splitListItemText(buf, c.At)}}

		return edits, buildDelta(bufLen, edits), nil

	case IndentLines:
		if !validRange(c.Range, bufLen) {
			return nil, buffer.Delta{}, &ErrInvalidRange{Start: c.Range.Start, End: c.Range.End, BufferLen: bufLen}
		}

		var edits []edit
		for _, ls := range lineStartsTouching(buf, c.Range.Start, c.Range.End) {
			edits = append(edits, edit{Start: ls, End: ls, Insert: []byte("  ")})
		}

		return edits, buildDelta(bufLen, edits), nil

	case OutdentLines:
		if !validRange(c.Range, bufLen) {
			return nil, buffer.Delta{}, &ErrInvalidRange{Start: c.Range.Start, End: c.Range.End, BufferLen: bufLen}
		}

		var edits []edit
		for _, ls := range lineStartsTouching(buf, c.Range.Start, c.Range.End) {
			n := 0
			for n < 2 && ls+n < bufLen && buf[ls+n] == ' ' {
				n++
			}
			if n > 0 {
				edits = append(edits, edit{Start: ls, End: ls + n})
			}
		}

		return edits, buildDelta(bufLen, edits), nil

	case ToggleMarker:
		if !validOffset(c.LineStart, bufLen) {
			return nil, buffer.Delta{}, &ErrInvalidRange{Start: c.LineStart, End: c.LineStart, BufferLen: bufLen}
		}
		ls := lineStart(buf, c.LineStart)
		indentEnd := ls + indentOf(buf, ls)
		newMarker := []byte(markerLiteral(c.To))

		var edits []edit
		if m, ok := detectMarker(buf, indentEnd); ok {
			edits = []edit{{Start: indentEnd, End: indentEnd + len(m.literal), Insert: newMarker}}
		} else {
			edits = []edit{{Start: indentEnd, End: indentEnd, Insert: newMarker}}
		}

		return edits, buildDelta(bufLen, edits), nil

	default:
		return nil, buffer.Delta{}, &ErrInvalidRange{}
	}
}

// splitListItemText builds the text SplitListItem inserts at at: a
// newline plus the inherited indent and marker of at's line, or a bare
// newline if that line is not a list item.
func splitListItemText(buf []byte, at int) []byte {
	ls := lineStart(buf, at)
	indentEnd := ls + indentOf(buf, ls)

	m, ok := detectMarker(buf, indentEnd)
	if !ok {
		return []byte("\n")
	}

	out := make([]byte, 0, 1+(indentEnd-ls)+len(m.literal))
	out = append(out, '\n')
	out = append(out, buf[ls:indentEnd]...)
	out = append(out, []byte(m.literal)...)

	return out
}
