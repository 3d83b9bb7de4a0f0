package mdcore

import (
	"bytes"

	"github.com/markdown-neuraxis/mdcore/internal/markdown"
)

// lineStart returns the offset of the first byte of the line containing pos.
func lineStart(buf []byte, pos int) int {
	if pos > len(buf) {
		pos = len(buf)
	}
	i := bytes.LastIndexByte(buf[:pos], '\n')
	if i < 0 {
		return 0
	}

	return i + 1
}

// lineEnd returns the offset just past the last byte of the line
// containing pos, excluding its terminating newline.
func lineEnd(buf []byte, pos int) int {
	i := bytes.IndexByte(buf[pos:], '\n')
	if i < 0 {
		return len(buf)
	}

	return pos + i
}

// lineStartsTouching returns the start offset of every line overlapping
// [start, end); a zero-width caret still touches the line it sits on.
func lineStartsTouching(buf []byte, start, end int) []int {
	if end < start {
		end = start
	}

	var starts []int
	pos := lineStart(buf, start)
	for {
		starts = append(starts, pos)

		nl := bytes.IndexByte(buf[pos:], '\n')
		if nl < 0 {
			break // last line in the buffer
		}

		next := pos + nl + 1
		if next >= end {
			break // the following line starts at or after end: not touched
		}

		pos = next
	}

	return starts
}

// detectedMarker describes a list marker found at the start of a line's
// non-whitespace content.
type detectedMarker struct {
	kind    markdown.ListMarkerKind
	literal string // e.g. "- ", "42. "
}

// detectMarker scans the line beginning at indentEnd (the first
// non-whitespace byte) for a recognised list marker.
func detectMarker(buf []byte, indentEnd int) (detectedMarker, bool) {
	rest := buf[indentEnd:]
	if len(rest) >= 2 {
		switch rest[0] {
		case '-':
			if rest[1] == ' ' {
				return detectedMarker{kind: markdown.ListMarkerDash, literal: "- "}, true
			}
		case '*':
			if rest[1] == ' ' {
				return detectedMarker{kind: markdown.ListMarkerAsterisk, literal: "* "}, true
			}
		case '+':
			if rest[1] == ' ' {
				return detectedMarker{kind: markdown.ListMarkerPlus, literal: "+ "}, true
			}
		}
	}

	n := 0
	for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
		n++
	}
	if n > 0 && n+1 < len(rest) && rest[n] == '.' && rest[n+1] == ' ' {
		return detectedMarker{
			kind:    markdown.ListMarkerNumbered,
			literal: string(rest[:n]) + ". ",
		}, true
	}

	return detectedMarker{}, false
}

// indentOf returns the leading-whitespace byte count of the line starting
// at ls (spaces or tabs only; stops at the first non-whitespace byte).
func indentOf(buf []byte, ls int) int {
	i := ls
	for i < len(buf) && (buf[i] == ' ' || buf[i] == '\t') {
		i++
	}

	return i - ls
}

// detectIndentStyle scans src for the first non-blank line carrying
// leading whitespace and reports whether it uses tabs, and if not, how
// many leading spaces it used. Falls back to Spaces(2) when no indented
// line exists.
func detectIndentStyle(src []byte) (tabs bool, spaceUnit int) {
	for _, line := range bytes.Split(src, []byte{'\n'}) {
		trimmed := bytes.TrimLeft(line, " \t")
		if len(trimmed) == 0 {
			continue // blank line
		}
		if len(trimmed) == len(line) {
			continue // no leading whitespace
		}
		if line[0] == '\t' {
			return true, 0
		}

		n := 0
		for n < len(line) && line[n] == ' ' {
			n++
		}

		return false, n
	}

	return false, 2
}

// indentDepth converts a ListItem's leading-whitespace prefix length
// (indentBytes) into a nesting depth, using the document's detected
// indent style.
func indentDepth(indentBytes int, tabs bool, spaceUnit int) int {
	if tabs {
		return indentBytes
	}
	if spaceUnit <= 0 {
		spaceUnit = 2
	}

	return indentBytes / spaceUnit
}

func markerLiteral(kind markdown.ListMarkerKind) string {
	switch kind {
	case markdown.ListMarkerDash:
		return "- "
	case markdown.ListMarkerAsterisk:
		return "* "
	case markdown.ListMarkerPlus:
		return "+ "
	case markdown.ListMarkerNumbered:
		return "1. "
	default:
		return "- "
	}
}
