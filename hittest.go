package mdcore

import (
	"github.com/markdown-neuraxis/mdcore/internal/anchor"
	"github.com/markdown-neuraxis/mdcore/internal/markdown"
)

// Locate pairs an anchored block with a byte offset relative to that
// block's content_range.
type Locate struct {
	ID     anchor.ID
	Offset int
}

// LocateInBlock resolves a document-wide byte offset to the anchor of
// its enclosing block and an offset relative to that block's
// content_range, saturating at 0 for offsets before content_range.Start.
// Returns the zero Locate and false if offset falls outside any
// anchorable block.
func (d *Document) LocateInBlock(offset int) (Locate, bool) {
	n := d.enclosingAnchorable(offset)
	if n == nil {
		return Locate{}, false
	}

	start, end := ownRangeOf(n)
	id := d.blockID(n, start, end)
	content := blockContentRange(n, d.buf.Bytes())

	local := offset - content.Start
	if local < 0 {
		local = 0
	}

	return Locate{ID: id, Offset: local}, true
}

// Describe extends LocateInBlock with the line/column of offset within
// the block's content text (both zero-based, relative to content_range).
type Describe struct {
	Locate
	Line int
	Col  int
}

// DescribePoint is LocateInBlock plus the local line/column the offset
// falls on within the block's content text.
func (d *Document) DescribePoint(offset int) (Describe, bool) {
	n := d.enclosingAnchorable(offset)
	if n == nil {
		return Describe{}, false
	}

	start, end := ownRangeOf(n)
	id := d.blockID(n, start, end)
	content := blockContentRange(n, d.buf.Bytes())

	clamped := offset
	if clamped < content.Start {
		clamped = content.Start
	}
	if clamped > content.End {
		clamped = content.End
	}

	line, col := localLineCol(d.buf.Bytes(), content.Start, clamped)

	return Describe{
		Locate: Locate{ID: id, Offset: clamped - content.Start},
		Line:   line,
		Col:    col,
	}, true
}

// enclosingAnchorable finds the innermost anchorable block containing
// offset by walking the current tree, in the manner of
// PositionIndex.EnclosingAnchorable. Unlike that query, a node's end
// offset counts as inside it, so a caret just past a block's last byte
// still resolves to that block; where two blocks of the same depth both
// qualify, the earlier one wins.
func (d *Document) enclosingAnchorable(offset int) markdown.Node {
	var best markdown.Node
	bestDepth := -1

	var walk func(n markdown.Node, depth int)
	walk = func(n markdown.Node, depth int) {
		if n == nil {
			return
		}
		start, end := n.Span()
		if offset < start || offset > end {
			return // offset sits outside this node's span entirely
		}
		if markdown.IsAnchorableBlock(n) && depth > bestDepth {
			best, bestDepth = n, depth
		}
		for _, c := range n.Children() {
			walk(c, depth+1)
		}
	}
	walk(d.tree, 0)

	return best
}

// blockContentRange recomputes a block's content_range the same way
// Document.Snapshot does, without materialising the rest of the
// RenderBlock.
func blockContentRange(n markdown.Node, buf []byte) Range {
	start, end := ownRangeOf(n)

	switch t := n.(type) {
	case *markdown.NodeHeading:
		return headingContentRange(buf, start, end)
	case *markdown.NodeListItem:
		return listItemContentRange(buf, start, end, t.IndentBytes())
	case *markdown.NodeFencedCode:
		return fencedCodeContentRange(buf, start, end)
	default:
		return trimTrailingNewline(buf, start, end)
	}
}

// localLineCol computes the zero-based line and column of offset within
// buf[contentStart:], counting newlines from contentStart forward.
func localLineCol(buf []byte, contentStart, offset int) (line, col int) {
	for i := contentStart; i < offset; i++ {
		if buf[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}

	return line, col
}
