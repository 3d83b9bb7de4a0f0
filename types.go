package mdcore

import "github.com/markdown-neuraxis/mdcore/internal/markdown"

// Range is a half-open byte range [Start, End) in the document's buffer.
type Range struct {
	Start, End int
}

// Selection is a caret (Start == End) or a text selection.
type Selection = Range

// Cmd is the sum type of recognised editing intents. Each concrete type
// compiles to a Delta over the current buffer (see commands.go).
type Cmd interface {
	isCmd()
}

// InsertText inserts text at a single offset.
type InsertText struct {
	At   int
	Text string
}

// DeleteRange removes the bytes in Range.
type DeleteRange struct {
	Range Range
}

// ReplaceRange substitutes the bytes in Range with Text.
type ReplaceRange struct {
	Range Range
	Text  string
}

// SplitListItem inserts a newline, inherited indent, and inherited list
// marker at At. If the line At falls on is not a list item, it behaves
// as a bare newline insertion.
type SplitListItem struct {
	At int
}

// IndentLines prepends two spaces to every line Range touches.
type IndentLines struct {
	Range Range
}

// OutdentLines removes up to two leading spaces (never more) from every
// line Range touches.
type OutdentLines struct {
	Range Range
}

// ToggleMarker replaces (or inserts, if absent) the list marker at the
// first non-whitespace column of the line starting at LineStart.
type ToggleMarker struct {
	LineStart int
	To        markdown.ListMarkerKind
}

func (InsertText) isCmd()    {}
func (DeleteRange) isCmd()   {}
func (ReplaceRange) isCmd()  {}
func (SplitListItem) isCmd() {}
func (IndentLines) isCmd()   {}
func (OutdentLines) isCmd()  {}
func (ToggleMarker) isCmd()  {}

// Patch is the return value of Document.Apply: what changed, where the
// selection landed, and the document's version after the edit.
type Patch struct {
	ChangedRanges []Range
	NewSelection  Selection
	Version       uint64
}
