// Package mdcore implements a Markdown editing engine: a byte buffer, an
// incremental parser, an anchor registry that preserves block identity
// across edits, and a command engine that projects read-only snapshots
// for UI consumption.
package mdcore

import (
	"bytes"
	"unicode/utf8"

	"github.com/markdown-neuraxis/mdcore/internal/anchor"
	"github.com/markdown-neuraxis/mdcore/internal/buffer"
	"github.com/markdown-neuraxis/mdcore/internal/markdown"
)

// Document is a single-writer value: the engine spawns no background
// tasks and holds no internal locks. Callers must serialize Apply calls
// against each other and against reads if they need a consistent view.
type Document struct {
	buf       *buffer.Buffer
	tree      markdown.Node
	registry  *anchor.Registry
	selection Selection
	version   uint64
	lastFail  *ParseFailureError

	// indentTabs/indentUnit record the indent style detected once at
	// load, used only to convert a ListItem's leading-whitespace prefix
	// into a nesting depth.
	indentTabs bool
	indentUnit int
}

// FromBytes constructs a Document from raw bytes. It returns
// *ErrInvalidUTF8 if b is not valid UTF-8; no partial Document is
// produced in that case.
func FromBytes(b []byte) (*Document, error) {
	if off := firstInvalidUTF8(b); off >= 0 {
		return nil, &ErrInvalidUTF8{Offset: off}
	}

	owned := make([]byte, len(b))
	copy(owned, b)

	tree, errs := markdown.Parse(owned)

	tabs, unit := detectIndentStyle(owned)

	doc := &Document{
		buf:        buffer.New(owned),
		tree:       tree,
		registry:   anchor.NewRegistry(),
		indentTabs: tabs,
		indentUnit: unit,
	}
	doc.registry.InitializeFromTree(tree)

	if len(errs) > 0 {
		doc.lastFail = newParseFailure(parseErrsToErrors(errs))
	}

	return doc, nil
}

func firstInvalidUTF8(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}

	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}

	return 0
}

func parseErrsToErrors(errs []markdown.ParseError) []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}

	return out
}

// ToBytes returns the document's current bytes. The exact input byte
// sequence is always recoverable this way (byte round-trip).
func (d *Document) ToBytes() []byte {
	out := make([]byte, d.buf.Len())
	copy(out, d.buf.Bytes())

	return out
}

// Text returns the document's current contents as a string.
func (d *Document) Text() string {
	return string(d.buf.Bytes())
}

// Selection returns the current selection.
func (d *Document) Selection() Selection {
	return d.selection
}

// SetSelection sets the current selection, clamping it to the buffer.
func (d *Document) SetSelection(s Selection) {
	n := d.buf.Len()
	d.selection = clampSelection(s, n)
}

func clampSelection(s Selection, n int) Selection {
	start := clampOffset(s.Start, n)
	end := clampOffset(s.End, n)
	if end < start {
		end = start
	}

	return Selection{Start: start, End: end}
}

func clampOffset(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}

	return v
}

// Version returns the number of successful Apply calls so far.
func (d *Document) Version() uint64 {
	return d.version
}

// LastParseFailure returns the parse errors reported by the most recent
// parse of the buffer, or nil when that parse reported none. Apply does
// not return this error; it is only available here.
func (d *Document) LastParseFailure() *ParseFailureError {
	return d.lastFail
}

// CreateAnchorsFromTree adds anchors for any anchorable block the current
// tree holds with none yet. Idempotent and safe to call at any time.
func (d *Document) CreateAnchorsFromTree() {
	d.registry.CreateMissing(d.tree)
}

// Apply runs the full command pipeline: compile, edit-translate, mutate,
// reparse, rebind anchors, transform the selection, and bump the version.
// The steps below are numbered per the pipeline's ordering contract;
// steps 3 and 4 must complete before step 5 mutates the buffer.
func (d *Document) Apply(cmd Cmd) (Patch, error) {
	oldBuf := d.buf.Bytes()

	// 1. Compile Cmd -> Delta.
	cmdEdits, delta, err := compileCmd(oldBuf, cmd)
	if err != nil {
		return Patch{}, err
	}

	// 2. Post-delta ranges produced by Insert elements.
	changedRanges := delta.ChangedRanges()

	// 3. Edits in the old buffer's coordinate system, computed before the
	// buffer is mutated.
	parserEdits := delta.Edits(oldBuf)

	// 4. Notify the parser. This parser reparses by diffing old/new
	// source directly (see internal/markdown's incremental parser)
	// rather than replaying tree-sitter-style edit records, so there is
	// no stateful tree to notify; parserEdits exists to preserve the
	// pipeline's coordinate-computation-before-mutation contract and is
	// available to callers that bridge to an edit-record-based parser.
	_ = parserEdits

	// 5. Apply the delta to the buffer.
	newBuf := d.buf.Apply(delta)
	newBytes := newBuf.Bytes()

	if bytes.Equal(newBytes, oldBuf) {
		return Patch{NewSelection: d.selection, Version: d.version}, nil
	}

	wasEmpty := len(oldBuf) == 0

	// 6. Reparse the new buffer (ParseIncremental parses it in full).
	newTree, parseErrs := markdown.ParseIncremental(d.tree, oldBuf, newBytes)
	if newTree == nil {
		newTree = fallbackUnhandledTree(newBytes)
		d.registry = anchor.NewRegistry()
	}
	if len(parseErrs) > 0 {
		d.lastFail = newParseFailure(parseErrsToErrors(parseErrs))
	} else {
		d.lastFail = nil
	}

	// 7. Transform anchors through the delta (INVARIANT B).
	d.registry.Transform(delta)

	// 8. Rebind anchors against the new tree (INVARIANT C).
	d.registry.Rebind(newTree, changedRanges)

	// 9. A fresh document's very first insertion seeds anchors directly.
	if wasEmpty && len(changedRanges) > 0 && changedRanges[0][0] == 0 {
		d.registry.CreateMissing(newTree)
	}

	// 10. Transform the selection through the command.
	newSelection := clampSelection(transformSelection(cmd, cmdEdits, d.selection), len(newBytes))

	// 11. Commit and increment version.
	d.buf = newBuf
	d.tree = newTree
	d.selection = newSelection
	d.version++

	return Patch{
		ChangedRanges: toRanges(changedRanges),
		NewSelection:  newSelection,
		Version:       d.version,
	}, nil
}

func toRanges(pairs [][2]int) []Range {
	if len(pairs) == 0 {
		return nil
	}
	out := make([]Range, len(pairs))
	for i, p := range pairs {
		out[i] = Range{Start: p[0], End: p[1]}
	}

	return out
}

// fallbackUnhandledTree builds the degraded single-node tree the engine
// falls back to when even a full reparse cannot produce one.
func fallbackUnhandledTree(src []byte) markdown.Node {
	return markdown.NewNodeBuilder(markdown.NodeTypeUnhandled).
		WithStart(0).
		WithEnd(len(src)).
		WithSource(src).
		WithHandle(1).
		Build()
}

// Clone produces an independent copy whose anchors are regenerated
// against a freshly parsed tree; node handles and AnchorIds do not
// survive cloning (see the concurrency/sharing policy).
func (d *Document) Clone() *Document {
	owned := make([]byte, d.buf.Len())
	copy(owned, d.buf.Bytes())

	tree, errs := markdown.Parse(owned)

	clone := &Document{
		buf:        buffer.New(owned),
		tree:       tree,
		registry:   anchor.NewRegistry(),
		selection:  d.selection,
		version:    d.version,
		indentTabs: d.indentTabs,
		indentUnit: d.indentUnit,
	}
	clone.registry.InitializeFromTree(tree)

	if len(errs) > 0 {
		clone.lastFail = newParseFailure(parseErrsToErrors(errs))
	}

	return clone
}
