//nolint:revive // max-public-structs - node types intentionally public for AST API
package markdown

// NodeDocument is the root node of an AST.
// It contains all top-level block nodes from the parsed document.
type NodeDocument struct {
	baseNode
}

// Equal performs deep structural comparison with another node.
func (n *NodeDocument) Equal(other Node) bool {
	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeDocument) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// NodeSection is a pure container grouping an ATX heading with the
// content that follows it until the next heading of equal or shallower
// level. Sections are never anchorable (§3).
type NodeSection struct {
	baseNode
}

// Equal performs deep structural comparison with another node.
func (n *NodeSection) Equal(other Node) bool {
	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeSection) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// NodeHeading represents an ATX-style header (H1-H6).
type NodeHeading struct {
	baseNode
	level int
}

// Level returns the header level (1-6).
func (n *NodeHeading) Level() int {
	return n.level
}

// Equal performs deep structural comparison with another node.
func (n *NodeHeading) Equal(other Node) bool {
	if other == nil {
		return false
	}
	o, ok := other.(*NodeHeading)
	if !ok || n.level != o.level {
		return false
	}

	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeHeading) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// NodeParagraph represents a paragraph of text.
// Its children are inline nodes (text, emphasis, links, etc.).
type NodeParagraph struct {
	baseNode
}

// Equal performs deep structural comparison with another node.
func (n *NodeParagraph) Equal(other Node) bool {
	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeParagraph) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// NodeList represents an unordered or ordered list.
// Its children are NodeListItem nodes. Pure container; never anchorable.
type NodeList struct {
	baseNode
	ordered bool
}

// Ordered returns true if this is an ordered (numbered) list.
func (n *NodeList) Ordered() bool {
	return n.ordered
}

// Equal performs deep structural comparison with another node.
func (n *NodeList) Equal(other Node) bool {
	if other == nil {
		return false
	}
	o, ok := other.(*NodeList)
	if !ok || n.ordered != o.ordered {
		return false
	}

	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeList) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// NodeListItem represents a single list item. When its subtree contains
// a nested List child, its own range (INVARIANT A, §3) is
// [Start, firstNestedList.Start) rather than its full span; callers that
// need the own range should use OwnEnd rather than Span.
type NodeListItem struct {
	baseNode
	marker      ListMarkerKind
	indentBytes int
}

// Marker returns the list marker kind.
func (n *NodeListItem) Marker() ListMarkerKind {
	return n.marker
}

// IndentBytes returns the length, in bytes, of the leading-whitespace
// prefix on the item's first line. Combined with the document's
// IndentStyle this yields the item's nesting depth.
func (n *NodeListItem) IndentBytes() int {
	return n.indentBytes
}

// NestedList returns this item's nested List child, if any. A ListItem
// has at most one direct List child per the parser's block grammar.
func (n *NodeListItem) NestedList() *NodeList {
	for _, child := range n.children {
		if list, ok := child.(*NodeList); ok {
			return list
		}
	}

	return nil
}

// OwnEnd returns the end offset of this item's own range: the start of
// its first nested List child if one exists, otherwise its full end.
// This implements INVARIANT A (§3).
func (n *NodeListItem) OwnEnd() int {
	if nested := n.NestedList(); nested != nil {
		start, _ := nested.Span()

		return start
	}

	return n.end
}

// OwnRange returns [Start, OwnEnd()), the ListItem's anchor-bearing range.
func (n *NodeListItem) OwnRange() (start, end int) {
	return n.start, n.OwnEnd()
}

// Equal performs deep structural comparison with another node.
func (n *NodeListItem) Equal(other Node) bool {
	if other == nil {
		return false
	}
	o, ok := other.(*NodeListItem)
	if !ok || n.marker != o.marker || n.indentBytes != o.indentBytes {
		return false
	}

	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeListItem) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// NodeFencedCode represents a fenced code block (``` or ~~~).
type NodeFencedCode struct {
	baseNode
	language []byte
}

// Language returns the info-string language identifier, or nil if absent.
func (n *NodeFencedCode) Language() []byte {
	return n.language
}

// Equal performs deep structural comparison with another node.
func (n *NodeFencedCode) Equal(other Node) bool {
	if other == nil {
		return false
	}
	o, ok := other.(*NodeFencedCode)
	if !ok || !bytesEqual(n.language, o.language) {
		return false
	}

	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeFencedCode) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// NodeIndentedCode represents a four-space (or tab) indented code block.
// Per SPEC_FULL.md §9a it never carries inline children; its Source is
// the raw content.
type NodeIndentedCode struct {
	baseNode
}

// Equal performs deep structural comparison with another node.
func (n *NodeIndentedCode) Equal(other Node) bool {
	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeIndentedCode) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// NodeBlockQuote represents blockquoted content (lines starting with >).
type NodeBlockQuote struct {
	baseNode
}

// Equal performs deep structural comparison with another node.
func (n *NodeBlockQuote) Equal(other Node) bool {
	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeBlockQuote) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// NodeThematicBreak represents a horizontal rule (---, ***, or ___).
type NodeThematicBreak struct {
	baseNode
}

// Equal performs deep structural comparison with another node.
func (n *NodeThematicBreak) Equal(other Node) bool {
	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeThematicBreak) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// NodeLinkDef represents a reference link definition, [ref]: url "title".
// Kept in the tree only so parsing remains lossless; never anchorable
// and never consulted directly by the projector.
type NodeLinkDef struct {
	baseNode
	url []byte
}

// URL returns the link destination as a byte slice.
func (n *NodeLinkDef) URL() []byte {
	return n.url
}

// Equal performs deep structural comparison with another node.
func (n *NodeLinkDef) Equal(other Node) bool {
	if other == nil {
		return false
	}
	o, ok := other.(*NodeLinkDef)
	if !ok || !bytesEqual(n.url, o.url) {
		return false
	}

	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeLinkDef) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// NodeUnhandled represents a block-level construct the parser could not
// classify. Its source bytes are the exact preserved input (§4.2
// lossless parsing requirement).
type NodeUnhandled struct {
	baseNode
}

// Equal performs deep structural comparison with another node.
func (n *NodeUnhandled) Equal(other Node) bool {
	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeUnhandled) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// NodeText represents plain text content.
type NodeText struct {
	baseNode
}

// Equal performs deep structural comparison with another node.
func (n *NodeText) Equal(other Node) bool {
	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeText) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// Text returns the text content as a string.
// This creates a copy; use Source() for zero-copy access.
func (n *NodeText) Text() string {
	return string(n.source)
}

// NodeHardBreak represents a hard line break within a paragraph.
type NodeHardBreak struct {
	baseNode
}

// Equal performs deep structural comparison with another node.
func (n *NodeHardBreak) Equal(other Node) bool {
	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeHardBreak) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// NodeStrong represents bold/strong emphasis (**text** or __text__).
type NodeStrong struct {
	baseNode
}

// Equal performs deep structural comparison with another node.
func (n *NodeStrong) Equal(other Node) bool {
	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeStrong) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// NodeEmphasis represents italic emphasis (*text* or _text_).
type NodeEmphasis struct {
	baseNode
}

// Equal performs deep structural comparison with another node.
func (n *NodeEmphasis) Equal(other Node) bool {
	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeEmphasis) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// NodeStrikethrough represents struck text (~~text~~).
type NodeStrikethrough struct {
	baseNode
}

// Equal performs deep structural comparison with another node.
func (n *NodeStrikethrough) Equal(other Node) bool {
	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeStrikethrough) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// NodeCode represents inline code (`code`).
type NodeCode struct {
	baseNode
}

// Equal performs deep structural comparison with another node.
func (n *NodeCode) Equal(other Node) bool {
	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeCode) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// Code returns the code content between the backtick delimiters as a
// string. This creates a copy; Source() returns the full span, delimiters
// included, without copying.
func (n *NodeCode) Code() string {
	s := n.source
	for len(s) > 0 && s[0] == '`' {
		s = s[1:]
	}
	for len(s) > 0 && s[len(s)-1] == '`' {
		s = s[:len(s)-1]
	}

	return string(s)
}

// NodeLink represents a link [text](url) or [text][ref] (already
// resolved against a NodeLinkDef at parse time).
type NodeLink struct {
	baseNode
	url []byte
}

// URL returns the link destination as a byte slice.
func (n *NodeLink) URL() []byte {
	return n.url
}

// Equal performs deep structural comparison with another node.
func (n *NodeLink) Equal(other Node) bool {
	if other == nil {
		return false
	}
	o, ok := other.(*NodeLink)
	if !ok || !bytesEqual(n.url, o.url) {
		return false
	}

	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeLink) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// NodeImage represents an image ![alt](url).
type NodeImage struct {
	baseNode
	alt []byte
	url []byte
}

// Alt returns the alt text as a byte slice.
func (n *NodeImage) Alt() []byte {
	return n.alt
}

// URL returns the image source as a byte slice.
func (n *NodeImage) URL() []byte {
	return n.url
}

// Equal performs deep structural comparison with another node.
func (n *NodeImage) Equal(other Node) bool {
	if other == nil {
		return false
	}
	o, ok := other.(*NodeImage)
	if !ok || !bytesEqual(n.alt, o.alt) || !bytesEqual(n.url, o.url) {
		return false
	}

	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeImage) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// NodeWikiLink represents a wikilink [[target|alias]].
type NodeWikiLink struct {
	baseNode
	target []byte
	alias  []byte // nil when no alias was given
}

// Target returns the link target as a byte slice.
func (n *NodeWikiLink) Target() []byte {
	return n.target
}

// Alias returns the optional display alias as a byte slice, or nil.
func (n *NodeWikiLink) Alias() []byte {
	return n.alias
}

// Equal performs deep structural comparison with another node.
func (n *NodeWikiLink) Equal(other Node) bool {
	if other == nil {
		return false
	}
	o, ok := other.(*NodeWikiLink)
	if !ok || !bytesEqual(n.target, o.target) || !bytesEqual(n.alias, o.alias) {
		return false
	}

	return equalNodes(n, other)
}

// ToBuilder creates a builder pre-populated with this node's data.
func (n *NodeWikiLink) ToBuilder() *NodeBuilder {
	return nodeToBuilder(n)
}

// bytesEqual compares two byte slices for equality.
// Handles nil slices correctly.
func bytesEqual(a, b []byte) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
