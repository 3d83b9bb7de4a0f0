//nolint:revive // file-length-limit: parser requires comprehensive markdown handling
package markdown

import (
	"bytes"
	"strings"
	"sync"
	"unicode"
)

// DefaultMaxErrors is the maximum number of parse errors before aborting.
const DefaultMaxErrors = 100

// indentedCodeThreshold is the minimum leading-whitespace byte length that
// starts an indented code block when no other block type matches.
const indentedCodeThreshold = 4

// ParseError represents an error encountered during parsing.
// It contains the byte offset where the error occurred, a human-readable message,
// and optionally a list of expected token types.
type ParseError struct {
	Offset   int         // Byte offset where error occurred
	Message  string      // Human-readable error description
	Expected []TokenType // What tokens would have been valid (may be nil)
}

// Error implements the error interface.
func (e ParseError) Error() string {
	if e.Offset >= 0 {
		return "offset " + itoa(e.Offset) + ": " + e.Message
	}

	return e.Message
}

// Position converts the byte offset to a Position using the provided LineIndex.
func (e ParseError) Position(idx *LineIndex) Position {
	return idx.PositionAt(e.Offset)
}

// itoa converts an integer to string without importing strconv.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	negative := n < 0
	if negative {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if negative {
		i--
		buf[i] = '-'
	}

	return string(buf[i:])
}

// linkDefinition stores a collected link definition.
type linkDefinition struct {
	url   []byte
	title []byte
}

// parser holds the internal state during a single parse operation.
// This struct is NOT exported - the public API is the stateless Parse function.
type parser struct {
	source     []byte
	tokens     []Token
	pos        int // Current token position
	errors     []ParseError
	maxErrors  int
	linkDefs   map[string]linkDefinition // Case-insensitive label -> definition
	lineIndex  *LineIndex
	nextHandle uint64
}

// allocHandle returns the next unique node handle for the current parse pass.
func (p *parser) allocHandle() NodeHandle {
	p.nextHandle++

	return NodeHandle(p.nextHandle)
}

// delimiter represents an emphasis delimiter on the stack.
type delimiter struct {
	token     Token     // The delimiter token
	count     int       // Number of delimiter characters
	canOpen   bool      // Can this delimiter open emphasis?
	canClose  bool      // Can this delimiter close emphasis?
	active    bool      // Is this delimiter still active?
	textStart int       // Start position of text after this delimiter
	delimType TokenType // TokenAsterisk or TokenUnderscore
}

// inlineParser handles inline content parsing with delimiter stack.
type inlineParser struct {
	owner      *parser
	source     []byte
	tokens     []Token
	pos        int
	start      int // Start offset of inline content
	end        int // End offset of inline content
	delimiters []delimiter
	linkDefs   map[string]linkDefinition
	errors     *[]ParseError
}

// Object pools for parser internals.
var (
	parserPool = sync.Pool{
		New: func() interface{} {
			return &parser{
				linkDefs: make(map[string]linkDefinition),
				errors:   make([]ParseError, 0, 8),
			}
		},
	}

	tokenSlicePool = sync.Pool{
		New: func() interface{} {
			s := make([]Token, 0, 256)

			return &s
		},
	}
)

// Parse transforms source bytes into an immutable AST.
// It returns the root document node and any parse errors encountered.
// This function is stateless and safe for concurrent calls.
//
//nolint:revive // function-length: parse entry point requires setup/teardown
func Parse(source []byte) (Node, []ParseError) {
	p, ok := parserPool.Get().(*parser)
	if !ok {
		p = &parser{linkDefs: make(map[string]linkDefinition)}
	}
	defer func() {
		p.source = nil
		p.tokens = nil
		p.pos = 0
		p.errors = p.errors[:0]
		for k := range p.linkDefs {
			delete(p.linkDefs, k)
		}
		p.lineIndex = nil
		p.nextHandle = 0
		parserPool.Put(p)
	}()

	p.source = source
	p.maxErrors = DefaultMaxErrors
	p.lineIndex = NewLineIndex(source)

	lex := newLexer(source)
	tokensPtr, ok := tokenSlicePool.Get().(*[]Token)
	if !ok {
		slice := make([]Token, 0, 256)
		tokensPtr = &slice
	}
	tokens := (*tokensPtr)[:0]
	for {
		tok := lex.Next()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			break
		}
	}
	p.tokens = tokens
	defer func() {
		*tokensPtr = tokens[:0]
		tokenSlicePool.Put(tokensPtr)
	}()

	p.collectLinkDefinitions()

	p.pos = 0
	doc := p.parseDocument()

	var errs []ParseError
	if len(p.errors) > 0 {
		errs = make([]ParseError, len(p.errors))
		copy(errs, p.errors)
	}

	return doc, errs
}

// current returns the current token without advancing.
func (p *parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Start: len(p.source), End: len(p.source)}
	}

	return p.tokens[p.pos]
}

// peek returns the token at offset from current position without advancing.
func (p *parser) peek(offset int) Token {
	idx := p.pos + offset
	if idx < 0 || idx >= len(p.tokens) {
		return Token{Type: TokenEOF, Start: len(p.source), End: len(p.source)}
	}

	return p.tokens[idx]
}

// advance moves to the next token and returns the previous current token.
func (p *parser) advance() Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}

	return tok
}

// skipWhitespace skips whitespace tokens (not newlines).
func (p *parser) skipWhitespace() {
	for p.current().Type == TokenWhitespace {
		p.advance()
	}
}

// atLineStart returns true if we're at the start of a line.
func (p *parser) atLineStart() bool {
	if p.pos == 0 {
		return true
	}
	for i := p.pos - 1; i >= 0; i-- {
		if p.tokens[i].Type == TokenNewline {
			return true
		}
		if p.tokens[i].Type != TokenWhitespace {
			return false
		}
	}

	return true
}

// countLeadingWhitespace returns the number of whitespace bytes at current position.
func (p *parser) countLeadingWhitespace() int {
	count := 0
	saved := p.pos
	for p.current().Type == TokenWhitespace {
		count += len(p.current().Source)
		p.advance()
	}
	p.pos = saved

	return count
}

// collectLineContent collects all tokens on the current line as content.
func (p *parser) collectLineContent() []byte {
	var parts [][]byte
	for p.current().Type != TokenNewline && p.current().Type != TokenEOF {
		parts = append(parts, p.current().Source)
		p.advance()
	}

	return bytes.Join(parts, nil)
}

// skipToNextLine advances to the start of the next line.
func (p *parser) skipToNextLine() {
	for p.current().Type != TokenEOF {
		if p.current().Type == TokenNewline {
			p.advance()

			return
		}
		p.advance()
	}
}

// collectLinkDefinitions performs a first pass to collect all link definitions
// so that reference-style links can be resolved while building the tree.
func (p *parser) collectLinkDefinitions() {
	p.pos = 0
	for p.current().Type != TokenEOF {
		if !p.atLineStart() {
			p.advance()

			continue
		}
		p.skipWhitespace()

		if p.current().Type != TokenBracketOpen {
			p.skipToNextLine()

			continue
		}

		startPos := p.pos
		label, def, ok := p.tryParseLinkDefinition()
		if !ok {
			p.pos = startPos
			p.skipToNextLine()

			continue
		}
		if _, exists := p.linkDefs[label]; !exists {
			p.linkDefs[label] = def
		}
	}
}

// tryParseLinkDefinition attempts to parse `[label]: url "title"` starting
// at the current position. On success it consumes the definition and
// returns the lowercased label and parsed definition.
//
//nolint:revive // function-length: link definition grammar has several parts
func (p *parser) tryParseLinkDefinition() (label string, def linkDefinition, ok bool) {
	if p.current().Type != TokenBracketOpen {
		return "", linkDefinition{}, false
	}
	p.advance()

	var labelParts [][]byte
	for p.current().Type != TokenBracketClose && p.current().Type != TokenEOF &&
		p.current().Type != TokenNewline {
		labelParts = append(labelParts, p.current().Source)
		p.advance()
	}

	if p.current().Type != TokenBracketClose {
		return "", linkDefinition{}, false
	}
	p.advance()

	if p.current().Type != TokenColon {
		return "", linkDefinition{}, false
	}
	p.advance()

	p.skipWhitespace()

	var urlParts [][]byte
	for p.current().Type != TokenEOF && p.current().Type != TokenNewline &&
		p.current().Type != TokenWhitespace {
		urlParts = append(urlParts, p.current().Source)
		p.advance()
	}
	if len(urlParts) == 0 {
		return "", linkDefinition{}, false
	}
	url := bytes.Join(urlParts, nil)

	var title []byte
	p.skipWhitespace()
	if p.current().Type == TokenText {
		text := p.current().Source
		if len(text) >= 2 && (text[0] == '"' || text[0] == '\'') {
			title = text[1 : len(text)-1]
			p.advance()
		}
	}

	lbl := strings.TrimSpace(strings.ToLower(string(bytes.Join(labelParts, nil))))

	return lbl, linkDefinition{url: url, title: title}, true
}

// parseDocument parses the entire document and returns the root node.
func (p *parser) parseDocument() Node {
	startOffset := 0
	if len(p.tokens) > 0 {
		startOffset = p.tokens[0].Start
	}

	var children []Node
	for p.current().Type != TokenEOF {
		if p.current().Type == TokenNewline {
			p.advance()

			continue
		}

		node := p.parseBlock()
		if node != nil {
			children = append(children, node)
		}

		if len(p.errors) >= p.maxErrors {
			break
		}
	}

	endOffset := len(p.source)
	sectioned := p.sectionize(children)

	return NewNodeBuilder(NodeTypeDocument).
		WithHandle(p.allocHandle()).
		WithStart(startOffset).
		WithEnd(endOffset).
		WithSource(p.source).
		WithChildren(sectioned).
		Build()
}

// sectionize wraps a flat sequence of sibling blocks into nested Section
// containers, one per heading and its subordinate content, recursively
// nesting sections of deeper heading levels. Non-heading blocks that
// precede the first heading stay at the enclosing level.
func (p *parser) sectionize(blocks []Node) []Node {
	var result []Node
	i := 0
	for i < len(blocks) {
		heading, ok := blocks[i].(*NodeHeading)
		if !ok {
			result = append(result, blocks[i])
			i++

			continue
		}

		level := heading.Level()
		j := i + 1
		for j < len(blocks) {
			if nh, ok := blocks[j].(*NodeHeading); ok && nh.Level() <= level {
				break
			}
			j++
		}

		nested := p.sectionize(blocks[i+1 : j])
		children := make([]Node, 0, len(nested)+1)
		children = append(children, blocks[i])
		children = append(children, nested...)

		start, _ := blocks[i].Span()
		_, end := blocks[j-1].Span()

		section := NewNodeBuilder(NodeTypeSection).
			WithHandle(p.allocHandle()).
			WithStart(start).
			WithEnd(end).
			WithSource(p.source[start:end]).
			WithChildren(children).
			Build()
		if section != nil {
			result = append(result, section)
		}

		i = j
	}

	return result
}

// parseBlock parses a single block-level element.
//
//nolint:revive // function-length: dispatches over every recognised block kind
func (p *parser) parseBlock() Node {
	rawStart := p.current().Start
	indent := p.countLeadingWhitespace()
	p.skipWhitespace()

	tok := p.current()
	if tok.Type == TokenEOF {
		return nil
	}

	if tok.Type == TokenBacktick || tok.Type == TokenTilde {
		if node := p.tryParseCodeFence(); node != nil {
			return node
		}
	}

	if tok.Type == TokenDash || tok.Type == TokenAsterisk || tok.Type == TokenUnderscore {
		if node := p.tryParseThematicBreak(); node != nil {
			return node
		}
	}

	if tok.Type == TokenHash {
		if node := p.parseHeading(); node != nil {
			return node
		}
	}

	if tok.Type == TokenGreaterThan {
		return p.parseBlockQuote()
	}

	if tok.Type == TokenDash || tok.Type == TokenPlus || tok.Type == TokenAsterisk {
		if isMarker, _ := p.detectListMarker(); isMarker {
			return p.parseList(false, indent)
		}
	}
	if tok.Type == TokenNumber {
		if isMarker, ordered := p.detectListMarker(); isMarker && ordered {
			return p.parseList(true, indent)
		}
	}

	if tok.Type == TokenBracketOpen {
		if node := p.tryParseLinkDefBlock(); node != nil {
			return node
		}
	}

	if node := p.tryParseUnhandledHTML(); node != nil {
		return node
	}

	if indent >= indentedCodeThreshold {
		return p.parseIndentedCode(rawStart)
	}

	return p.parseParagraph()
}

// tryParseCodeFence attempts to parse a fenced code block.
// Returns nil if not a valid code fence.
//
//nolint:revive // function-length: code fence parsing is inherently complex
func (p *parser) tryParseCodeFence() Node {
	startPos := p.pos
	startOffset := p.current().Start

	fenceChar := p.current().Type
	fenceCount := 0
	for p.current().Type == fenceChar {
		fenceCount++
		p.advance()
	}

	// The lexer emits only the first fence character as its own token; the
	// rest of the fence run arrives at the start of the next text token.
	if tok := p.current(); tok.Type == TokenText {
		fenceCount += len(tok.Source) - len(bytes.TrimLeft(tok.Source, string(p.source[startOffset])))
	}

	if fenceCount < minFenceLength {
		p.pos = startPos

		return nil
	}

	p.skipWhitespace()
	var language []byte
	if p.current().Type == TokenText {
		language = bytes.TrimSpace(bytes.TrimLeft(p.current().Source, string(p.source[startOffset])))
		p.advance()
	}

	p.skipToNextLine()

	for p.current().Type != TokenEOF {
		lineStart := p.pos

		closingCount := 0
		for p.current().Type == fenceChar {
			closingCount++
			p.advance()
		}
		if tok := p.current(); closingCount == 0 && tok.Type == TokenText &&
			len(bytes.Trim(tok.Source, string(p.source[startOffset]))) == 0 {
			closingCount = len(tok.Source)
			p.advance()
		}

		if closingCount >= fenceCount {
			p.skipWhitespace()
			if p.current().Type == TokenNewline || p.current().Type == TokenEOF {
				if p.current().Type == TokenNewline {
					p.advance()
				}

				break
			}
			p.pos = lineStart
		} else if closingCount > 0 {
			p.pos = lineStart
		}

		p.collectLineContent()
		if p.current().Type == TokenNewline {
			p.advance()
		}
	}

	endOffset := p.current().Start
	if p.pos > 0 {
		endOffset = p.tokens[p.pos-1].End
	}

	return NewNodeBuilder(NodeTypeFencedCode).
		WithHandle(p.allocHandle()).
		WithStart(startOffset).
		WithEnd(endOffset).
		WithSource(p.source[startOffset:endOffset]).
		WithLanguage(language).
		Build()
}

// parseIndentedCode collects consecutive lines indented at least
// indentedCodeThreshold bytes, stopping at the first line (after at most
// one blank line) that falls below the threshold.
func (p *parser) parseIndentedCode(startOffset int) Node {
	for {
		p.collectLineContent()
		if p.current().Type == TokenNewline {
			p.advance()
		}

		saved := p.pos
		blank := false
		for p.current().Type == TokenNewline {
			p.advance()
			if blank {
				p.pos = saved

				return p.buildIndentedCode(startOffset)
			}
			blank = true
		}

		if p.current().Type == TokenEOF {
			break
		}

		nextIndent := p.countLeadingWhitespace()
		if nextIndent < indentedCodeThreshold {
			p.pos = saved

			break
		}
		p.skipWhitespace()
	}

	return p.buildIndentedCode(startOffset)
}

func (p *parser) buildIndentedCode(startOffset int) Node {
	endOffset := p.current().Start
	if p.pos > 0 {
		endOffset = p.tokens[p.pos-1].End
	}

	return NewNodeBuilder(NodeTypeIndentedCode).
		WithHandle(p.allocHandle()).
		WithStart(startOffset).
		WithEnd(endOffset).
		WithSource(p.source[startOffset:endOffset]).
		Build()
}

// tryParseThematicBreak recognises a line consisting solely of 3+ repeats
// of '-', '*', or '_' (optionally interspersed with whitespace).
func (p *parser) tryParseThematicBreak() Node {
	if !p.looksLikeThematicBreakHere() {
		return nil
	}

	startOffset := p.current().Start
	for p.current().Type != TokenNewline && p.current().Type != TokenEOF {
		p.advance()
	}

	endOffset := p.current().Start
	if p.pos > 0 {
		endOffset = p.tokens[p.pos-1].End
	}
	if p.current().Type == TokenNewline {
		p.advance()
	}

	return NewNodeBuilder(NodeTypeThematicBreak).
		WithHandle(p.allocHandle()).
		WithStart(startOffset).
		WithEnd(endOffset).
		WithSource(p.source[startOffset:endOffset]).
		Build()
}

// looksLikeThematicBreakHere reports whether, from the current position,
// the rest of the line is composed of 3+ repeats of one marker character
// with only whitespace in between.
func (p *parser) looksLikeThematicBreakHere() bool {
	tok := p.current()
	if tok.Type != TokenDash && tok.Type != TokenAsterisk && tok.Type != TokenUnderscore {
		return false
	}
	markType := tok.Type
	count := 0
	for i := 0; ; i++ {
		t := p.peek(i)
		switch t.Type {
		case markType:
			count++
		case TokenWhitespace:
			// ignore
		case TokenNewline, TokenEOF:
			return count >= minFenceLength
		default:
			return false
		}
	}
}

// parseHeading parses an ATX-style heading (1-6 leading '#').
func (p *parser) parseHeading() Node {
	startOffset := p.current().Start

	level := 0
	for p.current().Type == TokenHash && level < 6 {
		level++
		p.advance()
	}

	if p.current().Type != TokenWhitespace &&
		p.current().Type != TokenNewline &&
		p.current().Type != TokenEOF {
		p.pos -= level

		return p.parseParagraph()
	}

	p.skipWhitespace()

	contentStart := p.pos
	for p.current().Type != TokenNewline && p.current().Type != TokenEOF {
		p.advance()
	}
	contentEnd := p.pos

	if p.current().Type == TokenNewline {
		p.advance()
	}

	endOffset := p.current().Start
	if p.pos > 0 {
		endOffset = p.tokens[p.pos-1].End
	}

	children := p.parseInlineContent(contentStart, contentEnd)

	return NewNodeBuilder(NodeTypeHeading).
		WithHandle(p.allocHandle()).
		WithStart(startOffset).
		WithEnd(endOffset).
		WithSource(p.source[startOffset:endOffset]).
		WithLevel(level).
		WithChildren(children).
		Build()
}

// parseBlockQuote parses a blockquote (lines starting with '>').
//
//nolint:revive // function-length: blockquote parsing requires multiple passes
func (p *parser) parseBlockQuote() Node {
	startOffset := p.current().Start

	var children []Node
	for p.current().Type != TokenEOF {
		if p.current().Type != TokenGreaterThan {
			break
		}
		p.advance()

		if p.current().Type == TokenWhitespace {
			p.advance()
		}

		if p.current().Type != TokenNewline && p.current().Type != TokenEOF {
			if block := p.parseBlock(); block != nil {
				children = append(children, block)
			}
		} else if p.current().Type == TokenNewline {
			p.advance()
		}

		p.skipWhitespace()
		if p.current().Type != TokenGreaterThan {
			break
		}
	}

	endOffset := p.current().Start
	if p.pos > 0 {
		endOffset = p.tokens[p.pos-1].End
	}

	return NewNodeBuilder(NodeTypeBlockQuote).
		WithHandle(p.allocHandle()).
		WithStart(startOffset).
		WithEnd(endOffset).
		WithSource(p.source[startOffset:endOffset]).
		WithChildren(children).
		Build()
}

// detectListMarker reports whether the current token starts a list marker
// (bullet or ordered) and, if so, whether it is an ordered marker.
func (p *parser) detectListMarker() (isList, ordered bool) {
	tok := p.current()
	switch tok.Type { //nolint:exhaustive // only list-marker-relevant tokens matter here
	case TokenDash, TokenPlus, TokenAsterisk:
		if p.looksLikeThematicBreakHere() {
			return false, false
		}
		next := p.peek(1)
		if next.Type != TokenWhitespace && next.Type != TokenNewline && next.Type != TokenEOF {
			return false, false
		}

		return true, false
	case TokenNumber:
		if p.peek(1).Type != TokenDot {
			return false, false
		}
		next := p.peek(2)
		if next.Type != TokenWhitespace && next.Type != TokenNewline && next.Type != TokenEOF {
			return false, false
		}

		return true, true
	default:
		return false, false
	}
}

// parseList parses a list at the given indent, recursively attaching more
// deeply indented lists as a child of the preceding ListItem (INVARIANT A)
// rather than as a flat sibling.
//
//nolint:revive // function-length: list parsing handles nested structures
func (p *parser) parseList(ordered bool, indent int) Node {
	startOffset := p.current().Start
	var items []Node

outer:
	for {
		item := p.parseListItem(ordered, indent)
		items = append(items, item)

		for {
			if p.current().Type == TokenNewline {
				p.advance()

				break outer
			}
			if p.current().Type == TokenEOF {
				break outer
			}

			nextIndent := p.countLeadingWhitespace()
			saved := p.pos
			p.skipWhitespace()
			isMarker, nestedOrdered := p.detectListMarker()

			switch {
			case isMarker && nextIndent > indent:
				nested := p.parseList(nestedOrdered, nextIndent)
				items[len(items)-1] = p.attachNestedList(items[len(items)-1], nested)

				continue
			case isMarker && nextIndent == indent && nestedOrdered == ordered:
				continue outer
			default:
				p.pos = saved

				break outer
			}
		}
	}

	endOffset := startOffset
	if len(items) > 0 {
		_, endOffset = items[len(items)-1].Span()
	}

	return NewNodeBuilder(NodeTypeList).
		WithHandle(p.allocHandle()).
		WithStart(startOffset).
		WithEnd(endOffset).
		WithSource(p.source[startOffset:endOffset]).
		WithOrdered(ordered).
		WithChildren(items).
		Build()
}

// attachNestedList rebuilds item with nested appended as a trailing child,
// extending item's own span to cover the nested list. ListItem.OwnRange
// subsequently reports only the bytes before the nested list starts.
func (p *parser) attachNestedList(item, nested Node) Node {
	b := nodeToBuilder(item)
	children := append(append([]Node{}, item.Children()...), nested)
	b.WithChildren(children)

	start, end := item.Span()
	_, nestedEnd := nested.Span()
	if nestedEnd > end {
		end = nestedEnd
	}
	b.WithEnd(end)
	b.WithSource(p.source[start:end])

	return b.Build()
}

// parseListItem parses a single list item's marker and first line of content.
func (p *parser) parseListItem(ordered bool, indentBytes int) Node {
	startOffset := p.current().Start

	var marker ListMarkerKind
	if ordered {
		p.advance() // number
		p.advance() // dot
		marker = ListMarkerNumbered
	} else {
		tok := p.advance()
		switch tok.Type { //nolint:exhaustive // only bullet tokens reach here
		case TokenPlus:
			marker = ListMarkerPlus
		case TokenAsterisk:
			marker = ListMarkerAsterisk
		default:
			marker = ListMarkerDash
		}
	}

	p.skipWhitespace()

	contentStart := p.pos
	for p.current().Type != TokenNewline && p.current().Type != TokenEOF {
		p.advance()
	}
	contentEnd := p.pos

	children := p.parseInlineContent(contentStart, contentEnd)

	if p.current().Type == TokenNewline {
		p.advance()
	}

	endOffset := p.current().Start
	if p.pos > 0 {
		endOffset = p.tokens[p.pos-1].End
	}

	return NewNodeBuilder(NodeTypeListItem).
		WithHandle(p.allocHandle()).
		WithStart(startOffset).
		WithEnd(endOffset).
		WithSource(p.source[startOffset:endOffset]).
		WithMarker(marker).
		WithIndentBytes(indentBytes).
		WithChildren(children).
		Build()
}

// tryParseLinkDefBlock parses a link reference definition as a standalone
// block node. Resolution of reference-style links still uses p.linkDefs,
// populated up front by collectLinkDefinitions.
func (p *parser) tryParseLinkDefBlock() Node {
	startPos := p.pos
	startOffset := p.current().Start

	_, def, ok := p.tryParseLinkDefinition()
	if !ok {
		p.pos = startPos

		return nil
	}

	endOffset := p.current().Start
	if p.pos > 0 {
		endOffset = p.tokens[p.pos-1].End
	}

	return NewNodeBuilder(NodeTypeLinkDef).
		WithHandle(p.allocHandle()).
		WithStart(startOffset).
		WithEnd(endOffset).
		WithSource(p.source[startOffset:endOffset]).
		WithURL(def.url).
		Build()
}

// tryParseUnhandledHTML recognises a line beginning with a raw '<tag'
// sequence and preserves it losslessly as an Unhandled block, up to the
// next blank line.
func (p *parser) tryParseUnhandledHTML() Node {
	tok := p.current()
	if tok.Type != TokenText || len(tok.Source) < 2 || tok.Source[0] != '<' {
		return nil
	}
	c := tok.Source[1]
	if !(c == '/' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
		return nil
	}

	startOffset := tok.Start
	for p.current().Type != TokenEOF {
		if p.current().Type == TokenNewline {
			next := p.peek(1)
			p.advance()
			if next.Type == TokenNewline || next.Type == TokenEOF {
				break
			}

			continue
		}
		p.advance()
	}

	endOffset := p.current().Start
	if p.pos > 0 {
		endOffset = p.tokens[p.pos-1].End
	}

	return NewNodeBuilder(NodeTypeUnhandled).
		WithHandle(p.allocHandle()).
		WithStart(startOffset).
		WithEnd(endOffset).
		WithSource(p.source[startOffset:endOffset]).
		Build()
}

// parseParagraph parses a paragraph (consecutive non-blank lines).
//
//nolint:revive // function-length: paragraph parsing handles block transitions
func (p *parser) parseParagraph() Node {
	startOffset := p.current().Start
	contentStart := p.pos

	for p.current().Type != TokenEOF {
		tok := p.current()

		if tok.Type == TokenNewline {
			next := p.peek(1)
			if next.Type == TokenNewline || next.Type == TokenEOF {
				p.advance()

				break
			}
			p.advance()
			p.skipWhitespace()
			nextTok := p.current()
			if nextTok.Type == TokenHash || nextTok.Type == TokenGreaterThan ||
				nextTok.Type == TokenBacktick || nextTok.Type == TokenTilde ||
				nextTok.Type == TokenBracketOpen {
				break
			}
			if nextTok.Type == TokenDash || nextTok.Type == TokenPlus || nextTok.Type == TokenAsterisk {
				if isMarker, _ := p.detectListMarker(); isMarker {
					break
				}
			}
			if nextTok.Type == TokenNumber {
				if isMarker, ordered := p.detectListMarker(); isMarker && ordered {
					break
				}
			}

			continue
		}

		p.advance()
	}

	contentEnd := p.pos
	endOffset := p.current().Start
	if p.pos > 0 {
		endOffset = p.tokens[p.pos-1].End
	}

	children := p.parseInlineContent(contentStart, contentEnd)

	return NewNodeBuilder(NodeTypeParagraph).
		WithHandle(p.allocHandle()).
		WithStart(startOffset).
		WithEnd(endOffset).
		WithSource(p.source[startOffset:endOffset]).
		WithChildren(children).
		Build()
}

// parseInlineContent parses inline content from the token range [start, end).
func (p *parser) parseInlineContent(start, end int) []Node {
	if start >= end || start >= len(p.tokens) {
		return nil
	}

	tokens := p.tokens[start:end]
	if len(tokens) == 0 {
		return nil
	}
	for len(tokens) > 0 && tokens[len(tokens)-1].Type == TokenNewline {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) == 0 {
		return nil
	}

	ip := &inlineParser{
		owner:      p,
		source:     p.source,
		tokens:     tokens,
		pos:        0,
		start:      tokens[0].Start,
		end:        tokens[len(tokens)-1].End,
		delimiters: make([]delimiter, 0, 8),
		linkDefs:   p.linkDefs,
		errors:     &p.errors,
	}

	return ip.parse()
}

// parse performs inline parsing and returns the resulting nodes.
//
//nolint:revive // function-length: inline parsing handles multiple token types
func (ip *inlineParser) parse() []Node {
	var nodes []Node
	textStart := -1

	flush := func() {
		if textStart < 0 {
			return
		}
		if node := ip.buildTextNode(textStart, ip.pos); node != nil {
			nodes = append(nodes, node)
		}
		textStart = -1
	}

	for ip.pos < len(ip.tokens) {
		tok := ip.tokens[ip.pos]

		switch tok.Type { //nolint:exhaustive // remaining token types fall to the default text case
		case TokenBacktick:
			flush()
			if node := ip.parseInlineCode(); node != nil {
				nodes = append(nodes, node)
			} else {
				if textStart < 0 {
					textStart = ip.pos
				}
				ip.pos++
			}

		case TokenAsterisk, TokenUnderscore:
			flush()
			ip.handleEmphasisDelimiter()

		case TokenTilde:
			if ip.pos+1 < len(ip.tokens) && ip.tokens[ip.pos+1].Type == TokenTilde {
				flush()
				if node := ip.parseStrikethrough(); node != nil {
					nodes = append(nodes, node)
				} else {
					if textStart < 0 {
						textStart = ip.pos
					}
					ip.pos++
				}
			} else {
				if textStart < 0 {
					textStart = ip.pos
				}
				ip.pos++
			}

		case TokenBang:
			if ip.pos+1 < len(ip.tokens) && ip.tokens[ip.pos+1].Type == TokenBracketOpen {
				flush()
				if node := ip.parseImage(); node != nil {
					nodes = append(nodes, node)
				} else {
					if textStart < 0 {
						textStart = ip.pos
					}
					ip.pos++
				}
			} else {
				if textStart < 0 {
					textStart = ip.pos
				}
				ip.pos++
			}

		case TokenBackslash:
			flush()
			if node := ip.parseHardBreak(); node != nil {
				nodes = append(nodes, node)
			} else {
				escStart := ip.pos
				ip.pos++
				if ip.pos < len(ip.tokens) {
					ip.pos++
				}
				if node := ip.buildTextNode(escStart, ip.pos); node != nil {
					nodes = append(nodes, node)
				}
			}

		case TokenWhitespace:
			if tok.Len() >= 2 && ip.pos+1 < len(ip.tokens) && ip.tokens[ip.pos+1].Type == TokenNewline {
				flush()
				if node := ip.buildHardBreak(ip.pos, ip.pos+2); node != nil {
					nodes = append(nodes, node)
				}
				ip.pos += 2
			} else {
				if textStart < 0 {
					textStart = ip.pos
				}
				ip.pos++
			}

		case TokenBracketOpen:
			flush()
			if ip.pos+1 < len(ip.tokens) && ip.tokens[ip.pos+1].Type == TokenBracketOpen {
				if node := ip.parseWikiLink(); node != nil {
					nodes = append(nodes, node)
				} else {
					if textStart < 0 {
						textStart = ip.pos
					}
					ip.pos++
				}
			} else if node := ip.parseLink(); node != nil {
				nodes = append(nodes, node)
			} else {
				if textStart < 0 {
					textStart = ip.pos
				}
				ip.pos++
			}

		default:
			if textStart < 0 {
				textStart = ip.pos
			}
			ip.pos++
		}
	}

	flush()

	return ip.processDelimiters(nodes)
}

// buildTextNode creates a text node from tokens in range [start, end).
func (ip *inlineParser) buildTextNode(start, end int) Node {
	if start >= end || start >= len(ip.tokens) {
		return nil
	}

	startOffset := ip.tokens[start].Start
	endOffset := ip.tokens[end-1].End
	if end > len(ip.tokens) {
		endOffset = ip.tokens[len(ip.tokens)-1].End
	}

	return NewNodeBuilder(NodeTypeText).
		WithHandle(ip.owner.allocHandle()).
		WithStart(startOffset).
		WithEnd(endOffset).
		WithSource(ip.source[startOffset:endOffset]).
		Build()
}

// buildHardBreak creates a hard-break node spanning tokens [start, end).
func (ip *inlineParser) buildHardBreak(start, end int) Node {
	if start >= len(ip.tokens) || end == 0 || end > len(ip.tokens) {
		return nil
	}

	startOffset := ip.tokens[start].Start
	endOffset := ip.tokens[end-1].End

	return NewNodeBuilder(NodeTypeHardBreak).
		WithHandle(ip.owner.allocHandle()).
		WithStart(startOffset).
		WithEnd(endOffset).
		WithSource(ip.source[startOffset:endOffset]).
		Build()
}

// parseHardBreak recognises a backslash immediately followed by a newline.
func (ip *inlineParser) parseHardBreak() Node {
	if ip.pos+1 >= len(ip.tokens) || ip.tokens[ip.pos+1].Type != TokenNewline {
		return nil
	}
	node := ip.buildHardBreak(ip.pos, ip.pos+2)
	ip.pos += 2

	return node
}

// parseInlineCode parses inline code delimited by matching backtick runs.
func (ip *inlineParser) parseInlineCode() Node {
	if ip.pos >= len(ip.tokens) || ip.tokens[ip.pos].Type != TokenBacktick {
		return nil
	}

	startOffset := ip.tokens[ip.pos].Start

	openCount := 0
	for ip.pos < len(ip.tokens) && ip.tokens[ip.pos].Type == TokenBacktick {
		openCount++
		ip.pos++
	}

	contentStart := ip.pos
	for ip.pos < len(ip.tokens) {
		if ip.tokens[ip.pos].Type == TokenBacktick {
			closeCount := 0
			for ip.pos < len(ip.tokens) && ip.tokens[ip.pos].Type == TokenBacktick {
				closeCount++
				ip.pos++
			}
			if closeCount == openCount {
				endOffset := ip.tokens[ip.pos-1].End

				return NewNodeBuilder(NodeTypeCode).
					WithHandle(ip.owner.allocHandle()).
					WithStart(startOffset).
					WithEnd(endOffset).
					WithSource(ip.source[startOffset:endOffset]).
					Build()
			}
		} else {
			ip.pos++
		}
	}

	ip.pos = contentStart - openCount

	return nil
}

// handleEmphasisDelimiter handles a run of '*' or '_' delimiters.
func (ip *inlineParser) handleEmphasisDelimiter() {
	if ip.pos >= len(ip.tokens) {
		return
	}

	tok := ip.tokens[ip.pos]
	delimType := tok.Type

	count := 0
	delimStart := ip.pos
	for ip.pos < len(ip.tokens) && ip.tokens[ip.pos].Type == delimType {
		count++
		ip.pos++
	}

	canOpen, canClose := ip.isFlankingDelimiter(delimStart, count)
	if delimType == TokenUnderscore {
		canOpen, canClose = ip.applyUnderscoreRestriction(delimStart, canOpen, canClose)
	}

	ip.delimiters = append(ip.delimiters, delimiter{
		token:     tok,
		count:     count,
		canOpen:   canOpen,
		canClose:  canClose,
		active:    true,
		textStart: ip.tokens[delimStart].Start,
		delimType: delimType,
	})
}

// isFlankingDelimiter determines left/right flanking per CommonMark 6.2.
func (ip *inlineParser) isFlankingDelimiter(pos, count int) (canOpen, canClose bool) {
	charBefore := ' '
	if pos > 0 {
		prevTok := ip.tokens[pos-1]
		if len(prevTok.Source) > 0 {
			charBefore = rune(prevTok.Source[len(prevTok.Source)-1])
		}
	}

	charAfter := ' '
	afterPos := pos + count
	if afterPos < len(ip.tokens) {
		nextTok := ip.tokens[afterPos]
		if len(nextTok.Source) > 0 {
			charAfter = rune(nextTok.Source[0])
		}
	}

	beforeIsWhitespace := unicode.IsSpace(charBefore)
	beforeIsPunctuation := unicode.IsPunct(charBefore)
	afterIsWhitespace := unicode.IsSpace(charAfter)
	afterIsPunctuation := unicode.IsPunct(charAfter)

	leftFlanking := !afterIsWhitespace && (!afterIsPunctuation || beforeIsWhitespace || beforeIsPunctuation)
	rightFlanking := !beforeIsWhitespace && (!beforeIsPunctuation || afterIsWhitespace || afterIsPunctuation)

	return leftFlanking, rightFlanking
}

// applyUnderscoreRestriction enforces the intraword restriction: foo_bar_baz
// is not emphasis.
func (ip *inlineParser) applyUnderscoreRestriction(pos int, canOpen, canClose bool) (bool, bool) {
	charBefore := ' '
	if pos > 0 {
		prevTok := ip.tokens[pos-1]
		if len(prevTok.Source) > 0 {
			charBefore = rune(prevTok.Source[len(prevTok.Source)-1])
		}
	}

	charAfter := ' '
	endPos := pos
	for endPos < len(ip.tokens) && ip.tokens[endPos].Type == TokenUnderscore {
		endPos++
	}
	if endPos < len(ip.tokens) {
		nextTok := ip.tokens[endPos]
		if len(nextTok.Source) > 0 {
			charAfter = rune(nextTok.Source[0])
		}
	}

	beforeIsAlnum := unicode.IsLetter(charBefore) || unicode.IsDigit(charBefore)
	afterIsAlnum := unicode.IsLetter(charAfter) || unicode.IsDigit(charAfter)

	if beforeIsAlnum && afterIsAlnum {
		return false, false
	}
	if beforeIsAlnum {
		canOpen = false
	}
	if afterIsAlnum {
		canClose = false
	}

	return canOpen, canClose
}

// processDelimiters repeatedly matches opener/closer pairs on the delimiter
// stack, building Emphasis/Strong nodes, per CommonMark 6.4.
func (ip *inlineParser) processDelimiters(nodes []Node) []Node {
	result := nodes
	for {
		next, found := ip.processEmphasisPass(result)
		if !found {
			break
		}
		result = next
	}

	return result
}

// processEmphasisPass makes one pass over the delimiter stack.
func (ip *inlineParser) processEmphasisPass(nodes []Node) ([]Node, bool) {
	if len(ip.delimiters) == 0 {
		return nodes, false
	}

	for i := range ip.delimiters {
		opener := &ip.delimiters[i]
		if !opener.active || !opener.canOpen {
			continue
		}

		for j := i + 1; j < len(ip.delimiters); j++ {
			closer := &ip.delimiters[j]
			if !closer.active || !closer.canClose || opener.delimType != closer.delimType {
				continue
			}

			if opener.count >= 2 && closer.count >= 2 {
				if result, ok := ip.createEmphasisNode(nodes, i, j, 2, NodeTypeStrong); ok {
					return result, true
				}
			}
			if opener.count >= 1 && closer.count >= 1 {
				if result, ok := ip.createEmphasisNode(nodes, i, j, 1, NodeTypeEmphasis); ok {
					return result, true
				}
			}
		}
	}

	return nodes, false
}

// createEmphasisNode attempts to create an emphasis node by matching delimiters.
//
//nolint:revive // function-length: span bookkeeping needs several steps
func (ip *inlineParser) createEmphasisNode(
	nodes []Node,
	openerIdx, closerIdx, delimCount int,
	nodeType NodeType,
) ([]Node, bool) {
	if openerIdx >= len(ip.delimiters) || closerIdx >= len(ip.delimiters) {
		return nodes, false
	}

	opener := &ip.delimiters[openerIdx]
	closer := &ip.delimiters[closerIdx]

	opener.count -= delimCount
	closer.count -= delimCount
	if opener.count == 0 {
		opener.active = false
	}
	if closer.count == 0 {
		closer.active = false
	}

	startIdx := len(nodes)
	for k := range nodes {
		start, _ := nodes[k].Span()
		if start >= opener.token.Start {
			startIdx = k

			break
		}
	}

	endIdx := -1
	for k := len(nodes) - 1; k >= 0; k-- {
		_, end := nodes[k].Span()
		if end <= closer.token.End {
			endIdx = k

			break
		}
	}

	if startIdx > endIdx || startIdx >= len(nodes) {
		return nodes, false
	}

	children := nodes[startIdx : endIdx+1]

	node := NewNodeBuilder(nodeType).
		WithHandle(ip.owner.allocHandle()).
		WithStart(opener.token.Start).
		WithEnd(closer.token.End).
		WithSource(ip.source[opener.token.Start:closer.token.End]).
		WithChildren(children).
		Build()
	if node == nil {
		return nodes, false
	}

	newNodes := make([]Node, 0, len(nodes))
	newNodes = append(newNodes, nodes[:startIdx]...)
	newNodes = append(newNodes, node)
	if endIdx+1 < len(nodes) {
		newNodes = append(newNodes, nodes[endIdx+1:]...)
	}

	for k := openerIdx + 1; k < closerIdx; k++ {
		ip.delimiters[k].active = false
	}

	return newNodes, true
}

// parseStrikethrough parses ~~strikethrough~~ content.
func (ip *inlineParser) parseStrikethrough() Node {
	if ip.pos+1 >= len(ip.tokens) ||
		ip.tokens[ip.pos].Type != TokenTilde || ip.tokens[ip.pos+1].Type != TokenTilde {
		return nil
	}

	startOffset := ip.tokens[ip.pos].Start
	ip.pos += 2

	contentStart := ip.pos
	for ip.pos < len(ip.tokens) {
		if ip.pos+1 < len(ip.tokens) &&
			ip.tokens[ip.pos].Type == TokenTilde && ip.tokens[ip.pos+1].Type == TokenTilde {
			contentEnd := ip.pos
			ip.pos += 2
			endOffset := ip.tokens[ip.pos-1].End

			children := ip.parseSubRange(contentStart, contentEnd)

			return NewNodeBuilder(NodeTypeStrikethrough).
				WithHandle(ip.owner.allocHandle()).
				WithStart(startOffset).
				WithEnd(endOffset).
				WithSource(ip.source[startOffset:endOffset]).
				WithChildren(children).
				Build()
		}
		ip.pos++
	}

	ip.pos = contentStart - 2

	return nil
}

// parseSubRange parses tokens[from:to] as an independent inline run,
// sharing link definitions, error sink, and handle allocation with ip.
func (ip *inlineParser) parseSubRange(from, to int) []Node {
	if from >= to {
		return nil
	}
	sub := &inlineParser{
		owner:      ip.owner,
		source:     ip.source,
		tokens:     ip.tokens[from:to],
		pos:        0,
		start:      ip.tokens[from].Start,
		end:        ip.tokens[to-1].End,
		delimiters: make([]delimiter, 0, 4),
		linkDefs:   ip.linkDefs,
		errors:     ip.errors,
	}

	return sub.parse()
}

// parseWikiLink parses [[target|alias]] wikilinks.
func (ip *inlineParser) parseWikiLink() Node {
	if ip.pos+1 >= len(ip.tokens) ||
		ip.tokens[ip.pos].Type != TokenBracketOpen || ip.tokens[ip.pos+1].Type != TokenBracketOpen {
		return nil
	}

	startOffset := ip.tokens[ip.pos].Start
	origPos := ip.pos
	ip.pos += 2

	var parts [][]byte
	contentStart := ip.pos

	for ip.pos < len(ip.tokens) {
		if ip.pos+1 < len(ip.tokens) &&
			ip.tokens[ip.pos].Type == TokenBracketClose && ip.tokens[ip.pos+1].Type == TokenBracketClose {
			contentEnd := ip.pos
			ip.pos += 2
			endOffset := ip.tokens[ip.pos-1].End

			for i := contentStart; i < contentEnd; i++ {
				parts = append(parts, ip.tokens[i].Source)
			}
			content := bytes.Join(parts, nil)
			target, alias := parseWikiLinkContent(content)

			return NewNodeBuilder(NodeTypeWikiLink).
				WithHandle(ip.owner.allocHandle()).
				WithStart(startOffset).
				WithEnd(endOffset).
				WithSource(ip.source[startOffset:endOffset]).
				WithTarget(target).
				WithAlias(alias).
				Build()
		}

		if ip.tokens[ip.pos].Type == TokenNewline {
			ip.pos = origPos

			return nil
		}
		ip.pos++
	}

	ip.pos = origPos

	return nil
}

// parseWikiLinkContent parses "target" or "target|alias".
func parseWikiLinkContent(content []byte) (target, alias []byte) {
	if idx := bytes.IndexByte(content, '|'); idx >= 0 {
		return bytes.TrimSpace(content[:idx]), bytes.TrimSpace(content[idx+1:])
	}

	return bytes.TrimSpace(content), nil
}

// parseImage parses ![alt](url) image syntax.
//
//nolint:revive // function-length: mirrors the inline-link grammar
func (ip *inlineParser) parseImage() Node {
	origPos := ip.pos
	startOffset := ip.tokens[ip.pos].Start
	ip.pos++ // skip '!'
	if ip.pos >= len(ip.tokens) || ip.tokens[ip.pos].Type != TokenBracketOpen {
		ip.pos = origPos

		return nil
	}
	ip.pos++ // skip '['

	altStart := ip.pos
	depth := 1
	for ip.pos < len(ip.tokens) && depth > 0 {
		switch ip.tokens[ip.pos].Type { //nolint:exhaustive // only bracket tokens affect depth
		case TokenBracketOpen:
			depth++
		case TokenBracketClose:
			depth--
		default:
			// not a bracket, depth unchanged
		}
		if depth > 0 {
			ip.pos++
		}
	}
	if depth != 0 {
		ip.pos = origPos

		return nil
	}
	altEnd := ip.pos
	ip.pos++ // skip ']'

	if ip.pos >= len(ip.tokens) || ip.tokens[ip.pos].Type != TokenParenOpen {
		ip.pos = origPos

		return nil
	}
	ip.pos++ // skip '('

	var urlParts [][]byte
	for ip.pos < len(ip.tokens) {
		t := ip.tokens[ip.pos]
		if t.Type == TokenParenClose || t.Type == TokenWhitespace || t.Type == TokenNewline {
			break
		}
		urlParts = append(urlParts, t.Source)
		ip.pos++
	}
	url := bytes.Join(urlParts, nil)

	for ip.pos < len(ip.tokens) && ip.tokens[ip.pos].Type == TokenWhitespace {
		ip.pos++
	}
	if ip.pos < len(ip.tokens) && ip.tokens[ip.pos].Type == TokenText {
		text := ip.tokens[ip.pos].Source
		if len(text) >= 2 && (text[0] == '"' || text[0] == '\'') {
			ip.pos++
		}
	}
	for ip.pos < len(ip.tokens) && ip.tokens[ip.pos].Type == TokenWhitespace {
		ip.pos++
	}

	if ip.pos >= len(ip.tokens) || ip.tokens[ip.pos].Type != TokenParenClose {
		ip.pos = origPos

		return nil
	}
	ip.pos++ // skip ')'
	endOffset := ip.tokens[ip.pos-1].End

	var altParts [][]byte
	for i := altStart; i < altEnd; i++ {
		altParts = append(altParts, ip.tokens[i].Source)
	}
	alt := bytes.Join(altParts, nil)

	return NewNodeBuilder(NodeTypeImage).
		WithHandle(ip.owner.allocHandle()).
		WithStart(startOffset).
		WithEnd(endOffset).
		WithSource(ip.source[startOffset:endOffset]).
		WithAlt(alt).
		WithURL(url).
		Build()
}

// parseLink parses [text](url "title") or [text][ref] links.
func (ip *inlineParser) parseLink() Node {
	if ip.pos >= len(ip.tokens) || ip.tokens[ip.pos].Type != TokenBracketOpen {
		return nil
	}

	startOffset := ip.tokens[ip.pos].Start
	ip.pos++ // skip [

	textStart := ip.pos
	bracketDepth := 1
	for ip.pos < len(ip.tokens) && bracketDepth > 0 {
		switch ip.tokens[ip.pos].Type { //nolint:exhaustive // only bracket tokens affect depth
		case TokenBracketOpen:
			bracketDepth++
		case TokenBracketClose:
			bracketDepth--
		default:
			// not a bracket, depth unchanged
		}
		if bracketDepth > 0 {
			ip.pos++
		}
	}
	if bracketDepth != 0 {
		ip.pos = textStart - 1

		return nil
	}

	textEnd := ip.pos
	ip.pos++ // skip ]

	if ip.pos >= len(ip.tokens) {
		return ip.parseShortcutLink(startOffset, textStart, textEnd)
	}

	switch ip.tokens[ip.pos].Type { //nolint:exhaustive // only link-continuation tokens matter
	case TokenParenOpen:
		return ip.parseInlineLink(startOffset, textStart, textEnd)
	case TokenBracketOpen:
		return ip.parseReferenceLink(startOffset, textStart, textEnd)
	default:
		return ip.parseShortcutLink(startOffset, textStart, textEnd)
	}
}

// parseInlineLink parses [text](url "title").
//
//nolint:revive // function-length: inline link parsing handles URL/title
func (ip *inlineParser) parseInlineLink(startOffset, textStart, textEnd int) Node {
	if ip.pos >= len(ip.tokens) || ip.tokens[ip.pos].Type != TokenParenOpen {
		return nil
	}
	ip.pos++ // skip (

	var urlParts [][]byte
	for ip.pos < len(ip.tokens) {
		t := ip.tokens[ip.pos]
		if t.Type == TokenParenClose || t.Type == TokenWhitespace || t.Type == TokenNewline {
			break
		}
		urlParts = append(urlParts, t.Source)
		ip.pos++
	}
	url := bytes.Join(urlParts, nil)

	for ip.pos < len(ip.tokens) && ip.tokens[ip.pos].Type == TokenWhitespace {
		ip.pos++
	}
	if ip.pos < len(ip.tokens) && ip.tokens[ip.pos].Type == TokenText {
		text := ip.tokens[ip.pos].Source
		if len(text) >= 2 && (text[0] == '"' || text[0] == '\'') && text[len(text)-1] == text[0] {
			ip.pos++
		}
	}
	for ip.pos < len(ip.tokens) && ip.tokens[ip.pos].Type == TokenWhitespace {
		ip.pos++
	}

	if ip.pos >= len(ip.tokens) || ip.tokens[ip.pos].Type != TokenParenClose {
		ip.pos = textStart - 1

		return nil
	}
	ip.pos++ // skip )
	endOffset := ip.tokens[ip.pos-1].End

	children := ip.parseSubRange(textStart, textEnd)

	return NewNodeBuilder(NodeTypeLink).
		WithHandle(ip.owner.allocHandle()).
		WithStart(startOffset).
		WithEnd(endOffset).
		WithSource(ip.source[startOffset:endOffset]).
		WithURL(url).
		WithChildren(children).
		Build()
}

// parseReferenceLink parses [text][ref].
func (ip *inlineParser) parseReferenceLink(startOffset, textStart, textEnd int) Node {
	if ip.pos >= len(ip.tokens) || ip.tokens[ip.pos].Type != TokenBracketOpen {
		return nil
	}
	ip.pos++ // skip [

	var labelParts [][]byte
	for ip.pos < len(ip.tokens) && ip.tokens[ip.pos].Type != TokenBracketClose {
		if ip.tokens[ip.pos].Type == TokenNewline {
			ip.pos = textStart - 1

			return nil
		}
		labelParts = append(labelParts, ip.tokens[ip.pos].Source)
		ip.pos++
	}
	if ip.pos >= len(ip.tokens) || ip.tokens[ip.pos].Type != TokenBracketClose {
		ip.pos = textStart - 1

		return nil
	}
	ip.pos++ // skip ]
	endOffset := ip.tokens[ip.pos-1].End

	label := strings.TrimSpace(strings.ToLower(string(bytes.Join(labelParts, nil))))
	if label == "" {
		var textParts [][]byte
		for i := textStart; i < textEnd; i++ {
			textParts = append(textParts, ip.tokens[i].Source)
		}
		label = strings.TrimSpace(strings.ToLower(string(bytes.Join(textParts, nil))))
	}

	def, found := ip.linkDefs[label]
	if !found {
		ip.pos = textStart - 1

		return nil
	}

	children := ip.parseSubRange(textStart, textEnd)

	return NewNodeBuilder(NodeTypeLink).
		WithHandle(ip.owner.allocHandle()).
		WithStart(startOffset).
		WithEnd(endOffset).
		WithSource(ip.source[startOffset:endOffset]).
		WithURL(def.url).
		WithChildren(children).
		Build()
}

// parseShortcutLink parses [text] as a shortcut reference link.
func (ip *inlineParser) parseShortcutLink(startOffset, textStart, textEnd int) Node {
	endOffset := ip.tokens[ip.pos-1].End

	var textParts [][]byte
	for i := textStart; i < textEnd; i++ {
		textParts = append(textParts, ip.tokens[i].Source)
	}
	label := strings.TrimSpace(strings.ToLower(string(bytes.Join(textParts, nil))))

	def, found := ip.linkDefs[label]
	if !found {
		ip.pos = textStart - 1

		return nil
	}

	children := ip.parseSubRange(textStart, textEnd)

	return NewNodeBuilder(NodeTypeLink).
		WithHandle(ip.owner.allocHandle()).
		WithStart(startOffset).
		WithEnd(endOffset).
		WithSource(ip.source[startOffset:endOffset]).
		WithURL(def.url).
		WithChildren(children).
		Build()
}
