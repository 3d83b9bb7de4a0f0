package markdown

import (
	"errors"
)

// ErrSkipChildren is a sentinel error that can be returned from a visitor method
// to skip traversal of the current node's children. The traversal will continue
// with the next sibling. This is NOT treated as an actual error.
//
//nolint:errname,revive,staticcheck // keeping legacy name SkipChildren for backward compat
var SkipChildren = errors.New("skip children")

// Visitor defines the interface for AST node visitors.
// Each method receives a typed node and returns an error to control traversal.
// Return nil to continue traversal, SkipChildren to skip children, or any other
// error to stop traversal immediately.
//
//nolint:revive // exported: interface methods are self-documenting
type Visitor interface {
	VisitDocument(*NodeDocument) error
	VisitSection(*NodeSection) error
	VisitHeading(*NodeHeading) error
	VisitParagraph(*NodeParagraph) error
	VisitList(*NodeList) error
	VisitListItem(*NodeListItem) error
	VisitFencedCode(*NodeFencedCode) error
	VisitIndentedCode(*NodeIndentedCode) error
	VisitBlockQuote(*NodeBlockQuote) error
	VisitThematicBreak(*NodeThematicBreak) error
	VisitLinkDef(*NodeLinkDef) error
	VisitUnhandled(*NodeUnhandled) error
	VisitText(*NodeText) error
	VisitHardBreak(*NodeHardBreak) error
	VisitStrong(*NodeStrong) error
	VisitEmphasis(*NodeEmphasis) error
	VisitStrikethrough(*NodeStrikethrough) error
	VisitCode(*NodeCode) error
	VisitLink(*NodeLink) error
	VisitImage(*NodeImage) error
	VisitWikiLink(*NodeWikiLink) error
}

// BaseVisitor provides no-op default implementations for all Visitor methods.
// Embed this struct in custom visitors to only override the methods you need.
type BaseVisitor struct{}

// VisitDocument is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitDocument(*NodeDocument) error { return nil }

// VisitSection is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitSection(*NodeSection) error { return nil }

// VisitHeading is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitHeading(*NodeHeading) error { return nil }

// VisitParagraph is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitParagraph(*NodeParagraph) error { return nil }

// VisitList is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitList(*NodeList) error { return nil }

// VisitListItem is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitListItem(*NodeListItem) error { return nil }

// VisitFencedCode is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitFencedCode(*NodeFencedCode) error { return nil }

// VisitIndentedCode is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitIndentedCode(*NodeIndentedCode) error { return nil }

// VisitBlockQuote is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitBlockQuote(*NodeBlockQuote) error { return nil }

// VisitThematicBreak is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitThematicBreak(*NodeThematicBreak) error { return nil }

// VisitLinkDef is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitLinkDef(*NodeLinkDef) error { return nil }

// VisitUnhandled is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitUnhandled(*NodeUnhandled) error { return nil }

// VisitText is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitText(*NodeText) error { return nil }

// VisitHardBreak is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitHardBreak(*NodeHardBreak) error { return nil }

// VisitStrong is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitStrong(*NodeStrong) error { return nil }

// VisitEmphasis is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitEmphasis(*NodeEmphasis) error { return nil }

// VisitStrikethrough is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitStrikethrough(*NodeStrikethrough) error { return nil }

// VisitCode is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitCode(*NodeCode) error { return nil }

// VisitLink is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitLink(*NodeLink) error { return nil }

// VisitImage is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitImage(*NodeImage) error { return nil }

// VisitWikiLink is a no-op that returns nil (continue traversal).
func (BaseVisitor) VisitWikiLink(*NodeWikiLink) error { return nil }

// Walk traverses the AST in pre-order depth-first order, calling the appropriate
// visitor method for each node. It handles the traversal logic including child
// recursion and error handling.
//
// If a visitor method returns SkipChildren, the children of that node are skipped
// but traversal continues with the next sibling.
//
// If a visitor method returns any other non-nil error, traversal stops immediately
// and that error is returned.
//
// Walk safely handles nil nodes by returning nil without calling any visitor methods.
//
//nolint:revive // function-length - visitor dispatch requires handling all node types
func Walk(node Node, v Visitor) error {
	if node == nil {
		return nil
	}

	var err error
	switch n := node.(type) {
	case *NodeDocument:
		err = v.VisitDocument(n)
	case *NodeSection:
		err = v.VisitSection(n)
	case *NodeHeading:
		err = v.VisitHeading(n)
	case *NodeParagraph:
		err = v.VisitParagraph(n)
	case *NodeList:
		err = v.VisitList(n)
	case *NodeListItem:
		err = v.VisitListItem(n)
	case *NodeFencedCode:
		err = v.VisitFencedCode(n)
	case *NodeIndentedCode:
		err = v.VisitIndentedCode(n)
	case *NodeBlockQuote:
		err = v.VisitBlockQuote(n)
	case *NodeThematicBreak:
		err = v.VisitThematicBreak(n)
	case *NodeLinkDef:
		err = v.VisitLinkDef(n)
	case *NodeUnhandled:
		err = v.VisitUnhandled(n)
	case *NodeText:
		err = v.VisitText(n)
	case *NodeHardBreak:
		err = v.VisitHardBreak(n)
	case *NodeStrong:
		err = v.VisitStrong(n)
	case *NodeEmphasis:
		err = v.VisitEmphasis(n)
	case *NodeStrikethrough:
		err = v.VisitStrikethrough(n)
	case *NodeCode:
		err = v.VisitCode(n)
	case *NodeLink:
		err = v.VisitLink(n)
	case *NodeImage:
		err = v.VisitImage(n)
	case *NodeWikiLink:
		err = v.VisitWikiLink(n)
	default:
		// Unknown node type - skip it
		return nil
	}

	if err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}

		return err
	}

	for _, child := range node.Children() {
		if err := Walk(child, v); err != nil {
			return err
		}
	}

	return nil
}

// VisitorContext provides context information during traversal,
// including access to the parent node and current depth.
type VisitorContext struct {
	parent Node
	depth  int
}

// Parent returns the parent node of the current node being visited.
// Returns nil for the root node.
func (c *VisitorContext) Parent() Node {
	return c.parent
}

// Depth returns the current depth in the tree.
// The root node has depth 0.
func (c *VisitorContext) Depth() int {
	return c.depth
}

// ContextVisitor is a visitor interface that receives context information
// during traversal, including parent node access.
//
//nolint:revive // exported: interface methods are self-documenting
type ContextVisitor interface {
	VisitDocumentWithContext(*NodeDocument, *VisitorContext) error
	VisitSectionWithContext(*NodeSection, *VisitorContext) error
	VisitHeadingWithContext(*NodeHeading, *VisitorContext) error
	VisitParagraphWithContext(*NodeParagraph, *VisitorContext) error
	VisitListWithContext(*NodeList, *VisitorContext) error
	VisitListItemWithContext(*NodeListItem, *VisitorContext) error
	VisitFencedCodeWithContext(*NodeFencedCode, *VisitorContext) error
	VisitIndentedCodeWithContext(*NodeIndentedCode, *VisitorContext) error
	VisitBlockQuoteWithContext(*NodeBlockQuote, *VisitorContext) error
	VisitThematicBreakWithContext(*NodeThematicBreak, *VisitorContext) error
	VisitLinkDefWithContext(*NodeLinkDef, *VisitorContext) error
	VisitUnhandledWithContext(*NodeUnhandled, *VisitorContext) error
	VisitTextWithContext(*NodeText, *VisitorContext) error
	VisitHardBreakWithContext(*NodeHardBreak, *VisitorContext) error
	VisitStrongWithContext(*NodeStrong, *VisitorContext) error
	VisitEmphasisWithContext(*NodeEmphasis, *VisitorContext) error
	VisitStrikethroughWithContext(*NodeStrikethrough, *VisitorContext) error
	VisitCodeWithContext(*NodeCode, *VisitorContext) error
	VisitLinkWithContext(*NodeLink, *VisitorContext) error
	VisitImageWithContext(*NodeImage, *VisitorContext) error
	VisitWikiLinkWithContext(*NodeWikiLink, *VisitorContext) error
}

// BaseContextVisitor provides no-op defaults for all ContextVisitor methods.
type BaseContextVisitor struct{}

// VisitDocumentWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitDocumentWithContext(*NodeDocument, *VisitorContext) error {
	return nil
}

// VisitSectionWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitSectionWithContext(*NodeSection, *VisitorContext) error {
	return nil
}

// VisitHeadingWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitHeadingWithContext(*NodeHeading, *VisitorContext) error {
	return nil
}

// VisitParagraphWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitParagraphWithContext(*NodeParagraph, *VisitorContext) error {
	return nil
}

// VisitListWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitListWithContext(*NodeList, *VisitorContext) error {
	return nil
}

// VisitListItemWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitListItemWithContext(*NodeListItem, *VisitorContext) error {
	return nil
}

// VisitFencedCodeWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitFencedCodeWithContext(*NodeFencedCode, *VisitorContext) error {
	return nil
}

// VisitIndentedCodeWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitIndentedCodeWithContext(*NodeIndentedCode, *VisitorContext) error {
	return nil
}

// VisitBlockQuoteWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitBlockQuoteWithContext(*NodeBlockQuote, *VisitorContext) error {
	return nil
}

// VisitThematicBreakWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitThematicBreakWithContext(*NodeThematicBreak, *VisitorContext) error {
	return nil
}

// VisitLinkDefWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitLinkDefWithContext(*NodeLinkDef, *VisitorContext) error {
	return nil
}

// VisitUnhandledWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitUnhandledWithContext(*NodeUnhandled, *VisitorContext) error {
	return nil
}

// VisitTextWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitTextWithContext(*NodeText, *VisitorContext) error {
	return nil
}

// VisitHardBreakWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitHardBreakWithContext(*NodeHardBreak, *VisitorContext) error {
	return nil
}

// VisitStrongWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitStrongWithContext(*NodeStrong, *VisitorContext) error {
	return nil
}

// VisitEmphasisWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitEmphasisWithContext(*NodeEmphasis, *VisitorContext) error {
	return nil
}

// VisitStrikethroughWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitStrikethroughWithContext(*NodeStrikethrough, *VisitorContext) error {
	return nil
}

// VisitCodeWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitCodeWithContext(*NodeCode, *VisitorContext) error {
	return nil
}

// VisitLinkWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitLinkWithContext(*NodeLink, *VisitorContext) error {
	return nil
}

// VisitImageWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitImageWithContext(*NodeImage, *VisitorContext) error {
	return nil
}

// VisitWikiLinkWithContext is a no-op that returns nil.
func (BaseContextVisitor) VisitWikiLinkWithContext(*NodeWikiLink, *VisitorContext) error {
	return nil
}

// WalkWithContext traverses the AST like Walk but provides context information
// including parent node access to the visitor.
func WalkWithContext(node Node, v ContextVisitor) error {
	return walkWithContextInternal(node, v, nil, 0)
}

//nolint:revive // function-length: visitor dispatch requires handling all node types
func walkWithContextInternal(
	node Node,
	v ContextVisitor,
	parent Node,
	depth int,
) error {
	if node == nil {
		return nil
	}

	ctx := &VisitorContext{
		parent: parent,
		depth:  depth,
	}

	var err error
	switch n := node.(type) {
	case *NodeDocument:
		err = v.VisitDocumentWithContext(n, ctx)
	case *NodeSection:
		err = v.VisitSectionWithContext(n, ctx)
	case *NodeHeading:
		err = v.VisitHeadingWithContext(n, ctx)
	case *NodeParagraph:
		err = v.VisitParagraphWithContext(n, ctx)
	case *NodeList:
		err = v.VisitListWithContext(n, ctx)
	case *NodeListItem:
		err = v.VisitListItemWithContext(n, ctx)
	case *NodeFencedCode:
		err = v.VisitFencedCodeWithContext(n, ctx)
	case *NodeIndentedCode:
		err = v.VisitIndentedCodeWithContext(n, ctx)
	case *NodeBlockQuote:
		err = v.VisitBlockQuoteWithContext(n, ctx)
	case *NodeThematicBreak:
		err = v.VisitThematicBreakWithContext(n, ctx)
	case *NodeLinkDef:
		err = v.VisitLinkDefWithContext(n, ctx)
	case *NodeUnhandled:
		err = v.VisitUnhandledWithContext(n, ctx)
	case *NodeText:
		err = v.VisitTextWithContext(n, ctx)
	case *NodeHardBreak:
		err = v.VisitHardBreakWithContext(n, ctx)
	case *NodeStrong:
		err = v.VisitStrongWithContext(n, ctx)
	case *NodeEmphasis:
		err = v.VisitEmphasisWithContext(n, ctx)
	case *NodeStrikethrough:
		err = v.VisitStrikethroughWithContext(n, ctx)
	case *NodeCode:
		err = v.VisitCodeWithContext(n, ctx)
	case *NodeLink:
		err = v.VisitLinkWithContext(n, ctx)
	case *NodeImage:
		err = v.VisitImageWithContext(n, ctx)
	case *NodeWikiLink:
		err = v.VisitWikiLinkWithContext(n, ctx)
	default:
		return nil
	}

	if err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}

		return err
	}

	for _, child := range node.Children() {
		if err := walkWithContextInternal(child, v, node, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// EnterLeaveVisitor defines the interface for visitors that need to perform
// actions both before (Enter) and after (Leave) visiting a node's children.
// This is useful for operations that need to maintain state or perform
// cleanup, such as building output or managing a stack.
//
//nolint:revive // exported: interface methods are self-documenting
type EnterLeaveVisitor interface {
	EnterDocument(*NodeDocument) error
	LeaveDocument(*NodeDocument) error
	EnterSection(*NodeSection) error
	LeaveSection(*NodeSection) error
	EnterHeading(*NodeHeading) error
	LeaveHeading(*NodeHeading) error
	EnterParagraph(*NodeParagraph) error
	LeaveParagraph(*NodeParagraph) error
	EnterList(*NodeList) error
	LeaveList(*NodeList) error
	EnterListItem(*NodeListItem) error
	LeaveListItem(*NodeListItem) error
	EnterFencedCode(*NodeFencedCode) error
	LeaveFencedCode(*NodeFencedCode) error
	EnterIndentedCode(*NodeIndentedCode) error
	LeaveIndentedCode(*NodeIndentedCode) error
	EnterBlockQuote(*NodeBlockQuote) error
	LeaveBlockQuote(*NodeBlockQuote) error
	EnterThematicBreak(*NodeThematicBreak) error
	LeaveThematicBreak(*NodeThematicBreak) error
	EnterLinkDef(*NodeLinkDef) error
	LeaveLinkDef(*NodeLinkDef) error
	EnterUnhandled(*NodeUnhandled) error
	LeaveUnhandled(*NodeUnhandled) error
	EnterText(*NodeText) error
	LeaveText(*NodeText) error
	EnterHardBreak(*NodeHardBreak) error
	LeaveHardBreak(*NodeHardBreak) error
	EnterStrong(*NodeStrong) error
	LeaveStrong(*NodeStrong) error
	EnterEmphasis(*NodeEmphasis) error
	LeaveEmphasis(*NodeEmphasis) error
	EnterStrikethrough(*NodeStrikethrough) error
	LeaveStrikethrough(*NodeStrikethrough) error
	EnterCode(*NodeCode) error
	LeaveCode(*NodeCode) error
	EnterLink(*NodeLink) error
	LeaveLink(*NodeLink) error
	EnterImage(*NodeImage) error
	LeaveImage(*NodeImage) error
	EnterWikiLink(*NodeWikiLink) error
	LeaveWikiLink(*NodeWikiLink) error
}

// BaseEnterLeaveVisitor provides no-op default implementations for all
// EnterLeaveVisitor methods. Embed this struct in custom visitors to only
// override the methods you need.
type BaseEnterLeaveVisitor struct{}

// EnterDocument is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterDocument(*NodeDocument) error { return nil }

// LeaveDocument is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveDocument(*NodeDocument) error { return nil }

// EnterSection is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterSection(*NodeSection) error { return nil }

// LeaveSection is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveSection(*NodeSection) error { return nil }

// EnterHeading is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterHeading(*NodeHeading) error { return nil }

// LeaveHeading is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveHeading(*NodeHeading) error { return nil }

// EnterParagraph is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterParagraph(*NodeParagraph) error { return nil }

// LeaveParagraph is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveParagraph(*NodeParagraph) error { return nil }

// EnterList is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterList(*NodeList) error { return nil }

// LeaveList is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveList(*NodeList) error { return nil }

// EnterListItem is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterListItem(*NodeListItem) error { return nil }

// LeaveListItem is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveListItem(*NodeListItem) error { return nil }

// EnterFencedCode is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterFencedCode(*NodeFencedCode) error { return nil }

// LeaveFencedCode is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveFencedCode(*NodeFencedCode) error { return nil }

// EnterIndentedCode is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterIndentedCode(*NodeIndentedCode) error { return nil }

// LeaveIndentedCode is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveIndentedCode(*NodeIndentedCode) error { return nil }

// EnterBlockQuote is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterBlockQuote(*NodeBlockQuote) error { return nil }

// LeaveBlockQuote is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveBlockQuote(*NodeBlockQuote) error { return nil }

// EnterThematicBreak is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterThematicBreak(*NodeThematicBreak) error { return nil }

// LeaveThematicBreak is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveThematicBreak(*NodeThematicBreak) error { return nil }

// EnterLinkDef is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterLinkDef(*NodeLinkDef) error { return nil }

// LeaveLinkDef is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveLinkDef(*NodeLinkDef) error { return nil }

// EnterUnhandled is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterUnhandled(*NodeUnhandled) error { return nil }

// LeaveUnhandled is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveUnhandled(*NodeUnhandled) error { return nil }

// EnterText is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterText(*NodeText) error { return nil }

// LeaveText is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveText(*NodeText) error { return nil }

// EnterHardBreak is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterHardBreak(*NodeHardBreak) error { return nil }

// LeaveHardBreak is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveHardBreak(*NodeHardBreak) error { return nil }

// EnterStrong is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterStrong(*NodeStrong) error { return nil }

// LeaveStrong is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveStrong(*NodeStrong) error { return nil }

// EnterEmphasis is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterEmphasis(*NodeEmphasis) error { return nil }

// LeaveEmphasis is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveEmphasis(*NodeEmphasis) error { return nil }

// EnterStrikethrough is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterStrikethrough(*NodeStrikethrough) error { return nil }

// LeaveStrikethrough is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveStrikethrough(*NodeStrikethrough) error { return nil }

// EnterCode is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterCode(*NodeCode) error { return nil }

// LeaveCode is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveCode(*NodeCode) error { return nil }

// EnterLink is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterLink(*NodeLink) error { return nil }

// LeaveLink is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveLink(*NodeLink) error { return nil }

// EnterImage is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterImage(*NodeImage) error { return nil }

// LeaveImage is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveImage(*NodeImage) error { return nil }

// EnterWikiLink is a no-op that returns nil.
func (BaseEnterLeaveVisitor) EnterWikiLink(*NodeWikiLink) error { return nil }

// LeaveWikiLink is a no-op that returns nil.
func (BaseEnterLeaveVisitor) LeaveWikiLink(*NodeWikiLink) error { return nil }

// WalkEnterLeave traverses the AST calling Enter methods before visiting children
// and Leave methods after visiting children.
//
// If an Enter method returns SkipChildren, the children are skipped but the
// corresponding Leave method is still called.
//
// If an Enter method returns any other non-nil error, traversal stops immediately
// and the Leave method is NOT called.
//
// If a Leave method returns a non-nil error, traversal stops immediately.
//
// WalkEnterLeave safely handles nil nodes by returning nil.
//
//nolint:revive // function-length: visitor dispatch requires handling all node types
func WalkEnterLeave(node Node, v EnterLeaveVisitor) error {
	if node == nil {
		return nil
	}

	skipChildren := false
	var err error

	switch n := node.(type) {
	case *NodeDocument:
		err = v.EnterDocument(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveDocument(n)

	case *NodeSection:
		err = v.EnterSection(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveSection(n)

	case *NodeHeading:
		err = v.EnterHeading(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveHeading(n)

	case *NodeParagraph:
		err = v.EnterParagraph(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveParagraph(n)

	case *NodeList:
		err = v.EnterList(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveList(n)

	case *NodeListItem:
		err = v.EnterListItem(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveListItem(n)

	case *NodeFencedCode:
		err = v.EnterFencedCode(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveFencedCode(n)

	case *NodeIndentedCode:
		err = v.EnterIndentedCode(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveIndentedCode(n)

	case *NodeBlockQuote:
		err = v.EnterBlockQuote(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveBlockQuote(n)

	case *NodeThematicBreak:
		err = v.EnterThematicBreak(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveThematicBreak(n)

	case *NodeLinkDef:
		err = v.EnterLinkDef(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveLinkDef(n)

	case *NodeUnhandled:
		err = v.EnterUnhandled(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveUnhandled(n)

	case *NodeText:
		err = v.EnterText(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveText(n)

	case *NodeHardBreak:
		err = v.EnterHardBreak(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveHardBreak(n)

	case *NodeStrong:
		err = v.EnterStrong(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveStrong(n)

	case *NodeEmphasis:
		err = v.EnterEmphasis(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveEmphasis(n)

	case *NodeStrikethrough:
		err = v.EnterStrikethrough(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveStrikethrough(n)

	case *NodeCode:
		err = v.EnterCode(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveCode(n)

	case *NodeLink:
		err = v.EnterLink(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveLink(n)

	case *NodeImage:
		err = v.EnterImage(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveImage(n)

	case *NodeWikiLink:
		err = v.EnterWikiLink(n)
		skipChildren, err = resolveEnterErr(err)
		if err != nil {
			return err
		}
		if !skipChildren {
			if err := walkEnterLeaveChildren(node, v); err != nil {
				return err
			}
		}

		return v.LeaveWikiLink(n)

	default:
		return nil
	}
}

// resolveEnterErr classifies an Enter* method's returned error: SkipChildren
// yields (true, nil), any other error is passed through, nil yields (false, nil).
func resolveEnterErr(err error) (skip bool, outErr error) {
	if err == nil {
		return false, nil
	}
	if errors.Is(err, SkipChildren) {
		return true, nil
	}

	return false, err
}

func walkEnterLeaveChildren(node Node, v EnterLeaveVisitor) error {
	for _, child := range node.Children() {
		if err := WalkEnterLeave(child, v); err != nil {
			return err
		}
	}

	return nil
}
