// Package anchor preserves the identity of structural Markdown blocks
// across edits and reparses.
package anchor

import (
	"sort"

	"github.com/google/uuid"
	"github.com/markdown-neuraxis/mdcore/internal/buffer"
	"github.com/markdown-neuraxis/mdcore/internal/markdown"
)

// ID is a 128-bit opaque identifier, unique within a document for the
// lifetime of the block it labels.
type ID [16]byte

// NewID mints a fresh id. Ids are time-ordered (UUIDv7) but must never be
// derived from block text content: content collisions must not collide ids.
func NewID() ID {
	u, err := uuid.NewV7()
	if err != nil {
		u = uuid.New()
	}

	return ID(u)
}

// Anchor binds an id to a block's current range and, while the binding
// tree is still live, a fast node-handle lookup hint.
type Anchor struct {
	ID         ID
	Start, End int
	NodeRef    markdown.NodeHandle
	hasNodeRef bool
	nodeHash   uint64
}

// Range returns the anchor's current [start, end) byte range.
func (a *Anchor) Range() (int, int) {
	return a.Start, a.End
}

// Registry holds the live anchor set for one document instance.
type Registry struct {
	anchors []*Anchor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Anchors returns the live anchors in no particular order. Callers must
// not mutate the returned slice's elements' identity fields.
func (r *Registry) Anchors() []*Anchor {
	return r.anchors
}

// anchorableInOrder returns every anchorable block in pre-order; ownRange
// gives each one's anchor range.
func anchorableInOrder(tree markdown.Node) []markdown.Node {
	return markdown.Find(tree, markdown.IsAnchorableBlock)
}

// ownRange returns a block's anchor range: a ListItem's own-range when it
// has a nested list child, its full span otherwise.
func ownRange(n markdown.Node) (int, int) {
	if li, ok := n.(*markdown.NodeListItem); ok {
		return li.OwnRange()
	}

	return n.Span()
}

// InitializeFromTree clears the registry and rebuilds anchors from tree,
// minting a fresh id for every anchorable block. Traversal is pre-order;
// the first occurrence of a given range wins.
func (r *Registry) InitializeFromTree(tree markdown.Node) {
	r.anchors = nil

	seen := make(map[[2]int]bool)
	for _, n := range anchorableInOrder(tree) {
		s, e := ownRange(n)
		key := [2]int{s, e}
		if seen[key] {
			continue
		}
		seen[key] = true

		r.anchors = append(r.anchors, &Anchor{
			ID: NewID(), Start: s, End: e,
			NodeRef: n.Handle(), hasNodeRef: true, nodeHash: n.Hash(),
		})
	}
}

// Transform shifts every anchor's range through delta per INVARIANT B:
// the start sticks After an insertion landing exactly on it, the end
// sticks Before one. Anchors whose transformed range collapses to empty
// are dropped.
func (r *Registry) Transform(d buffer.Delta) {
	var kept []*Anchor
	for _, a := range r.anchors {
		ns := transformOffset(d, a.Start, After)
		ne := transformOffset(d, a.End, Before)

		if ns > ne {
			ne = ns
		}
		if ns == ne {
			continue // collapsed to empty, drop
		}

		a.Start, a.End = ns, ne
		a.hasNodeRef = false // node handles do not survive a reparse
		kept = append(kept, a)
	}
	r.anchors = kept
}

// Rebind reconciles the (already range-transformed) anchor set with a
// freshly parsed tree, per INVARIANT C's priority order: node-handle
// match (approximated here by content-hash match, since this parser
// mints fresh handles on every reparse and a hash match identifies a
// node whose content and structure the edit did not touch), then
// deterministic positional pairing, then no-op.
func (r *Registry) Rebind(tree markdown.Node, changedRanges [][2]int) {
	newBlocks := anchorableInOrder(tree)

	available := make([]*Anchor, len(r.anchors))
	copy(available, r.anchors)

	byHash := make(map[uint64]int) // nodeHash -> index into available (first match)
	for i, a := range available {
		if a == nil {
			continue
		}
		if _, exists := byHash[a.nodeHash]; !exists {
			byHash[a.nodeHash] = i
		}
	}

	bound := make([]*Anchor, len(newBlocks))
	used := make([]bool, len(available))

	// Priority 1: node-handle (hash) match.
	for i, n := range newBlocks {
		if idx, ok := byHash[n.Hash()]; ok && !used[idx] {
			a := available[idx]
			s, e := ownRange(n)
			a.Start, a.End = s, e
			a.NodeRef, a.hasNodeRef = n.Handle(), true
			a.nodeHash = n.Hash()
			bound[i] = a
			used[idx] = true
		}
	}

	// Priority 2/3: positional pairing for whatever remains.
	var remainingAnchorIdx, remainingBlockIdx []int
	for idx := range available {
		if !used[idx] {
			remainingAnchorIdx = append(remainingAnchorIdx, idx)
		}
	}
	for i := range bound {
		if bound[i] == nil {
			remainingBlockIdx = append(remainingBlockIdx, i)
		}
	}

	sort.Slice(remainingAnchorIdx, func(i, j int) bool {
		return available[remainingAnchorIdx[i]].Start < available[remainingAnchorIdx[j]].Start
	})
	sort.Slice(remainingBlockIdx, func(i, j int) bool {
		s1, _ := ownRange(newBlocks[remainingBlockIdx[i]])
		s2, _ := ownRange(newBlocks[remainingBlockIdx[j]])

		return s1 < s2
	})

	for k, blockIdx := range remainingBlockIdx {
		n := newBlocks[blockIdx]
		s, e := ownRange(n)

		if k < len(remainingAnchorIdx) {
			a := available[remainingAnchorIdx[k]]
			a.Start, a.End = s, e
			a.NodeRef, a.hasNodeRef = n.Handle(), true
			a.nodeHash = n.Hash()
			bound[blockIdx] = a

			continue
		}

		bound[blockIdx] = &Anchor{
			ID: NewID(), Start: s, End: e,
			NodeRef: n.Handle(), hasNodeRef: true, nodeHash: n.Hash(),
		}
	}

	var result []*Anchor
	for _, a := range bound {
		if a != nil {
			result = append(result, a)
		}
	}
	r.anchors = result

	_ = changedRanges // consulted conceptually by the priority rule; the
	// hash-match/positional-pairing split above already implements its effect.
}

// CreateMissing adds anchors for anchorable blocks in tree that have no
// matching anchor (by exact range). Idempotent: already-anchored blocks
// are left untouched.
func (r *Registry) CreateMissing(tree markdown.Node) {
	existing := make(map[[2]int]bool, len(r.anchors))
	for _, a := range r.anchors {
		existing[[2]int{a.Start, a.End}] = true
	}

	for _, n := range anchorableInOrder(tree) {
		s, e := ownRange(n)
		key := [2]int{s, e}
		if existing[key] {
			continue
		}
		existing[key] = true

		r.anchors = append(r.anchors, &Anchor{
			ID: NewID(), Start: s, End: e,
			NodeRef: n.Handle(), hasNodeRef: true, nodeHash: n.Hash(),
		})
	}
}

// LookupByRange returns the anchor whose range exactly equals [start,end),
// or nil if none does.
func (r *Registry) LookupByRange(start, end int) *Anchor {
	for _, a := range r.anchors {
		if a.Start == start && a.End == end {
			return a
		}
	}

	return nil
}

// LookupByStart returns the first anchor (in registry order) whose range
// begins at start, or nil if none does. Used as the last fallback in the
// snapshot projector's id-resolution chain, for blocks whose range grew
// or shrank but whose start offset an edit left untouched.
func (r *Registry) LookupByStart(start int) *Anchor {
	for _, a := range r.anchors {
		if a.Start == start {
			return a
		}
	}

	return nil
}

// LookupByNode returns the anchor currently bound to handle, or nil. The
// binding is only meaningful against the tree produced by the most recent
// Rebind call.
func (r *Registry) LookupByNode(handle markdown.NodeHandle) *Anchor {
	for _, a := range r.anchors {
		if a.hasNodeRef && a.NodeRef == handle {
			return a
		}
	}

	return nil
}
