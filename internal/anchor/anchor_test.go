package anchor

import (
	"testing"

	"github.com/markdown-neuraxis/mdcore/internal/buffer"
	"github.com/markdown-neuraxis/mdcore/internal/markdown"
)

func mustParse(t *testing.T, src string) markdown.Node {
	t.Helper()
	tree, errs := markdown.Parse([]byte(src))
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	return tree
}

func TestInitializeFromTree_OneAnchorPerAnchorableBlock(t *testing.T) {
	tree := mustParse(t, "# Title\n\nsome text\n")
	r := NewRegistry()
	r.InitializeFromTree(tree)

	if len(r.Anchors()) != 2 {
		t.Fatalf("expected 2 anchors (heading + paragraph), got %d", len(r.Anchors()))
	}
}

func TestInitializeFromTree_NestedListItemsDoNotOverlap(t *testing.T) {
	tree := mustParse(t, "- a\n  - b\n- c\n")
	r := NewRegistry()
	r.InitializeFromTree(tree)

	anchors := r.Anchors()
	for i := 0; i < len(anchors); i++ {
		for j := i + 1; j < len(anchors); j++ {
			a, b := anchors[i], anchors[j]
			if a.Start < b.End && b.Start < a.End {
				t.Errorf("anchors overlap: [%d,%d) and [%d,%d)", a.Start, a.End, b.Start, b.End)
			}
		}
	}
}

func TestTransform_InsertionBeforeAnchorShiftsRange(t *testing.T) {
	r := NewRegistry()
	r.anchors = []*Anchor{{ID: NewID(), Start: 10, End: 20}}

	d := buffer.Delta{BaseLen: 30, Ops: []buffer.Op{
		buffer.Insert([]byte("12345")), buffer.Copy(0, 30),
	}}
	r.Transform(d)

	if r.anchors[0].Start != 15 || r.anchors[0].End != 25 {
		t.Errorf("expected anchor shifted to [15,25), got [%d,%d)", r.anchors[0].Start, r.anchors[0].End)
	}
}

func TestTransform_InsertionAtStartPushesAnchorForward(t *testing.T) {
	r := NewRegistry()
	r.anchors = []*Anchor{{ID: NewID(), Start: 5, End: 10}}

	d := buffer.Delta{BaseLen: 10, Ops: []buffer.Op{
		buffer.Copy(0, 5), buffer.Insert([]byte("XX")), buffer.Copy(5, 10),
	}}
	r.Transform(d)

	if r.anchors[0].Start != 7 {
		t.Errorf("expected insertion exactly at anchor start to push it forward, got start=%d", r.anchors[0].Start)
	}
}

func TestTransform_InsertionAtEndDoesNotExtendAnchor(t *testing.T) {
	r := NewRegistry()
	r.anchors = []*Anchor{{ID: NewID(), Start: 0, End: 5}}

	d := buffer.Delta{BaseLen: 10, Ops: []buffer.Op{
		buffer.Copy(0, 5), buffer.Insert([]byte("XX")), buffer.Copy(5, 10),
	}}
	r.Transform(d)

	if r.anchors[0].End != 5 {
		t.Errorf("expected insertion exactly at anchor end not to extend it, got end=%d", r.anchors[0].End)
	}
}

func TestTransform_DropsAnchorsThatCollapseToEmpty(t *testing.T) {
	r := NewRegistry()
	r.anchors = []*Anchor{{ID: NewID(), Start: 5, End: 10}}

	// Delete [0,10): the anchor's whole range disappears.
	d := buffer.Delta{BaseLen: 10, Ops: []buffer.Op{}}
	r.Transform(d)

	if len(r.anchors) != 0 {
		t.Errorf("expected anchor spanning a fully-deleted region to be dropped, got %v", r.anchors)
	}
}

func TestRebind_InteriorEditPreservesId(t *testing.T) {
	oldTree := mustParse(t, "- alpha\n- beta")
	r := NewRegistry()
	r.InitializeFromTree(oldTree)

	var betaID ID
	for _, a := range r.Anchors() {
		if a.Start == 8 {
			betaID = a.ID
		}
	}
	if betaID == (ID{}) {
		t.Fatal("expected to find the second list item's anchor")
	}

	// InsertText{at:14, text:"!"} -> "- alpha\n- beta!"
	d := buffer.Delta{BaseLen: 14, Ops: []buffer.Op{
		buffer.Copy(0, 14), buffer.Insert([]byte("!")),
	}}
	newSource := "- alpha\n- beta!"
	newTree, errs := markdown.Parse([]byte(newSource))
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	r.Transform(d)
	r.Rebind(newTree, d.ChangedRanges())

	found := false
	for _, a := range r.Anchors() {
		if a.ID == betaID {
			found = true

			if a.End != 15 {
				t.Errorf("expected beta's anchor to extend to 15, got end=%d", a.End)
			}
		}
	}
	if !found {
		t.Error("expected beta's anchor id to survive the interior edit")
	}
}

func TestRebind_UniqueIdsAfterRebind(t *testing.T) {
	tree := mustParse(t, "- a\n- b\n- c")
	r := NewRegistry()
	r.InitializeFromTree(tree)
	r.Rebind(tree, nil)

	seen := make(map[ID]bool)
	for _, a := range r.Anchors() {
		if seen[a.ID] {
			t.Errorf("duplicate anchor id %v after rebind", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestCreateMissing_AddsAnchorsForUnanchoredBlocks(t *testing.T) {
	tree := mustParse(t, "# Title\n\nbody\n")
	r := NewRegistry()
	r.CreateMissing(tree)

	if len(r.Anchors()) != 2 {
		t.Fatalf("expected CreateMissing to anchor both blocks from empty, got %d", len(r.Anchors()))
	}

	// Idempotent: calling again must not duplicate.
	r.CreateMissing(tree)
	if len(r.Anchors()) != 2 {
		t.Errorf("expected CreateMissing to be idempotent, got %d anchors", len(r.Anchors()))
	}
}

func TestLookupByRange(t *testing.T) {
	tree := mustParse(t, "# Title\n")
	r := NewRegistry()
	r.InitializeFromTree(tree)

	a := r.LookupByRange(0, 8)
	if a == nil {
		t.Fatal("expected to find the heading anchor by its range")
	}
	if r.LookupByRange(100, 200) != nil {
		t.Error("expected no anchor for a range that doesn't exist")
	}
}
