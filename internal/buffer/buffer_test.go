package buffer

import (
	"bytes"
	"testing"
)

func TestBuffer_SliceClampsSilently(t *testing.T) {
	b := New([]byte("hello"))

	if got := b.Slice(-5, 100); string(got) != "hello" {
		t.Errorf("expected full clamp to return entire buffer, got %q", got)
	}
	if got := b.Slice(10, 20); len(got) != 0 {
		t.Errorf("expected out-of-range slice to be empty, got %q", got)
	}
	if got := b.Slice(3, 1); len(got) != 0 {
		t.Errorf("expected reversed range to clamp to empty, got %q", got)
	}
}

func TestBuffer_ApplyInsertAtStart(t *testing.T) {
	b := New([]byte("world"))
	d := Delta{BaseLen: 5, Ops: []Op{Insert([]byte("hello ")), Copy(0, 5)}}

	got := b.Apply(d)
	if string(got.Bytes()) != "hello world" {
		t.Errorf("got %q", got.Bytes())
	}
}

func TestBuffer_ApplyDeletion(t *testing.T) {
	b := New([]byte("abcdef"))
	d := Delta{BaseLen: 6, Ops: []Op{Copy(0, 2), Copy(4, 6)}}

	got := b.Apply(d)
	if string(got.Bytes()) != "abef" {
		t.Errorf("got %q", got.Bytes())
	}
}

func TestDelta_ChangedRanges(t *testing.T) {
	d := Delta{BaseLen: 5, Ops: []Op{Copy(0, 2), Insert([]byte("XY")), Copy(2, 5)}}

	ranges := d.ChangedRanges()
	if len(ranges) != 1 || ranges[0] != [2]int{2, 4} {
		t.Errorf("expected a single changed range [2,4), got %v", ranges)
	}
}

func TestDelta_EditsPureInsertion(t *testing.T) {
	old := []byte("abcdef")
	d := Delta{BaseLen: 6, Ops: []Op{Copy(0, 3), Insert([]byte("XYZ")), Copy(3, 6)}}

	edits := d.Edits(old)
	if len(edits) != 1 {
		t.Fatalf("expected exactly one edit, got %d: %+v", len(edits), edits)
	}
	e := edits[0]
	if e.StartByte != 3 || e.OldEndByte != 3 || e.NewEndByte != 6 {
		t.Errorf("unexpected byte offsets: %+v", e)
	}
}

func TestDelta_EditsPureDeletion(t *testing.T) {
	old := []byte("abcdef")
	d := Delta{BaseLen: 6, Ops: []Op{Copy(0, 2), Copy(4, 6)}}

	edits := d.Edits(old)
	if len(edits) != 1 {
		t.Fatalf("expected exactly one edit, got %d: %+v", len(edits), edits)
	}
	e := edits[0]
	if e.StartByte != 2 || e.OldEndByte != 4 || e.NewEndByte != 2 {
		t.Errorf("unexpected byte offsets: %+v", e)
	}
}

func TestDelta_EditsTrailingDeletion(t *testing.T) {
	old := []byte("abcdef")
	d := Delta{BaseLen: 6, Ops: []Op{Copy(0, 3)}}

	edits := d.Edits(old)
	if len(edits) != 1 {
		t.Fatalf("expected one trailing-deletion edit, got %+v", edits)
	}
	if edits[0].StartByte != 3 || edits[0].OldEndByte != 6 {
		t.Errorf("unexpected trailing gap: %+v", edits[0])
	}
}

func TestDelta_EditsPointsAccountForEmbeddedNewlines(t *testing.T) {
	old := []byte("line1\nline2")
	d := Delta{BaseLen: len(old), Ops: []Op{
		Copy(0, 6), Insert([]byte("a\nb")), Copy(6, len(old)),
	}}

	edits := d.Edits(old)
	if len(edits) != 1 {
		t.Fatalf("expected one insertion edit, got %+v", edits)
	}
	e := edits[0]
	if e.StartPoint != (Point{Row: 1, Col: 0}) {
		t.Errorf("expected insertion point at row 1 col 0, got %+v", e.StartPoint)
	}
	if e.NewEndPoint != (Point{Row: 2, Col: 1}) {
		t.Errorf("expected new_end_point to reflect the embedded newline, got %+v", e.NewEndPoint)
	}
}

func TestDelta_HasInsert(t *testing.T) {
	withInsert := Delta{BaseLen: 3, Ops: []Op{Copy(0, 1), Insert([]byte("x")), Copy(1, 3)}}
	pureCopy := Delta{BaseLen: 3, Ops: []Op{Copy(0, 3)}}

	if !withInsert.HasInsert() {
		t.Error("expected HasInsert to be true when an Insert element is present")
	}
	if pureCopy.HasInsert() {
		t.Error("expected HasInsert to be false for a pure-copy delta")
	}
}

func TestBuffer_RoundTripNoOpDelta(t *testing.T) {
	original := []byte("unchanged content\nacross lines\n")
	b := New(original)
	d := Delta{BaseLen: len(original), Ops: []Op{Copy(0, len(original))}}

	got := b.Apply(d)
	if !bytes.Equal(got.Bytes(), original) {
		t.Errorf("expected identity delta to round-trip exactly, got %q", got.Bytes())
	}
}
