package mdcore

import (
	"testing"

	"github.com/markdown-neuraxis/mdcore/internal/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBytes_RoundTrip(t *testing.T) {
	src := []byte("# Hello\n\nSome *text* here.\n")
	doc, err := FromBytes(src)
	require.NoError(t, err)
	assert.Equal(t, src, doc.ToBytes())
}

func TestFromBytes_RejectsInvalidUTF8(t *testing.T) {
	_, err := FromBytes([]byte{0x68, 0x65, 0xff, 0x6c})
	require.Error(t, err)

	var target *ErrInvalidUTF8
	assert.ErrorAs(t, err, &target)
}

// S1 — Heading parse.
func TestScenario_S1_HeadingParse(t *testing.T) {
	doc, err := FromBytes([]byte("# Hello\n"))
	require.NoError(t, err)

	snap := doc.Snapshot()
	require.Len(t, snap.Blocks, 1)

	b := snap.Blocks[0]
	assert.Equal(t, BlockHeading, b.Kind)
	assert.Equal(t, 1, b.Level)
	assert.Equal(t, Range{Start: 0, End: 8}, b.NodeRange)
	assert.Equal(t, Range{Start: 2, End: 7}, b.ContentRange)
	require.Len(t, b.Lines, 1)
	assert.Equal(t, LineInfo{
		Full:    Range{Start: 0, End: 8},
		Prefix:  Range{Start: 0, End: 2},
		Content: Range{Start: 2, End: 7},
	}, b.Lines[0])
	assert.Equal(t, 0, b.Depth)
}

// S2 — Nested bullet anchors are unique.
func TestScenario_S2_NestedBulletAnchorsUnique(t *testing.T) {
	doc, err := FromBytes([]byte("- a\n  - b\n  - c\n    - d\n- e"))
	require.NoError(t, err)

	snap := doc.Snapshot()

	var items []RenderBlock
	for _, b := range snap.Blocks {
		if b.Kind == BlockListItem {
			items = append(items, b)
		}
	}
	require.Len(t, items, 5)

	depths := make([]int, len(items))
	seen := make(map[[16]byte]bool)
	for i, it := range items {
		depths[i] = it.Depth
		assert.False(t, seen[it.ID], "duplicate anchor id")
		seen[it.ID] = true
	}
	assert.Equal(t, []int{0, 1, 1, 2, 0}, depths)

	for i := 0; i < len(items)-1; i++ {
		assert.LessOrEqual(t, items[i].NodeRange.End, items[i+1].NodeRange.Start)
	}
}

// S3 — Interior edit preserves id.
func TestScenario_S3_InteriorEditPreservesID(t *testing.T) {
	doc, err := FromBytes([]byte("- alpha\n- beta"))
	require.NoError(t, err)

	before := doc.Snapshot()
	var betaID [16]byte
	for _, b := range before.Blocks {
		if b.ContentText == "beta" {
			betaID = b.ID
		}
	}

	patch, err := doc.Apply(InsertText{At: 14, Text: "!"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), patch.Version)

	after := doc.Snapshot()
	var found bool
	for _, b := range after.Blocks {
		if b.ContentText == "beta!" {
			assert.Equal(t, betaID, b.ID)
			found = true
		}
	}
	assert.True(t, found, "expected a block rendering \"beta!\"")
}

// S4 — Split list item.
func TestScenario_S4_SplitListItem(t *testing.T) {
	doc, err := FromBytes([]byte("- item 1"))
	require.NoError(t, err)
	doc.SetSelection(Selection{Start: 8, End: 8})

	before := doc.Snapshot()
	originalID := before.Blocks[0].ID

	patch, err := doc.Apply(SplitListItem{At: 8})
	require.NoError(t, err)

	assert.Equal(t, "- item 1\n- ", doc.Text())
	assert.Equal(t, Selection{Start: 11, End: 11}, patch.NewSelection)

	snap := doc.Snapshot()
	require.Len(t, snap.Blocks, 2)
	assert.Equal(t, originalID, snap.Blocks[0].ID)
	assert.NotEqual(t, snap.Blocks[0].ID, snap.Blocks[1].ID)
}

// S5 — Indent then outdent is idempotent on an already-outdented line.
func TestScenario_S5_IndentOutdentIdempotent(t *testing.T) {
	doc, err := FromBytes([]byte("- a\n- b\n- c"))
	require.NoError(t, err)

	before := doc.Snapshot()
	var ids []anchorIDs
	for _, b := range before.Blocks {
		ids = append(ids, anchorIDs{id: b.ID, kind: b.Kind, marker: b.Marker})
	}

	_, err = doc.Apply(IndentLines{Range: Range{Start: 0, End: 11}})
	require.NoError(t, err)
	_, err = doc.Apply(OutdentLines{Range: Range{Start: 0, End: 15}})
	require.NoError(t, err)

	assert.Equal(t, "- a\n- b\n- c", doc.Text())

	after := doc.Snapshot()
	require.Len(t, after.Blocks, len(before.Blocks))
	for i, b := range after.Blocks {
		assert.Equal(t, ids[i].id, b.ID)
		assert.Equal(t, ids[i].kind, b.Kind)
		assert.Equal(t, ids[i].marker, b.Marker)
	}
}

type anchorIDs struct {
	id     [16]byte
	kind   BlockKind
	marker markdown.ListMarkerKind
}

// S6 — Replace range, ids of untouched neighbours stable.
func TestScenario_S6_ReplaceRangeNeighboursStable(t *testing.T) {
	doc, err := FromBytes([]byte("# Title\n\n- one\n- two"))
	require.NoError(t, err)

	before := doc.Snapshot()
	var headingID, twoID [16]byte
	for _, b := range before.Blocks {
		switch {
		case b.Kind == BlockHeading:
			headingID = b.ID
		case b.ContentText == "two":
			twoID = b.ID
		}
	}

	patch, err := doc.Apply(ReplaceRange{Range: Range{Start: 10, End: 13}, Text: "ONE"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), patch.Version)

	after := doc.Snapshot()
	var sawONE bool
	for _, b := range after.Blocks {
		switch {
		case b.Kind == BlockHeading:
			assert.Equal(t, headingID, b.ID)
		case b.ContentText == "two":
			assert.Equal(t, twoID, b.ID)
		case b.ContentText == "ONE":
			sawONE = true
		}
	}
	assert.True(t, sawONE)
}

// A trailing-double-space hard break inside a paragraph surfaces as an
// InlineHardBreak element, not silently dropped at projection.
func TestSnapshot_ParagraphHardBreakIsAnInline(t *testing.T) {
	doc, err := FromBytes([]byte("line one  \nline two\n"))
	require.NoError(t, err)

	snap := doc.Snapshot()
	require.Len(t, snap.Blocks, 1)

	b := snap.Blocks[0]
	assert.Equal(t, BlockParagraph, b.Kind)

	var sawHardBreak bool
	for _, inl := range b.Inlines {
		if inl.Kind == InlineHardBreak {
			sawHardBreak = true
		}
	}
	assert.True(t, sawHardBreak, "expected an InlineHardBreak among %+v", b.Inlines)
}

// Deleting an interior range is the DeleteRange analogue of S3/S6: the
// document mutates, the version advances, and an untouched sibling's
// anchor id survives the reparse.
func TestScenario_DeleteRangePreservesNeighbourID(t *testing.T) {
	doc, err := FromBytes([]byte("- alpha\n- beta"))
	require.NoError(t, err)

	before := doc.Snapshot()
	var betaID [16]byte
	for _, b := range before.Blocks {
		if b.ContentText == "beta" {
			betaID = b.ID
		}
	}

	patch, err := doc.Apply(DeleteRange{Range: Range{Start: 0, End: 8}})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), patch.Version)
	assert.Equal(t, "- beta", doc.Text())

	after := doc.Snapshot()
	var found bool
	for _, b := range after.Blocks {
		if b.ContentText == "beta" {
			assert.Equal(t, betaID, b.ID)
			found = true
		}
	}
	assert.True(t, found, "expected a block rendering \"beta\"")
}

func TestApply_InvalidRangeRejectedWithoutVersionBump(t *testing.T) {
	doc, err := FromBytes([]byte("hello"))
	require.NoError(t, err)

	_, err = doc.Apply(DeleteRange{Range: Range{Start: 3, End: 100}})
	require.Error(t, err)
	assert.Equal(t, uint64(0), doc.Version())
	assert.Equal(t, "hello", doc.Text())
}

func TestSnapshot_ProjectionIsPure(t *testing.T) {
	doc, err := FromBytes([]byte("# T\n\n- a\n- b\n"))
	require.NoError(t, err)

	first := doc.Snapshot()
	second := doc.Snapshot()
	assert.Equal(t, first, second)
}

func TestClone_RegeneratesAnchorsIndependently(t *testing.T) {
	doc, err := FromBytes([]byte("- a\n- b"))
	require.NoError(t, err)

	clone := doc.Clone()
	_, err = doc.Apply(InsertText{At: 7, Text: "!"})
	require.NoError(t, err)

	assert.Equal(t, "- a\n- b", clone.Text())
	assert.Equal(t, "- a\n- b!", doc.Text())
}

func TestLocateInBlock_SaturatesAtZero(t *testing.T) {
	doc, err := FromBytes([]byte("## Heading\n"))
	require.NoError(t, err)

	loc, ok := doc.LocateInBlock(0)
	require.True(t, ok)
	assert.Equal(t, 0, loc.Offset)

	loc2, ok := doc.LocateInBlock(5)
	require.True(t, ok)
	assert.Equal(t, 2, loc2.Offset) // content starts at byte 3 ("Heading"), offset 5 is 2 in
	assert.Equal(t, loc.ID, loc2.ID)
}

func TestDescribePoint_LineAndColumn(t *testing.T) {
	doc, err := FromBytes([]byte("> line one\n> line two\n"))
	require.NoError(t, err)

	desc, ok := doc.DescribePoint(17) // the space before "two" on the second quoted line
	require.True(t, ok)
	assert.Equal(t, 1, desc.Line)
}
