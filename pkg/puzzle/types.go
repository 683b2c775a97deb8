package puzzle

import (
	"cmp"
	"fmt"

	"github.com/puzzletools/puzzgen/pkg/geom"
)

// VertexIndex identifies a lattice position by (row, col).
// Indices are totally ordered row-major so an unordered pair of them can be
// canonicalized into a unique edge key.
type VertexIndex struct {
	Row, Col int
}

// Compare orders indices row-major: by row, then by column.
func (v VertexIndex) Compare(o VertexIndex) int {
	if c := cmp.Compare(v.Row, o.Row); c != 0 {
		return c
	}
	return cmp.Compare(v.Col, o.Col)
}

// String formats the index as "row,col" (also used as graphviz node IDs).
func (v VertexIndex) String() string {
	return fmt.Sprintf("%d,%d", v.Row, v.Col)
}

// EdgeKey is the canonical identifier of an edge: the lower vertex index
// first under row-major order. Two adjacent vertices always produce the same
// key regardless of traversal direction.
type EdgeKey struct {
	A, B VertexIndex
}

// MakeEdgeKey canonicalizes an unordered vertex pair into an EdgeKey.
func MakeEdgeKey(a, b VertexIndex) EdgeKey {
	if a.Compare(b) > 0 {
		a, b = b, a
	}
	return EdgeKey{A: a, B: b}
}

// Compare orders edge keys by their first, then second vertex.
func (k EdgeKey) Compare(o EdgeKey) int {
	if c := k.A.Compare(o.A); c != 0 {
		return c
	}
	return k.B.Compare(o.B)
}

// EdgeKind discriminates the two edge variants.
type EdgeKind int

const (
	// EdgePlain is a straight segment along the outer frame.
	EdgePlain EdgeKind = iota
	// EdgeTabbed carries an interlocking tab between two interior-adjacent
	// pieces.
	EdgeTabbed
)

// String returns the kind name for logs and debug output.
func (k EdgeKind) String() string {
	switch k {
	case EdgePlain:
		return "plain"
	case EdgeTabbed:
		return "tabbed"
	default:
		return fmt.Sprintf("EdgeKind(%d)", int(k))
	}
}

// Tab holds the control geometry of an interlocking tab in the canonical
// unit frame, where the parent segment runs from (0,0) to (1,0). The six
// control points plus the implicit segment endpoints define three cubic
// Bezier segments.
type Tab struct {
	StartControl       geom.Point
	LeftNubbinControl  geom.Point
	NubbinStart        geom.Point
	RightNubbinControl geom.Point
	NubbinEnd          geom.Point
	EndControl         geom.Point

	// Flipped records the tab's polarity: true when the template was
	// mirrored about the segment axis, i.e. the tab bulges to the right of
	// the segment direction instead of the left.
	Flipped bool
}

// Points returns the six control points in drawing order.
func (t Tab) Points() [6]geom.Point {
	return [6]geom.Point{
		t.StartControl, t.LeftNubbinControl, t.NubbinStart,
		t.RightNubbinControl, t.NubbinEnd, t.EndControl,
	}
}

// Mirror returns the tab reflected across the segment axis, with the
// polarity bit toggled. Mirroring twice restores the original tab.
func (t Tab) Mirror() Tab {
	return Tab{
		StartControl:       t.StartControl.Mirror(),
		LeftNubbinControl:  t.LeftNubbinControl.Mirror(),
		NubbinStart:        t.NubbinStart.Mirror(),
		RightNubbinControl: t.RightNubbinControl.Mirror(),
		NubbinEnd:          t.NubbinEnd.Mirror(),
		EndControl:         t.EndControl.Mirror(),
		Flipped:            !t.Flipped,
	}
}

// Edge is one boundary segment between two adjacent lattice vertices.
// Plain edges have no control geometry; tabbed edges carry their Tab in
// unit-frame coordinates until placement.
type Edge struct {
	Key  EdgeKey
	Kind EdgeKind
	Tab  *Tab // nil unless Kind == EdgeTabbed
}
