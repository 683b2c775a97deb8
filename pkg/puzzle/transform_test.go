package puzzle

import (
	"testing"

	"github.com/puzzletools/puzzgen/pkg/geom"
)

func TestMapToSegmentEndpoints(t *testing.T) {
	// The unit endpoints are fixed points of the transform: (0,0) lands on
	// start and (1,0) on end, for any segment orientation.
	tests := []struct {
		name       string
		start, end geom.Point
	}{
		{"horizontal", geom.Pt(0, 0), geom.Pt(20, 0)},
		{"vertical", geom.Pt(100, 50), geom.Pt(100, 70)},
		{"reversed horizontal", geom.Pt(20, 0), geom.Pt(0, 0)},
		{"diagonal", geom.Pt(-3, 4), geom.Pt(5, -7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapToSegment(geom.Pt(0, 0), tt.start, tt.end); !pointsClose(got, tt.start) {
				t.Errorf("origin mapped to %v, want %v", got, tt.start)
			}
			if got := MapToSegment(geom.Pt(1, 0), tt.start, tt.end); !pointsClose(got, tt.end) {
				t.Errorf("unit x mapped to %v, want %v", got, tt.end)
			}
		})
	}
}

func TestMapToSegmentScalesWithLength(t *testing.T) {
	// A point above the segment midline stays proportionally placed: on a
	// length-10 horizontal segment the template midpoint (0.5, -0.1) lands
	// 1 unit below the axis (SVG y grows downward).
	got := MapToSegment(geom.Pt(0.5, -0.1), geom.Pt(0, 0), geom.Pt(10, 0))
	if !pointsClose(got, geom.Pt(5, -1)) {
		t.Errorf("midpoint mapped to %v, want (5, -1)", got)
	}
}

func TestMapToSegmentVertical(t *testing.T) {
	// On a downward vertical segment the unit frame rotates 90°, so unit-y
	// offsets become world-x offsets.
	got := MapToSegment(geom.Pt(0.5, 0.1), geom.Pt(0, 0), geom.Pt(0, 10))
	if !pointsClose(got, geom.Pt(-1, 5)) {
		t.Errorf("mapped to %v, want (-1, 5)", got)
	}
}

func TestPlacedJoinsSegment(t *testing.T) {
	p := mustBuild(t, 3, 3, 0, 1)
	for _, e := range p.Edges() {
		if e.Kind != EdgeTabbed {
			continue
		}
		start, end := p.Vertex(e.Key.A), p.Vertex(e.Key.B)
		placed := e.Tab.Placed(start, end)

		// With zero jitter the neck points sit at 0.4/0.6 along the segment,
		// offset 0.1 of its length to one side.
		dist := start.Dist(end)
		for _, pt := range placed {
			if start.Dist(pt) > 2*dist {
				t.Fatalf("placed control %v implausibly far from segment %v-%v", pt, start, end)
			}
		}
	}
}
