package puzzle

import "testing"

func TestEdgeCompleteness(t *testing.T) {
	// Every adjacent lattice pair must appear exactly once; map keying
	// already rules out duplicates, so presence is sufficient.
	p := mustBuild(t, 5, 4, DefaultJitterPct, 3)

	count := 0
	for row := 0; row <= 4; row++ {
		for col := 0; col <= 5; col++ {
			v := VertexIndex{Row: row, Col: col}
			for _, n := range []VertexIndex{
				{Row: row, Col: col + 1},
				{Row: row + 1, Col: col},
			} {
				if !p.inBounds(n) {
					continue
				}
				count++
				if _, ok := p.Edge(MakeEdgeKey(v, n)); !ok {
					t.Errorf("missing edge %v-%v", v, n)
				}
			}
		}
	}
	if count != p.EdgeCount() {
		t.Errorf("enumerated %d adjacent pairs, edge table has %d", count, p.EdgeCount())
	}
}

func TestEdgeClassification(t *testing.T) {
	p := mustBuild(t, 5, 4, DefaultJitterPct, 3)

	for _, e := range p.Edges() {
		border := p.onBoundary(e.Key.A) && p.onBoundary(e.Key.B)
		switch {
		case border && e.Kind != EdgePlain:
			t.Errorf("border edge %v-%v classified %s", e.Key.A, e.Key.B, e.Kind)
		case !border && e.Kind != EdgeTabbed:
			t.Errorf("interior edge %v-%v classified %s", e.Key.A, e.Key.B, e.Kind)
		case e.Kind == EdgeTabbed && e.Tab == nil:
			t.Errorf("tabbed edge %v-%v has no tab geometry", e.Key.A, e.Key.B)
		case e.Kind == EdgePlain && e.Tab != nil:
			t.Errorf("plain edge %v-%v carries tab geometry", e.Key.A, e.Key.B)
		}
	}
}

func TestSinglePieceAllPlain(t *testing.T) {
	p := mustBuild(t, 1, 1, DefaultJitterPct, 3)
	if p.VertexCount() != 4 || p.EdgeCount() != 4 {
		t.Fatalf("1x1 puzzle: %d vertices, %d edges; want 4, 4", p.VertexCount(), p.EdgeCount())
	}
	for _, e := range p.Edges() {
		if e.Kind != EdgePlain {
			t.Errorf("1x1 edge %v-%v is %s, every vertex is on the boundary", e.Key.A, e.Key.B, e.Kind)
		}
	}
}

func TestExpectedEdgeCount(t *testing.T) {
	tests := []struct {
		cols, rows, want int
	}{
		{1, 1, 4},
		{15, 10, 325},
		{2, 3, 17},
	}
	for _, tt := range tests {
		if got := expectedEdgeCount(tt.cols, tt.rows); got != tt.want {
			t.Errorf("expectedEdgeCount(%d, %d) = %d, want %d", tt.cols, tt.rows, got, tt.want)
		}
	}
}
