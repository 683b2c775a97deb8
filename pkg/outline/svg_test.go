package outline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/puzzletools/puzzgen/pkg/puzzle"
)

func buildPuzzle(t *testing.T, cols, rows int, jitter float64, seed uint64) *puzzle.Puzzle {
	t.Helper()
	p, err := puzzle.NewBuilder().
		Size(300, 200).
		Pieces(cols, rows).
		VertexJitterPct(jitter).
		Seed(seed).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p
}

func TestRenderSVGStructure(t *testing.T) {
	p := buildPuzzle(t, 15, 10, puzzle.DefaultJitterPct, 42)
	svg := string(RenderSVG(p))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("missing svg root element: %.80s", svg)
	}
	if !strings.Contains(svg, `viewBox="0 0 300 200"`) {
		t.Error("viewBox should match the physical dimensions")
	}
	if !strings.Contains(svg, `width="300mm" height="200mm"`) {
		t.Error("viewport should be sized in millimeters")
	}
	if !strings.Contains(svg, `fill="none"`) || !strings.Contains(svg, `stroke="black"`) {
		t.Error("path should be stroked and unfilled")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("document should be closed")
	}

	// One move-to per edge: 15x10 pieces produce 325 edges.
	if got := strings.Count(svg, "M "); got != 325 {
		t.Errorf("move-to count = %d, want 325", got)
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	a := RenderSVG(buildPuzzle(t, 15, 10, puzzle.DefaultJitterPct, 42))
	b := RenderSVG(buildPuzzle(t, 15, 10, puzzle.DefaultJitterPct, 42))
	if !bytes.Equal(a, b) {
		t.Error("same seed and configuration should render byte-identical SVG")
	}

	c := RenderSVG(buildPuzzle(t, 15, 10, puzzle.DefaultJitterPct, 7))
	if bytes.Equal(a, c) {
		t.Error("different seeds should render different SVG")
	}
}

func TestRenderSVGSinglePiece(t *testing.T) {
	p := buildPuzzle(t, 1, 1, puzzle.DefaultJitterPct, 1)
	svg := string(RenderSVG(p))

	// A 1x1 puzzle is just the frame: four straight edges, no curves.
	if got := strings.Count(svg, "M "); got != 4 {
		t.Errorf("move-to count = %d, want 4", got)
	}
	if got := strings.Count(svg, "L "); got != 4 {
		t.Errorf("line-to count = %d, want 4", got)
	}
	if strings.Contains(svg, "C ") || strings.Contains(svg, "S ") {
		t.Error("1x1 puzzle should contain no curve commands")
	}
}

func TestRenderSVGCurveCommands(t *testing.T) {
	p := buildPuzzle(t, 3, 3, puzzle.DefaultJitterPct, 1)
	svg := string(RenderSVG(p))

	// 3x3: 24 edges, 12 with both endpoints on the boundary; the other 12
	// interlock and each opens with one C command.
	if got := strings.Count(svg, "C "); got != 12 {
		t.Errorf("cubic command count = %d, want 12", got)
	}
	// Each tab continues with two smooth segments.
	if got := strings.Count(svg, "S "); got != 24 {
		t.Errorf("smooth command count = %d, want 24", got)
	}
}

func TestRenderSVGOptions(t *testing.T) {
	p := buildPuzzle(t, 2, 2, 0, 1)
	svg := string(RenderSVG(p,
		WithStrokeWidth(0.1),
		WithStrokeColor("#ff0000"),
		WithBackground("white"),
	))

	if !strings.Contains(svg, `stroke-width="0.1"`) {
		t.Error("stroke width option not applied")
	}
	if !strings.Contains(svg, `stroke="#ff0000"`) {
		t.Error("stroke color option not applied")
	}
	if !strings.Contains(svg, `<rect width="300" height="200" fill="white"/>`) {
		t.Error("background option not applied")
	}
}

func TestFmtCoord(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{300, "300"},
		{12.5, "12.5"},
		{0.1234567, "0.123"},
		{-0.0001, "0"},
		{19.999999, "20"},
	}
	for _, tt := range tests {
		if got := fmtCoord(tt.in); got != tt.want {
			t.Errorf("fmtCoord(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
