package outline

import (
	"strconv"
	"strings"

	"github.com/puzzletools/puzzgen/pkg/geom"
	"github.com/puzzletools/puzzgen/pkg/puzzle"
)

// pathBuilder accumulates SVG path commands. Coordinates are written with a
// fixed precision and trailing zeros trimmed, so output is deterministic
// and diff-friendly.
type pathBuilder struct {
	sb strings.Builder
}

// coordPrecision is the number of decimal places kept in path coordinates.
// A thousandth of a millimeter is well below any cutter's tolerance.
const coordPrecision = 3

func fmtCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', coordPrecision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func (b *pathBuilder) cmd(op string, pts ...geom.Point) {
	if b.sb.Len() > 0 {
		b.sb.WriteByte(' ')
	}
	b.sb.WriteString(op)
	for _, p := range pts {
		b.sb.WriteByte(' ')
		b.sb.WriteString(fmtCoord(p.X))
		b.sb.WriteByte(' ')
		b.sb.WriteString(fmtCoord(p.Y))
	}
}

// moveTo starts a new subpath at p.
func (b *pathBuilder) moveTo(p geom.Point) { b.cmd("M", p) }

// lineTo draws a straight segment to p.
func (b *pathBuilder) lineTo(p geom.Point) { b.cmd("L", p) }

// curveTo draws a cubic Bezier through two control points to end.
func (b *pathBuilder) curveTo(c1, c2, end geom.Point) { b.cmd("C", c1, c2, end) }

// smoothTo draws a smooth cubic continuation: the first control point is
// the reflection of the previous curve's, only the second and the endpoint
// are explicit.
func (b *pathBuilder) smoothTo(c2, end geom.Point) { b.cmd("S", c2, end) }

func (b *pathBuilder) String() string { return b.sb.String() }

// edgePath appends one edge's path commands: a move to the edge's start
// vertex, then either a straight line (plain) or the tab's three cubic
// segments (tabbed) to the end vertex.
func edgePath(b *pathBuilder, p *puzzle.Puzzle, e puzzle.Edge) {
	start := p.Vertex(e.Key.A)
	end := p.Vertex(e.Key.B)

	b.moveTo(start)
	if e.Kind == puzzle.EdgePlain {
		b.lineTo(end)
		return
	}

	pts := e.Tab.Placed(start, end)
	startControl, leftNubbinControl, nubbinStart := pts[0], pts[1], pts[2]
	rightNubbinControl, nubbinEnd, endControl := pts[3], pts[4], pts[5]

	b.curveTo(startControl, leftNubbinControl, nubbinStart)
	b.smoothTo(rightNubbinControl, nubbinEnd)
	b.smoothTo(endControl, end)
}
