package puzzle

import (
	"math"

	"github.com/puzzletools/puzzgen/pkg/geom"
)

// MapToSegment transforms a unit-frame point onto the real segment from
// start to end: scale uniformly by the segment length, rotate by its
// orientation, translate so the unit origin lands on start. The unit points
// (0,0) and (1,0) map onto start and end, so tab geometry always joins the
// segment endpoints exactly.
//
// The scale is uniform in both axes. Because piece width and piece height
// may differ, tabs on horizontal and vertical edges come out visually
// different sizes unless the pieces are square. That asymmetry is part of
// the output format; do not normalize it here.
func MapToSegment(p geom.Point, start, end geom.Point) geom.Point {
	theta := math.Atan2(end.Y-start.Y, end.X-start.X)
	dist := start.Dist(end)
	return p.Scale(dist, dist).Rotate(theta).Translate(start)
}

// Placed returns the tab's control points mapped onto the segment between
// start and end, in drawing order.
func (t Tab) Placed(start, end geom.Point) [6]geom.Point {
	pts := t.Points()
	var out [6]geom.Point
	for i, p := range pts {
		out[i] = MapToSegment(p, start, end)
	}
	return out
}
