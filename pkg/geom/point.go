// Package geom provides the 2D point arithmetic used by the puzzle
// generator. Points are immutable value types: every operation returns a
// new Point, so intermediate transforms can be chained without aliasing.
package geom

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Point is an immutable 2D coordinate.
type Point struct {
	X, Y float64
}

// Pt is a shorthand constructor.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Scale returns the point scaled by the given factors about the origin.
func (p Point) Scale(sx, sy float64) Point {
	return Point{X: p.X * sx, Y: p.Y * sy}
}

// Translate returns the point offset by q's coordinates.
func (p Point) Translate(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rotate returns the point rotated by radians about the origin.
func (p Point) Rotate(radians float64) Point {
	sin, cos := math.Sincos(radians)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Mirror returns the point reflected across the x-axis.
func (p Point) Mirror() Point {
	return Point{X: p.X, Y: -p.Y}
}

// Jitter returns the point perturbed by an independent uniform offset in
// [-dx, dx] and [-dy, dy]. The zero magnitudes leave the point unchanged,
// so callers can pass a configured jitter of 0 without special-casing.
func (p Point) Jitter(rng *rand.Rand, dx, dy float64) Point {
	return Point{
		X: p.X + (rng.Float64()*2-1)*dx,
		Y: p.Y + (rng.Float64()*2-1)*dy,
	}
}

// Dist returns the Euclidean distance to q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// String formats the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
