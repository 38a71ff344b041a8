// Package geom provides the 2D primitives used by the light cycle simulation:
// points, line segments and the segment intersection predicate.
// Like core, it has no external dependencies.
package geom

import "math"

// Epsilon is the absolute tolerance used by NearZero.
// Trail coordinates stay within a few hundred units, so an absolute bound
// is tight enough to catch exact degeneracies lost to rounding.
const Epsilon = 1e-9

// Point is a position in arena-local space, origin at the arena centre.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// LenSq returns the squared distance of p from the origin.
func (p Point) LenSq() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Segment is an ordered pair of points.
// Segments compare structurally with ==.
type Segment struct {
	Start, End Point
}

// Seg is shorthand for building a segment from raw coordinates.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{Start: Point{X: x1, Y: y1}, End: Point{X: x2, Y: y2}}
}

// Degenerate reports whether the segment has zero length.
func (s Segment) Degenerate() bool {
	return s.Start == s.End
}

// NearZero reports whether v is within Epsilon of zero.
func NearZero(v float64) bool {
	return math.Abs(v) <= Epsilon
}

// Intersects reports whether segments a and b cross.
//
// Both segments are treated as open intervals: touching at an endpoint is not
// an intersection, so consecutive trail segments sharing a waypoint never
// collide. Segments on the same line always count as intersecting, even
// when they do not overlap.
func Intersects(a, b Segment) bool {
	p1, p2 := a.Start, a.End
	p3, p4 := b.Start, b.End

	denominatorA := (p4.X-p3.X)*(p1.Y-p3.Y) - (p4.Y-p3.Y)*(p1.X-p3.X)
	denominatorB := (p2.X-p1.X)*(p1.Y-p3.Y) - (p2.Y-p1.Y)*(p1.X-p3.X)
	numerator := (p4.Y-p3.Y)*(p2.X-p1.X) - (p4.X-p3.X)*(p2.Y-p1.Y)

	if NearZero(numerator) {
		// Coincident lines collide, merely parallel ones don't
		return NearZero(denominatorA)
	}

	ua := denominatorA / numerator
	ub := denominatorB / numerator
	return ua > 0 && ua < 1 && ub > 0 && ub < 1
}
