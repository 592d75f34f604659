// Package geom defines the plain coordinate value type shared by every
// other package in this module: macros, terminals, contour segments, and
// packed bounding boxes all speak in terms of geom.Point.
//
// Points are immutable by convention — every operation here returns a new
// value rather than mutating a receiver.
package geom

// Point is an immutable (x, y) coordinate.
type Point struct {
	X float64
	Y float64
}

// Add returns the componentwise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference p − q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned bounding box given by its lower-left and
// upper-right corners.
type Rect struct {
	LowerLeft  Point
	UpperRight Point
}

// Center returns the midpoint of the box — the pin location a net sees
// when it connects to a macro.
func (r Rect) Center() Point {
	return Point{
		X: (r.LowerLeft.X + r.UpperRight.X) / 2,
		Y: (r.LowerLeft.Y + r.UpperRight.Y) / 2,
	}
}

// Width returns the box's horizontal extent.
func (r Rect) Width() float64 { return r.UpperRight.X - r.LowerLeft.X }

// Height returns the box's vertical extent.
func (r Rect) Height() float64 { return r.UpperRight.Y - r.LowerLeft.Y }

// Overlaps reports whether r and o share any positive area.
func (r Rect) Overlaps(o Rect) bool {
	if r.UpperRight.X <= o.LowerLeft.X || o.UpperRight.X <= r.LowerLeft.X {
		return false
	}
	if r.UpperRight.Y <= o.LowerLeft.Y || o.UpperRight.Y <= r.LowerLeft.Y {
		return false
	}

	return true
}
