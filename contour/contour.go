// Package contour implements the skyline data structure used to pack
// macros left-to-right, bottom-up: an ordered, gap-free sequence of
// horizontal segments covering [0, max_x) by their current top-of-stack
// height.
package contour

import "github.com/outlineopt/fpcore/geom"

// segment is one run of the skyline: it spans [xStart, xEnd) at height yTop.
type segment struct {
	xStart float64
	xEnd   float64
	yTop   float64
}

// Contour is the skyline built up by successive calls to Update. The zero
// value is an empty contour (max_x = max_y = 0), matching spec.md's
// "initial state" exactly.
type Contour struct {
	segments []segment
	maxX     float64
	maxY     float64
}

// New returns an empty Contour.
func New() *Contour {
	return &Contour{}
}

// MaxX returns the current rightmost extent of the skyline.
func (c *Contour) MaxX() float64 { return c.maxX }

// MaxY returns the current tallest point of the skyline.
func (c *Contour) MaxY() float64 { return c.maxY }

// Update places a macro whose left edge sits at xStart on top of the
// current contour, and returns its resulting (lowerLeft, upperRight)
// corners. width and height must be strictly positive and xStart must be
// non-negative — these are caller preconditions (programming errors), not
// runtime error conditions, so Update panics if they are violated.
//
// Complexity: O(k) where k is the total number of segments currently in the
// contour (every segment is scanned and the segment slice is rebuilt); k is
// bounded by a small multiple of the number of macros packed so far.
func (c *Contour) Update(xStart, width, height float64) (lowerLeft, upperRight geom.Point) {
	if width <= 0 || height <= 0 || xStart < 0 {
		panic("contour: Update requires positive width/height and non-negative xStart")
	}
	xEnd := xStart + width

	yBase := 0.0
	for _, s := range c.segments {
		if s.xStart < xEnd && s.xEnd > xStart {
			if s.yTop > yBase {
				yBase = s.yTop
			}
		}
	}
	yTop := yBase + height

	out := make([]segment, 0, len(c.segments)+2)
	inserted := false
	for _, s := range c.segments {
		switch {
		case s.xEnd <= xStart:
			// Entirely before the updated range: keep as-is.
			out = append(out, s)

		case s.xStart >= xEnd:
			// Entirely after the updated range: insert the new segment once,
			// immediately before the first such segment, then keep it as-is.
			if !inserted {
				out = append(out, segment{xStart: xStart, xEnd: xEnd, yTop: yTop})
				inserted = true
			}
			out = append(out, s)

		default:
			// s straddles or is contained in [xStart, xEnd): split off any
			// surviving prefix/suffix and drop the intersecting middle (it is
			// replaced by the new segment).
			if s.xStart < xStart {
				out = append(out, segment{xStart: s.xStart, xEnd: xStart, yTop: s.yTop})
			}
			if !inserted {
				out = append(out, segment{xStart: xStart, xEnd: xEnd, yTop: yTop})
				inserted = true
			}
			if s.xEnd > xEnd {
				out = append(out, segment{xStart: xEnd, xEnd: s.xEnd, yTop: s.yTop})
			}
		}
	}
	if !inserted {
		// xStart lies beyond every existing segment. Bridge the gap at
		// ground level so the contour keeps covering [0, max_x) contiguously;
		// in normal Floorplan.Pack usage this gap has zero width (xStart
		// always equals the contour's current max_x at this point).
		if xStart > c.maxX {
			out = append(out, segment{xStart: c.maxX, xEnd: xStart, yTop: 0})
		}
		out = append(out, segment{xStart: xStart, xEnd: xEnd, yTop: yTop})
	}
	c.segments = out

	if xEnd > c.maxX {
		c.maxX = xEnd
	}
	if yTop > c.maxY {
		c.maxY = yTop
	}

	return geom.Point{X: xStart, Y: yBase}, geom.Point{X: xEnd, Y: yTop}
}
