package floorplan

import "github.com/outlineopt/fpcore/geom"

// MacroDraw is one macro's placement as it should appear in a visualization:
// its final bounding box and whether it was packed in its rotated
// orientation.
type MacroDraw struct {
	MacroID int
	Rect    geom.Rect
	Rotated bool
}

// Drawing is the full visualization payload for one Pack call, populated
// only when the owning Floorplan was built with isDrawing==true.
type Drawing struct {
	Macros []MacroDraw
	Width  float64
	Height float64
}
