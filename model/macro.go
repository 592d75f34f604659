package model

// Macro is a rectangular hard block of fixed dimensions, possibly rotatable
// by 90 degrees. Width and Height are the as-loaded (unrotated) dimensions;
// callers that need the rotated footprint call Dimensions(true).
//
// Rotatable is derived at load time (see ParseBlocks): false if the macro
// overflows the outline in both orientations (a degenerate, infeasible case
// kept only for uniform handling upstream) or fits in only one orientation;
// true if it fits in both.
type Macro struct {
	Name      string
	Width     float64
	Height    float64
	Rotatable bool
}

// Dimensions returns (width, height) for the given orientation. rotated==true
// swaps width and height.
func (m Macro) Dimensions(rotated bool) (width, height float64) {
	if rotated {
		return m.Height, m.Width
	}

	return m.Width, m.Height
}

// Area returns width*height, invariant under rotation.
func (m Macro) Area() float64 {
	return m.Width * m.Height
}
