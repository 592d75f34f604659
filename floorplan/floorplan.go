// Package floorplan couples a bstree.Tree with a per-node macro assignment
// and rotation state, and owns the two operations that make it useful to
// an annealer: Perturb (a single neighborhood move) and Pack (turning the
// tree into coordinates via contour.Contour, then summing net HPWL).
//
// Floorplan state is mutated in place by Perturb and recomputed by Pack;
// cost is only valid immediately after a Pack call.
package floorplan

import (
	"github.com/outlineopt/fpcore/bstree"
	"github.com/outlineopt/fpcore/geom"
)

// Floorplan is the full mutable state of one candidate placement.
type Floorplan struct {
	tree *bstree.Tree

	// macroByNode[nodeID] = macroID; a bijection over 0..N-1, so Op1 (swap)
	// never has to touch tree links.
	macroByNode []int

	// rotated is indexed by macro id, not node id.
	rotated []bool

	// bbox is indexed by macro id; populated by Pack.
	bbox []geom.Rect

	width      float64
	height     float64
	wirelength float64

	isDrawing bool
	drawing   *Drawing
}

// New builds a Floorplan over numMacros macros: a fresh bstree.Tree
// (single-row chain), the identity node-to-macro mapping, no rotations, and
// zeroed bounding boxes. Pack must be called before Width/Height/Wirelength
// are meaningful.
func New(numMacros int, isDrawing bool) *Floorplan {
	f := &Floorplan{
		tree:        bstree.New(numMacros),
		macroByNode: make([]int, numMacros),
		rotated:     make([]bool, numMacros),
		bbox:        make([]geom.Rect, numMacros),
		isDrawing:   isDrawing,
	}
	for i := range f.macroByNode {
		f.macroByNode[i] = i
	}

	return f
}

// NumMacros returns N.
func (f *Floorplan) NumMacros() int { return len(f.macroByNode) }

// Width returns the packed outline width from the most recent Pack call.
func (f *Floorplan) Width() float64 { return f.width }

// Height returns the packed outline height from the most recent Pack call.
func (f *Floorplan) Height() float64 { return f.height }

// Area returns Width()*Height().
func (f *Floorplan) Area() float64 { return f.width * f.height }

// Wirelength returns the total HPWL over all nets from the most recent Pack call.
func (f *Floorplan) Wirelength() float64 { return f.wirelength }

// MacroBoundingBox returns the bounding box of macroID from the most recent
// Pack call.
func (f *Floorplan) MacroBoundingBox(macroID int) geom.Rect { return f.bbox[macroID] }

// IsRotated reports whether macroID is currently placed in its rotated
// orientation.
func (f *Floorplan) IsRotated(macroID int) bool { return f.rotated[macroID] }

// Drawing returns the visualization snapshot populated by the most recent
// Pack call, or nil if this Floorplan was built with isDrawing==false.
// Perturb does not touch it.
func (f *Floorplan) Drawing() *Drawing { return f.drawing }

// Clone returns a deep, independent copy — used by the annealer to capture
// a best-so-far snapshot. The drawing snapshot is shared by reference, not
// deep-copied: Pack always allocates a fresh *Drawing rather than mutating
// one in place, so an old reference held by a clone is never invalidated by
// further Pack calls on the original.
func (f *Floorplan) Clone() *Floorplan {
	clone := &Floorplan{
		tree:        f.tree.Clone(),
		macroByNode: append([]int(nil), f.macroByNode...),
		rotated:     append([]bool(nil), f.rotated...),
		bbox:        append([]geom.Rect(nil), f.bbox...),
		width:       f.width,
		height:      f.height,
		wirelength:  f.wirelength,
		isDrawing:   f.isDrawing,
		drawing:     f.drawing,
	}

	return clone
}

// CopyFrom overwrites f in place with src's state (same N). Used by the
// annealer to restore a rejected trial Floorplan without reallocating, and
// to promote an accepted trial into the best-so-far tracker.
func (f *Floorplan) CopyFrom(src *Floorplan) {
	f.tree.CopyFrom(src.tree)
	copy(f.macroByNode, src.macroByNode)
	copy(f.rotated, src.rotated)
	copy(f.bbox, src.bbox)
	f.width = src.width
	f.height = src.height
	f.wirelength = src.wirelength
	f.isDrawing = src.isDrawing
	f.drawing = src.drawing
}
