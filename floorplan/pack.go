package floorplan

import (
	"github.com/outlineopt/fpcore/bstree"
	"github.com/outlineopt/fpcore/contour"
	"github.com/outlineopt/fpcore/geom"
)

// Pack computes coordinates for every macro by a pre-order traversal of the
// B*-tree, placing each macro on a fresh contour according to B*-tree
// semantics, then sums net HPWL over db's nets using the resulting bounding
// boxes. It overwrites f.bbox, f.width, f.height, f.wirelength (and
// f.drawing, if this Floorplan was built with isDrawing==true) in place.
//
// Complexity: O(N) tree traversal steps, each doing an O(k) contour update
// (k bounded by the number of macros packed so far), plus O(sum of net
// degrees) for the wirelength pass.
func (f *Floorplan) Pack(db Database) error {
	f.tree.UnvisitAll()
	ctr := contour.New()

	dims := func(nodeID int) (width, height float64) {
		macroID := f.macroByNode[nodeID]
		m := db.Macro(macroID)

		return m.Dimensions(f.rotated[macroID])
	}
	place := func(nodeID int, xStart float64) geom.Rect {
		w, h := dims(nodeID)
		ll, ur := ctr.Update(xStart, w, h)
		r := geom.Rect{LowerLeft: ll, UpperRight: ur}
		f.bbox[f.macroByNode[nodeID]] = r

		return r
	}

	root := f.tree.RootID()
	place(root, 0)

	stack := []int{root}
	boxOf := func(nodeID int) geom.Rect { return f.bbox[f.macroByNode[nodeID]] }

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		cBox := boxOf(c)

		if left := f.tree.LeftChild(c); left != bstree.None && !f.tree.IsVisited(left) {
			place(left, cBox.UpperRight.X)
			stack = append(stack, left)

			continue
		}
		if right := f.tree.RightChild(c); right != bstree.None && !f.tree.IsVisited(right) {
			place(right, cBox.LowerLeft.X)
			stack = append(stack, right)

			continue
		}

		f.tree.Visit(c)
		stack = stack[:len(stack)-1]
	}

	f.width = ctr.MaxX()
	f.height = ctr.MaxY()

	bboxByMacroID := make(map[int]geom.Rect, len(f.bbox))
	for id, r := range f.bbox {
		bboxByMacroID[id] = r
	}

	var total float64
	for i := 0; i < db.NumNets(); i++ {
		w, err := db.Net(i).HPWL(bboxByMacroID)
		if err != nil {
			return err
		}
		total += w
	}
	f.wirelength = total

	if f.isDrawing {
		macros := make([]MacroDraw, len(f.bbox))
		for macroID, r := range f.bbox {
			macros[macroID] = MacroDraw{
				MacroID: macroID,
				Rect:    r,
				Rotated: f.rotated[macroID],
			}
		}
		f.drawing = &Drawing{Macros: macros, Width: f.width, Height: f.height}
	}

	return nil
}
