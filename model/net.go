package model

import (
	"math"

	"github.com/outlineopt/fpcore/geom"
)

// Net connects zero or more macros (by id, resolved against a Database) and
// zero or more fixed terminals (by absolute coordinate). Order within each
// slice is insertion order from the net-input file and carries no semantic
// weight beyond that.
type Net struct {
	MacroIDs       []int
	TerminalCoords []geom.Point
}

// HPWL computes the half-perimeter wirelength of the net: the bounding-box
// perimeter (halved) over the pin set, where each macro contributes the
// center of its current bounding box (bboxByMacroID) and each terminal
// contributes its fixed coordinate.
//
// A net with at most one pin in total has zero wirelength by definition.
//
// Complexity: O(|MacroIDs| + |TerminalCoords|).
func (n Net) HPWL(bboxByMacroID map[int]geom.Rect) (float64, error) {
	total := len(n.MacroIDs) + len(n.TerminalCoords)
	if total <= 1 {
		return 0, nil
	}

	var (
		minX, minY = math.Inf(1), math.Inf(1)
		maxX, maxY = math.Inf(-1), math.Inf(-1)
	)

	consider := func(p geom.Point) {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	for _, id := range n.MacroIDs {
		box, ok := bboxByMacroID[id]
		if !ok {
			return 0, ErrMacroNotFound
		}
		consider(box.Center())
	}
	for _, t := range n.TerminalCoords {
		consider(t)
	}

	return (maxX - minX) + (maxY - minY), nil
}
