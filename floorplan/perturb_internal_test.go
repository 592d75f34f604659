package floorplan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outlineopt/fpcore/geom"
	"github.com/outlineopt/fpcore/model"
)

type swapFakeDB struct {
	macros []model.Macro
}

func (d swapFakeDB) NumMacros() int           { return len(d.macros) }
func (d swapFakeDB) Macro(id int) model.Macro { return d.macros[id] }
func (d swapFakeDB) NumNets() int             { return 0 }
func (d swapFakeDB) Net(id int) model.Net     { return model.Net{} }
func (d swapFakeDB) OutlineWidth() float64    { return 50 }
func (d swapFakeDB) OutlineHeight() float64   { return 50 }

// TestSwapNodes_IsItsOwnInverse exercises spec scenario 5 directly at the
// node-assignment level, bypassing Perturb's random operator/operand
// selection: swap(i,j) then swap(j,i) must restore every bbox.
func TestSwapNodes_IsItsOwnInverse(t *testing.T) {
	db := swapFakeDB{macros: []model.Macro{
		{Name: "A", Width: 4, Height: 2, Rotatable: true},
		{Name: "B", Width: 3, Height: 3, Rotatable: true},
		{Name: "C", Width: 2, Height: 5, Rotatable: true},
	}}
	f := New(3, false)
	require.NoError(t, f.Pack(db))
	before := []geom.Rect{f.MacroBoundingBox(0), f.MacroBoundingBox(1), f.MacroBoundingBox(2)}

	f.swapNodes(0, 1)
	f.swapNodes(1, 0)

	require.NoError(t, f.Pack(db))
	after := []geom.Rect{f.MacroBoundingBox(0), f.MacroBoundingBox(1), f.MacroBoundingBox(2)}

	require.Equal(t, before, after)
}
