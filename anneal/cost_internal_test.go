package anneal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outlineopt/fpcore/floorplan"
	"github.com/outlineopt/fpcore/model"
)

type fakeDB struct {
	macros []model.Macro
}

func (d fakeDB) NumMacros() int           { return len(d.macros) }
func (d fakeDB) Macro(id int) model.Macro { return d.macros[id] }
func (d fakeDB) NumNets() int             { return 0 }
func (d fakeDB) Net(id int) model.Net     { return model.Net{} }
func (d fakeDB) OutlineWidth() float64    { return 10 }
func (d fakeDB) OutlineHeight() float64   { return 10 }

func TestPenalty_ZeroWhenFeasible(t *testing.T) {
	db := fakeDB{macros: []model.Macro{{Name: "A", Width: 5, Height: 3, Rotatable: true}}}
	f := floorplan.New(1, false)
	require.NoError(t, f.Pack(db))

	require.Equal(t, 0.0, penalty(f, 10, 10))
	require.True(t, feasible(f, 10, 10))
}

func TestPenalty_QuadraticWhenOverflowing(t *testing.T) {
	db := fakeDB{macros: []model.Macro{{Name: "A", Width: 12, Height: 15, Rotatable: true}}}
	f := floorplan.New(1, false)
	require.NoError(t, f.Pack(db))

	require.False(t, feasible(f, 10, 10))
	require.Equal(t, 2.0*2.0+5.0*5.0, penalty(f, 10, 10))
}

func TestCost_CombinesWeightedTerms(t *testing.T) {
	db := fakeDB{macros: []model.Macro{{Name: "A", Width: 5, Height: 3, Rotatable: true}}}
	f := floorplan.New(1, false)
	require.NoError(t, f.Pack(db))

	cfg := Config{Alpha: 2, Beta: 3, Gamma: 5}
	got := cost(cfg, f, 10, 10)
	require.Equal(t, 2*f.Area()+3*f.Wirelength()+5*0.0, got)
}
