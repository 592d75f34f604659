package floorplan

import (
	"math/rand"

	"github.com/outlineopt/fpcore/bstree"
)

// OpKind identifies which of the three neighborhood operators a Perturbation
// applied.
type OpKind int

const (
	// OpRotate flips one macro's rotation flag.
	OpRotate OpKind = iota
	// OpSwap exchanges the macro assignment of two nodes; tree structure is
	// unchanged.
	OpSwap
	// OpDeleteInsert removes one node from the tree and reinserts it
	// adjacent to another.
	OpDeleteInsert
)

// Perturbation records which operator Perturb applied and to which
// macros/nodes, for callers that log or visualize search trajectories.
type Perturbation struct {
	Op    OpKind
	NodeA int
	NodeB int
}

// Perturb applies exactly one of three neighborhood operators, chosen
// uniformly at random, mutating f in place. Pack must be called again
// before f's width/height/wirelength are valid.
//
// RNG draw order (fixed so that a given rng stream always reproduces the
// same sequence of edits):
//  1. Operator choice: rng.Intn(3). With a single macro, Op 1 and Op 2 have
//     no second distinct node to act on, so the draw is forced to Op 0
//     without consuming it.
//  2. Op 0 (rotate): rng.Intn(N) repeatedly (rejection sampling) until a
//     rotatable macro is drawn. If no macro in the instance is rotatable,
//     Perturb returns ErrNoRotatableMacro without consuming any further
//     draws beyond the one that established this.
//  3. Op 1 (swap): rng.Intn(N) for the first node, then rng.Intn(N)
//     repeatedly for the second until it differs from the first.
//  4. Op 2 (delete-and-insert): rng.Intn(N) for A, then rng.Intn(N)
//     repeatedly for B until distinct from A; then rng.Int63() seeds the
//     deletion rotate-down coin; then rng.Intn(4) supplies the insert
//     position bits.
func (f *Floorplan) Perturb(db Database, rng *rand.Rand) (Perturbation, error) {
	n := f.NumMacros()
	if n < 2 {
		return f.perturbRotate(db, rng, n)
	}

	switch rng.Intn(3) {
	case 0:
		return f.perturbRotate(db, rng, n)
	case 1:
		return f.perturbSwap(rng, n)
	default:
		return f.perturbDeleteInsert(rng, n)
	}
}

func (f *Floorplan) perturbRotate(db Database, rng *rand.Rand, n int) (Perturbation, error) {
	anyRotatable := false
	for macroID := 0; macroID < n; macroID++ {
		if db.Macro(macroID).Rotatable {
			anyRotatable = true

			break
		}
	}
	if !anyRotatable {
		return Perturbation{}, ErrNoRotatableMacro
	}

	macroID := rng.Intn(n)
	for !db.Macro(macroID).Rotatable {
		macroID = rng.Intn(n)
	}
	f.rotated[macroID] = !f.rotated[macroID]

	return Perturbation{Op: OpRotate, NodeA: macroID}, nil
}

func (f *Floorplan) perturbSwap(rng *rand.Rand, n int) (Perturbation, error) {
	a := rng.Intn(n)
	b := rng.Intn(n)
	for b == a {
		b = rng.Intn(n)
	}
	f.swapNodes(a, b)

	return Perturbation{Op: OpSwap, NodeA: a, NodeB: b}, nil
}

// swapNodes exchanges the macro assignment of nodes a and b. Its own inverse:
// swapNodes(a, b) followed by swapNodes(b, a) is a no-op.
func (f *Floorplan) swapNodes(a, b int) {
	f.macroByNode[a], f.macroByNode[b] = f.macroByNode[b], f.macroByNode[a]
}

func (f *Floorplan) perturbDeleteInsert(rng *rand.Rand, n int) (Perturbation, error) {
	a := rng.Intn(n)
	b := rng.Intn(n)
	for b == a {
		b = rng.Intn(n)
	}

	coin := bstree.NewBitCoin(uint64(rng.Int63()))
	position := uint64(rng.Intn(4))
	if err := f.tree.DeleteAndInsert(a, b, coin, position); err != nil {
		return Perturbation{}, err
	}

	return Perturbation{Op: OpDeleteInsert, NodeA: a, NodeB: b}, nil
}
