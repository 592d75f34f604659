package anneal

import (
	"errors"
	"sync"

	"github.com/outlineopt/fpcore/floorplan"
)

// RunMultiStart launches workers independent annealing runs over db, each
// with its own Floorplan and its own RNG stream derived from cfg.Seed via a
// SplitMix64 mix (see deriveRNG), and reduces to the lowest-cost feasible
// result across all workers with a single sync.WaitGroup barrier.
//
// Per spec.md §5: parallelism is at the outermost level only; each worker
// owns its full state and nothing is shared but the immutable db.
//
// If no worker ever found a feasible placement, RunMultiStart returns the
// first worker's best-effort (infeasible) Floorplan alongside
// ErrNoFeasibleSolution.
func RunMultiStart(db floorplan.Database, cfg Config, workers int) (*floorplan.Floorplan, error) {
	if workers < 1 {
		workers = 1
	}

	base := rngFromSeed(cfg.Seed)
	outlineW, outlineH := db.OutlineWidth(), db.OutlineHeight()

	type result struct {
		fp  *floorplan.Floorplan
		err error
	}
	results := make([]result, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		workerRNG := deriveRNG(base, uint64(w))
		idx := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			fp, err := run(db, cfg, workerRNG)
			results[idx] = result{fp: fp, err: err}
		}()
	}
	wg.Wait()

	var (
		best     *floorplan.Floorplan
		bestCost float64
		found    bool
	)
	for _, r := range results {
		if r.err != nil && !errors.Is(r.err, ErrNoFeasibleSolution) {
			return nil, r.err
		}
		if errors.Is(r.err, ErrNoFeasibleSolution) || r.fp == nil {
			continue
		}
		c := cost(cfg, r.fp, outlineW, outlineH)
		if !found || c < bestCost {
			best = r.fp
			bestCost = c
			found = true
		}
	}

	if !found {
		return results[0].fp, ErrNoFeasibleSolution
	}

	return best, nil
}
