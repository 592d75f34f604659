// Package anneal drives simulated annealing over a floorplan.Floorplan:
// a Metropolis-criterion search with a geometric cooling schedule, steering
// toward low cost (area + wirelength + infeasibility penalty) while keeping
// track of the best feasible placement seen.
//
// What & Why: fixed-outline floorplanning is a combinatorial search over
// B*-tree edits; annealing explores that space by accepting some
// cost-increasing moves (governed by temperature) to escape local optima,
// while a separate best-feasible tracker ensures a regression in the
// working state never loses a good result already found.
//
// Determinism & Stability: a run with the same Config.Seed and the same
// Database always produces the same sequence of Perturb/Pack trials and
// the same returned Floorplan, because Perturb's RNG draw order is fixed
// (see floorplan.Perturb) and this package never seeds from a time-based
// source. This holds when Config.TimeLimit is zero; a wall-clock limit can
// end the schedule after a different number of temperature steps.
package anneal

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/outlineopt/fpcore/floorplan"
)

// Run executes one annealing schedule over db per cfg and returns the best
// feasible Floorplan found. If no feasible placement was ever produced, it
// returns the final (infeasible) working Floorplan alongside
// ErrNoFeasibleSolution.
func Run(db floorplan.Database, cfg Config) (*floorplan.Floorplan, error) {
	return run(db, cfg, rngFromSeed(cfg.Seed))
}

// run is Run's core, parameterized on the RNG stream so RunMultiStart can
// supply independent per-worker streams without duplicating the schedule.
func run(db floorplan.Database, cfg Config, rng *rand.Rand) (*floorplan.Floorplan, error) {
	n := db.NumMacros()
	outlineW, outlineH := db.OutlineWidth(), db.OutlineHeight()

	cur := floorplan.New(n, cfg.Drawing)
	if err := cur.Pack(db); err != nil {
		return nil, err
	}
	curCost := cost(cfg, cur, outlineW, outlineH)

	var (
		best         *floorplan.Floorplan
		bestCost     float64
		bestFeasible bool
	)
	if feasible(cur, outlineW, outlineH) {
		best = cur.Clone()
		bestCost = curCost
		bestFeasible = true
	}

	var deadline time.Time
	useDeadline := cfg.TimeLimit > 0
	if useDeadline {
		deadline = time.Now().Add(cfg.TimeLimit)
	}

	trial := floorplan.New(n, false)
	T := cfg.T0
	totalIters := 0
	noImprove := 0

	for T > cfg.MinTemperature && totalIters < cfg.MaxIterations {
		improvedThisTemp := false

		for i := 0; i < cfg.IterationsPerTemp && totalIters < cfg.MaxIterations; i++ {
			totalIters++

			trial.CopyFrom(cur)
			if _, err := trial.Perturb(db, rng); err != nil {
				if errors.Is(err, floorplan.ErrNoRotatableMacro) {
					// Structural no-op: the drawn operator had nothing to
					// act on. Skip this trial rather than failing the run.
					continue
				}

				return nil, err
			}
			if err := trial.Pack(db); err != nil {
				return nil, err
			}

			trialCost := cost(cfg, trial, outlineW, outlineH)
			delta := trialCost - curCost
			accept := delta <= 0 || rng.Float64() < math.Exp(-delta/T)
			if !accept {
				continue
			}

			cur.CopyFrom(trial)
			curCost = trialCost

			if feasible(trial, outlineW, outlineH) && (!bestFeasible || trialCost < bestCost) {
				if best == nil {
					best = trial.Clone()
				} else {
					best.CopyFrom(trial)
				}
				bestCost = trialCost
				bestFeasible = true
				improvedThisTemp = true
			}
		}

		if improvedThisTemp {
			noImprove = 0
		} else {
			noImprove++
		}
		if cfg.NoImprovementLimit > 0 && noImprove >= cfg.NoImprovementLimit {
			break
		}
		if useDeadline && time.Now().After(deadline) {
			break
		}

		T *= cfg.CoolingRate
	}

	if !bestFeasible {
		return cur.Clone(), ErrNoFeasibleSolution
	}

	return best, nil
}
