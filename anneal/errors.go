package anneal

import "errors"

// ErrNoFeasibleSolution indicates the schedule completed without ever
// producing a Floorplan that fit inside the outline. The best-effort
// (infeasible) Floorplan is still returned alongside this error so callers
// can inspect how close the search got.
var ErrNoFeasibleSolution = errors.New("anneal: no feasible solution found")
