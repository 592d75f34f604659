package anneal

import "github.com/outlineopt/fpcore/floorplan"

// cost computes c(F) = alpha*area(F) + beta*wirelength(F) + gamma*penalty(F)
// for a just-packed Floorplan. penalty is zero when f fits inside
// (outlineW, outlineH) and otherwise grows quadratically with the overflow
// on each axis independently, so the search is steered back toward
// feasibility without ever rejecting an infeasible intermediate state.
func cost(cfg Config, f *floorplan.Floorplan, outlineW, outlineH float64) float64 {
	return cfg.Alpha*f.Area() + cfg.Beta*f.Wirelength() + cfg.Gamma*penalty(f, outlineW, outlineH)
}

func penalty(f *floorplan.Floorplan, outlineW, outlineH float64) float64 {
	var p float64
	if overW := f.Width() - outlineW; overW > 0 {
		p += overW * overW
	}
	if overH := f.Height() - outlineH; overH > 0 {
		p += overH * overH
	}

	return p
}

// feasible reports whether f fits inside (outlineW, outlineH).
func feasible(f *floorplan.Floorplan, outlineW, outlineH float64) bool {
	return f.Width() <= outlineW && f.Height() <= outlineH
}
