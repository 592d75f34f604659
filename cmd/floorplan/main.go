// Command floorplan parses a block-input and net-input file pair, runs
// simulated annealing over the resulting instance, and writes the packed
// result as the visualization JSON described by the external-interface
// contract.
//
// Exit codes: 0 on a feasible placement; non-zero on a parse error or when
// annealing terminates without ever finding one.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/outlineopt/fpcore/anneal"
	"github.com/outlineopt/fpcore/floorplan"
	"github.com/outlineopt/fpcore/model"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("floorplan", flag.ContinueOnError)

	blocksPath := fs.String("blocks", "", "path to the block-input file (required)")
	netsPath := fs.String("nets", "", "path to the net-input file (required)")
	outPath := fs.String("out", "", "path to write the output JSON (default: stdout)")

	t0 := fs.Float64("t0", anneal.DefaultT0, "starting temperature")
	cooling := fs.Float64("cooling", anneal.DefaultCoolingRate, "geometric cooling rate (0,1)")
	itersPerTemp := fs.Int("iters-per-temp", anneal.DefaultIterationsPerTemp, "trials attempted at each temperature")
	minTemp := fs.Float64("min-temp", anneal.DefaultMinTemperature, "temperature at which the schedule stops")
	noImproveLimit := fs.Int("no-improve-limit", anneal.DefaultNoImprovementLimit, "consecutive no-improvement temperature steps before stopping (0 disables)")
	maxIters := fs.Int("max-iters", anneal.DefaultMaxIterations, "hard cap on total trials")

	alpha := fs.Float64("alpha", anneal.DefaultAlpha, "area weight in the cost function")
	beta := fs.Float64("beta", anneal.DefaultBeta, "wirelength weight in the cost function")
	gamma := fs.Float64("gamma", anneal.DefaultGamma, "infeasibility penalty weight in the cost function")

	seed := fs.Int64("seed", 0, "RNG seed (0 selects a fixed default seed)")
	draw := fs.Bool("draw", false, "populate the visualization drawing log on the result")
	workers := fs.Int("workers", 1, "number of independent annealing workers (multi-start)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *blocksPath == "" || *netsPath == "" {
		fmt.Fprintln(os.Stderr, "floorplan: -blocks and -nets are required")

		return 2
	}

	blocksFile, err := os.Open(*blocksPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "floorplan:", err)

		return 1
	}
	defer blocksFile.Close()

	netsFile, err := os.Open(*netsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "floorplan:", err)

		return 1
	}
	defer netsFile.Close()

	db, err := model.ParseDatabase(blocksFile, netsFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "floorplan: parse error:", err)

		return 1
	}

	cfg := anneal.DefaultConfig()
	cfg.T0 = *t0
	cfg.CoolingRate = *cooling
	cfg.IterationsPerTemp = *itersPerTemp
	cfg.MinTemperature = *minTemp
	cfg.NoImprovementLimit = *noImproveLimit
	cfg.MaxIterations = *maxIters
	cfg.Alpha = *alpha
	cfg.Beta = *beta
	cfg.Gamma = *gamma
	cfg.Seed = *seed
	cfg.Drawing = *draw

	var result *floorplan.Floorplan
	if *workers > 1 {
		result, err = anneal.RunMultiStart(db, cfg, *workers)
	} else {
		result, err = anneal.Run(db, cfg)
	}

	noFeasible := errors.Is(err, anneal.ErrNoFeasibleSolution)
	if err != nil && !noFeasible {
		fmt.Fprintln(os.Stderr, "floorplan: annealing error:", err)

		return 1
	}
	if noFeasible {
		fmt.Fprintln(os.Stderr, "floorplan: no feasible placement found; reporting best effort")
	}

	out := os.Stdout
	if *outPath != "" {
		f, ferr := os.Create(*outPath)
		if ferr != nil {
			fmt.Fprintln(os.Stderr, "floorplan:", ferr)

			return 1
		}
		defer f.Close()
		out = f
	}

	if werr := writeResult(out, db, result); werr != nil {
		fmt.Fprintln(os.Stderr, "floorplan:", werr)

		return 1
	}

	if noFeasible {
		return 1
	}

	return 0
}

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type macroJSON struct {
	Name       string    `json:"name"`
	LowerLeft  pointJSON `json:"lowerLeft"`
	UpperRight pointJSON `json:"upperRight"`
}

type resultJSON struct {
	Macros     []macroJSON `json:"macros"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Area       float64     `json:"area"`
	Wirelength float64     `json:"wirelength"`
}

func writeResult(w *os.File, db *model.Database, result *floorplan.Floorplan) error {
	payload := resultJSON{
		Macros:     make([]macroJSON, db.NumMacros()),
		Width:      result.Width(),
		Height:     result.Height(),
		Area:       result.Area(),
		Wirelength: result.Wirelength(),
	}
	for id := 0; id < db.NumMacros(); id++ {
		box := result.MacroBoundingBox(id)
		payload.Macros[id] = macroJSON{
			Name:       db.Macro(id).Name,
			LowerLeft:  pointJSON{X: box.LowerLeft.X, Y: box.LowerLeft.Y},
			UpperRight: pointJSON{X: box.UpperRight.X, Y: box.UpperRight.Y},
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(payload)
}
