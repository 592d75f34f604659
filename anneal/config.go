package anneal

import "time"

// Default knobs, mirrored on the teacher's solver default constants.
const (
	// DefaultAlpha weights packed area in the cost function.
	DefaultAlpha = 1.0

	// DefaultBeta weights total wirelength in the cost function.
	DefaultBeta = 1.0

	// DefaultGamma weights the outline-overflow penalty in the cost function.
	// It is an order of magnitude above Alpha/Beta so the search is steered
	// firmly back toward the feasible region whenever it wanders out.
	DefaultGamma = 10.0

	// DefaultT0 is the starting temperature.
	DefaultT0 = 1000.0

	// DefaultCoolingRate is the geometric cooling ratio r in T_{k+1} = r*T_k.
	DefaultCoolingRate = 0.95

	// DefaultIterationsPerTemp is the number of Perturb/Pack trials run at
	// each temperature before cooling.
	DefaultIterationsPerTemp = 50

	// DefaultMinTemperature is the stopping temperature.
	DefaultMinTemperature = 1e-3

	// DefaultMaxIterations bounds total trials regardless of temperature,
	// as a hard backstop against runaway schedules.
	DefaultMaxIterations = 200_000

	// DefaultNoImprovementLimit stops the schedule early after this many
	// consecutive temperature steps with no improvement to the best-feasible
	// cost. Zero disables this criterion.
	DefaultNoImprovementLimit = 40
)

// Config defines the configurable parameters of the annealing schedule.
// Zero value is not meaningful; use DefaultConfig() and override fields as
// needed.
type Config struct {
	// Alpha, Beta, Gamma weight area, wirelength, and infeasibility penalty
	// respectively in the cost function.
	Alpha float64
	Beta  float64
	Gamma float64

	// T0 is the starting temperature. Must be positive.
	T0 float64

	// CoolingRate is r in the geometric schedule T_{k+1} = r*T_k. Must lie
	// in (0, 1).
	CoolingRate float64

	// IterationsPerTemp is the number of Perturb/Pack trials attempted at
	// each temperature.
	IterationsPerTemp int

	// MinTemperature stops the schedule once the current temperature drops
	// at or below this value.
	MinTemperature float64

	// MaxIterations bounds the total number of trials across the whole run,
	// regardless of temperature or no-improvement streak.
	MaxIterations int

	// NoImprovementLimit stops the schedule after this many consecutive
	// temperature steps produce no improvement in the best-feasible cost.
	// Zero disables this stopping criterion.
	NoImprovementLimit int

	// Seed controls the deterministic RNG stream. Zero selects a fixed
	// default seed, never a time-based source.
	Seed int64

	// TimeLimit optionally bounds wall-clock time for the whole schedule.
	// Zero means no limit; checked between temperature steps only, matching
	// the core's cooperative-cancellation model.
	TimeLimit time.Duration

	// Drawing, when true, builds every working Floorplan with is_drawing
	// set so the returned result carries a populated Drawing() snapshot of
	// its final Pack call.
	Drawing bool
}

// DefaultConfig returns a fully populated Config with conservative,
// reproducible defaults: moderate area/wirelength weights, a penalty weight
// an order of magnitude higher to bias the search toward feasibility, a
// geometric schedule starting hot and cooling slowly, and a fixed seed.
func DefaultConfig() Config {
	return Config{
		Alpha:              DefaultAlpha,
		Beta:               DefaultBeta,
		Gamma:              DefaultGamma,
		T0:                 DefaultT0,
		CoolingRate:        DefaultCoolingRate,
		IterationsPerTemp:  DefaultIterationsPerTemp,
		MinTemperature:     DefaultMinTemperature,
		MaxIterations:      DefaultMaxIterations,
		NoImprovementLimit: DefaultNoImprovementLimit,
		Seed:               0,
		TimeLimit:          0,
	}
}
