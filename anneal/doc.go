// Package anneal is documented at the top of anneal.go (the schedule, cost
// function, and determinism guarantees) and multistart.go (parallel
// reduction across independent workers).
package anneal
