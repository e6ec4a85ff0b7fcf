// Package tsp - shared types, configuration, and sentinel errors.
package tsp

import (
	"errors"
	"time"
)

// Sentinel errors. Do not wrap with fmt.Errorf where one of these suffices.
var (
	// ErrDimensionMismatch indicates a tour/vertex-count shape inconsistency.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNegativeWeight indicates a negative distance was encountered.
	ErrNegativeWeight = errors.New("tsp: negative distance encountered")

	// ErrStartOutOfRange indicates Options.StartVertex is outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrTimeLimit indicates a user-specified time budget was exhausted.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")
)

// TSResult encapsulates the output of SolveStations.
type TSResult struct {
	// Tour is the closed Hamiltonian cycle: len(Tour) == n+1,
	// Tour[0] == Tour[n] == StartVertex, each vertex in [0..n-1] appears
	// exactly once in Tour[0:n].
	Tour []int

	// Cost is the total distance along the cycle, rounded to 1e-9.
	Cost float64
}

// Default knobs.
const (
	// DefaultEps is the minimal strictly-better improvement 2-opt accepts.
	DefaultEps = 1e-12

	// DefaultTwoOptMaxIters caps the number of accepted 2-opt swaps.
	DefaultTwoOptMaxIters = 10_000
)

// Options configures SolveStations and TwoOpt. Zero value is not meaningful; use
// DefaultOptions() and override fields as needed.
type Options struct {
	// StartVertex selects the start/end vertex index [0..n-1]. Default: 0.
	StartVertex int

	// TwoOptMaxIters bounds the total number of accepted 2-opt moves.
	// Zero means unlimited (run until a local optimum). Default: 10_000.
	TwoOptMaxIters int

	// Eps is the minimal improvement considered significant by 2-opt.
	// Default: 1e-12.
	Eps float64

	// TimeLimit optionally bounds wall-clock time spent in 2-opt.
	// Zero means no limit.
	TimeLimit time.Duration
}

// DefaultOptions returns Options with safe defaults: start at vertex 0,
// 2-opt capped at DefaultTwoOptMaxIters accepted moves, no time limit.
func DefaultOptions() Options {
	return Options{
		StartVertex:    0,
		TwoOptMaxIters: DefaultTwoOptMaxIters,
		Eps:            DefaultEps,
		TimeLimit:      0,
	}
}
