package labelsetting

import "time"

// Diagnostics reports statistics about one Solve call, extended with the
// original solver's profiling counters: arena reallocation counts and
// explored-label counts, surfaced unconditionally rather than behind a
// debug build flag.
type Diagnostics struct {
	// Elapsed is the wall-clock time spent inside Solve.
	Elapsed time.Duration

	// SeedUsed reports whether a heuristic seed path warm-started the upper
	// bound.
	SeedUsed bool

	// BestTime is the total time of the returned path measured from the
	// departure time (flight time plus any refuel stops), or +Inf if no
	// feasible path was found.
	BestTime float64

	// Iterations is the number of main-loop iterations executed.
	Iterations int

	// ExploredLabels is the number of labels popped and marked explored.
	ExploredLabels int

	// LabelReallocCount / FragmentReallocCount mirror the original's
	// profiling_stats counters.
	LabelReallocCount int
	FragmentReallocCount int

	// StoppedEarly reports whether the stop flag or a time/iteration budget
	// ended the search before the queue drained.
	StoppedEarly bool
}
