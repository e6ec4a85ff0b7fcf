package labelsetting

import "github.com/aerocircuit/breitling/arena"

// Dominates reports whether label a dominates label b. Callers must only
// compare labels already known to be at the same station (the per-station
// bucketing in Solver.perStation enforces this); Dominates itself does not
// check CurrentStation.
func Dominates(a, b *arena.Label) bool {
	return a.VisitedStationCount == b.VisitedStationCount &&
		a.VisitedRegions.Contains(b.VisitedRegions) &&
		a.CurrentTime <= b.CurrentTime
}
