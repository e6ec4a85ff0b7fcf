package labelsetting

import (
	"github.com/aerocircuit/breitling/adjacency"
	"github.com/aerocircuit/breitling/arena"
	"github.com/aerocircuit/breitling/lowerbound"
	"github.com/aerocircuit/breitling/station"
)

// lowerBound computes an admissible lower bound on the remaining time for
// label l:
//
// lb = max( Tr[R - popcount(visited_regions)],
// Ts[MinStations - visited_station_count],
// distance_to_target(current_station) )
//
// When the instance has no target station, the distance-to-target term is
// omitted: Tr and Ts are always >= 0, so feeding 0 for that term leaves the
// max unaffected.
func lowerBound(l *arena.Label, tables *lowerbound.Tables, adj *adjacency.Index, minStations int) float64 {
	regionsLeft := station.RegionCount - l.VisitedRegions.PopCount()
	tr := tables.RegionBound(regionsLeft)

	stationsLeft := minStations - l.VisitedStationCount
	ts := tables.StationBound(stationsLeft)

	dtt := 0.0
	if adj.HasTarget() {
		dtt = adj.DistanceToTarget(l.CurrentStation)
	}

	lb := tr
	if ts > lb {
		lb = ts
	}
	if dtt > lb {
		lb = dtt
	}
	return lb
}
