package labelsetting

import (
	"github.com/aerocircuit/breitling/adjacency"
	"github.com/aerocircuit/breitling/arena"
	"github.com/aerocircuit/breitling/station"
)

// childCandidate is a prospective child label, before the domination filter
// has run and before a fragment has been materialised for it: fragments are
// created lazily only once a label survives the domination filter.
type childCandidate struct {
	Station int
	Time float64
	Fuel float64
	VisitedStations arena.StationSet
	VisitedRegions station.RegionSet
	VisitedStationCount int
	Refueled bool
}

// exploreChildren generates at most 2*len(candidateNeighbours) children for
// label l at station s, applying every pruning test.
func exploreChildren(
	l *arena.Label,
	instance *station.ProblemInstance,
	adj *adjacency.Index,
	minStations int,
	bestTime float64,
) []childCandidate {
	s := l.CurrentStation
	regions := instance.Regions()

	var out []childCandidate

	type edge struct {
		station int
		distance float64
	}
	var candidates []edge

	if l.VisitedStationCount == minStations-1 && adj.HasTarget() {
		candidates = []edge{{station: adj.Target(), distance: adj.DistanceToTarget(s)}}
	} else {
		for _, nb := range adj.Neighbours(s) {
			candidates = append(candidates, edge{station: nb.Station, distance: nb.Distance})
		}
	}

	erS := regions.ExtendedRegion(s)
	rL := l.VisitedRegions
	allRegionsVisited := rL.PopCount() == station.RegionCount

	for _, c := range candidates {
		n := c.station
		d := c.distance
		isTarget := adj.HasTarget() && n == adj.Target()
		ns := instance.Stations[n]

		if l.VisitedStations.Has(n) {
			continue
		}
		if d > l.CurrentFuel {
			continue
		}
		arrival := l.CurrentTime + d
		if arrival >= bestTime {
			continue
		}

		primaryN := regions.PrimaryRegion(n)
		unionRegions := rL
		if primaryN >= 0 {
			unionRegions = rL | station.RegionBit(primaryN)
		}
		stationsLeftAfter := minStations - l.VisitedStationCount
		if stationsLeftAfter < station.RegionCount-unionRegions.PopCount() {
			continue
		}

		if !ns.FuelCapable {
			if l.CurrentFuel-d < adj.NearestRefuelDistance(n) {
				continue
			}
		}

		if !ns.NightAccessible && !isTarget && instance.IsNight(arrival) {
			continue
		}

		// Regional pruning strategy.
		if !allRegionsVisited {
			erN := regions.ExtendedRegion(n)
			if !rL.Has(erS) {
				if erN != erS {
					continue
				}
			} else {
				if erN == erS || rL.Has(erN) {
					continue
				}
			}
		}

		newVisited := l.VisitedStations
		newVisited.Set(n)

		skipNoRefuel := instance.RefuelTime == 0 && ns.FuelCapable
		if !skipNoRefuel {
			out = append(out, childCandidate{
					Station: n,
					Time: arrival,
					Fuel: l.CurrentFuel - d,
					VisitedStations: newVisited,
					VisitedRegions: unionRegions,
					VisitedStationCount: l.VisitedStationCount + 1,
					Refueled: false,
				})
		}

		if ns.FuelCapable {
			out = append(out, childCandidate{
					Station: n,
					Time: arrival + instance.RefuelTime,
					Fuel: instance.PlaneFuelTime(),
					VisitedStations: newVisited,
					VisitedRegions: unionRegions,
					VisitedStationCount: l.VisitedStationCount + 1,
					Refueled: true,
				})
		}
	}

	return out
}
