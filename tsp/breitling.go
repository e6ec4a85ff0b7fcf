package tsp

import (
	"fmt"

	"github.com/aerocircuit/breitling/station"
)

// stationDistance closes over instance's catalogue and returns the
// time-distance function TwoOpt/NearestNeighbourTour operate on.
func stationDistance(instance *station.ProblemInstance) func(u, v int) float64 {
	stations := instance.Stations
	return func(u, v int) float64 {
		if u == v {
			return 0
		}
		return instance.TimeDistance(stations[u], stations[v])
	}
}

// stationIDs returns one display name per station, falling back to
// "station-<index>" for unnamed entries.
func stationIDs(instance *station.ProblemInstance) []string {
	ids := make([]string, len(instance.Stations))
	for i, s := range instance.Stations {
		if s.Name != "" {
			ids[i] = s.Name
			continue
		}
		ids[i] = fmt.Sprintf("station-%d", s.Index)
	}
	return ids
}

// SolveStations produces a closed tour visiting every station of instance's
// catalogue exactly once: nearest-neighbour construction followed by 2-opt
// improvement. A distinct computation from labelsetting's search - no
// MinStations threshold, no mandatory-region coverage, no fuel or night-VFR
// constraint, just the shortest cycle this package's local search can find,
// starting and ending at instance.DepartureStation.
func SolveStations(instance *station.ProblemInstance, opts Options) (TSResult, []string, error) {
	n := len(instance.Stations)
	if n == 0 {
		return TSResult{}, nil, ErrDimensionMismatch
	}
	opts.StartVertex = instance.DepartureStation

	dist := stationDistance(instance)
	ids := stationIDs(instance)

	seed, err := NearestNeighbourTour(dist, n, opts.StartVertex)
	if err != nil {
		return TSResult{}, nil, err
	}
	if n < 3 {
		cost, err := tourCost(dist, seed)
		if err != nil {
			return TSResult{}, nil, err
		}
		return TSResult{Tour: seed, Cost: cost}, ids, nil
	}

	tour, cost, err := TwoOpt(dist, seed, opts)
	if err != nil {
		return TSResult{}, nil, err
	}
	return TSResult{Tour: tour, Cost: cost}, ids, nil
}
