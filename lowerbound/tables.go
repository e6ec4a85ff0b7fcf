package lowerbound

import (
	"errors"
	"sort"

	"github.com/aerocircuit/breitling/station"
)

// Sentinel errors for the lowerbound package.
var (
	// ErrInsufficientStations indicates fewer than 2 stations were supplied,
	// so no pairwise distance exists to build T_s.
	ErrInsufficientStations = errors.New("lowerbound: need at least two stations")
)

// Tables holds the two monotone-non-decreasing lower-bound arrays: Tr over
// region counts and Ts over station counts.
type Tables struct {
	// Tr[k] is the sum of the k smallest inter-region time-distances, for
	// k in [0, station.RegionCount].
	Tr []float64

	// Ts[k] is the sum of the k smallest inter-station time-distances, for
	// k in [0, minStations].
	Ts []float64
}

// Build computes Tr and Ts for instance, capping Ts at minStations entries
// (MIN_STATIONS). Returns ErrInsufficientStations if the
// catalogue has fewer than two stations.
func Build(instance *station.ProblemInstance, minStations int) (*Tables, error) {
	n := len(instance.Stations)
	if n < 2 {
		return nil, ErrInsufficientStations
	}

	regions := instance.Regions()
	R := station.RegionCount

	// regionPairMin[i][j] (i<j) = min time-distance between a primary
	// member of region i and a primary member of region j.
	const inf = 1e18
	regionPairMin := make([][]float64, R)
	for i := range regionPairMin {
		regionPairMin[i] = make([]float64, R)
		for j := range regionPairMin[i] {
			regionPairMin[i][j] = inf
		}
	}

	allPairs := make([]float64, 0, n*(n-1)/2)

	for i := 0; i < n; i++ {
		si := instance.Stations[i]
		ri := regions.PrimaryRegion(i)
		for j := i + 1; j < n; j++ {
			sj := instance.Stations[j]
			d := instance.TimeDistance(si, sj)
			allPairs = append(allPairs, d)

			rj := regions.PrimaryRegion(j)
			if ri >= 0 && rj >= 0 && ri != rj {
				a, b := ri, rj
				if a > b {
					a, b = b, a
				}
				if d < regionPairMin[a][b] {
					regionPairMin[a][b] = d
				}
			}
		}
	}

	regionPairs := make([]float64, 0, R*(R-1)/2)
	for i := 0; i < R; i++ {
		for j := i + 1; j < R; j++ {
			if regionPairMin[i][j] < inf {
				regionPairs = append(regionPairs, regionPairMin[i][j])
			}
		}
	}
	sort.Float64s(regionPairs)
	sort.Float64s(allPairs)

	tr := cumulative(regionPairs, R)
	ts := cumulative(allPairs, minStations)

	return &Tables{Tr: tr, Ts: ts}, nil
}

// cumulative returns a slice of length max+1 where result[k] is the sum of
// the k smallest values in sorted (already ascending), clamped at len(sorted);
// once sorted is exhausted the sum simply stops growing, keeping the table
// monotone non-decreasing.
func cumulative(sorted []float64, max int) []float64 {
	out := make([]float64, max+1)
	sum := 0.0
	for k := 1; k <= max; k++ {
		if k-1 < len(sorted) {
			sum += sorted[k-1]
		}
		out[k] = sum
	}
	return out
}

// RegionBound returns Tr[k] clamped to the table's range.
func (t *Tables) RegionBound(k int) float64 {
	if k < 0 {
		k = 0
	}
	if k >= len(t.Tr) {
		k = len(t.Tr) - 1
	}
	return t.Tr[k]
}

// StationBound returns Ts[k] clamped to the table's range.
func (t *Tables) StationBound(k int) float64 {
	if k < 0 {
		k = 0
	}
	if k >= len(t.Ts) {
		k = len(t.Ts) - 1
	}
	return t.Ts[k]
}
