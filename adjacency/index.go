package adjacency

import (
	"errors"
	"sort"

	"github.com/aerocircuit/breitling/station"
)

// Sentinel errors for the adjacency package.
var (
	// ErrTooManyStations indicates N > station.MaxStations.
	ErrTooManyStations = errors.New("adjacency: catalogue exceeds maximum supported stations")

	// ErrNoFuelCapableStation indicates the catalogue has no fuel-capable
	// station at all, so the fuel-guarantee post-condition cannot hold.
	ErrNoFuelCapableStation = errors.New("adjacency: catalogue has no fuel-capable station")
)

// DefaultK is the default neighbour-list size ("K ≈ 20").
const DefaultK = 20

// Neighbour is one entry of a station's neighbour list.
type Neighbour struct {
	Distance float64
	Station int
}

// Index is the partial adjacency index: per-station K-nearest neighbour
// lists plus fuel/target distances.
type Index struct {
	k int
	neighbours [][]Neighbour
	distanceToTarget []float64
	nearestRefuelDistance []float64
	hasTarget bool
	target int
}

// Build computes the partial adjacency index for instance, keeping at most k
// nearest neighbours per station (DefaultK if k <= 0). Returns
// ErrTooManyStations or ErrNoFuelCapableStation on failure.
func Build(instance *station.ProblemInstance, k int) (*Index, error) {
	if k <= 0 {
		k = DefaultK
	}
	n := len(instance.Stations)
	if n > station.MaxStations {
		return nil, ErrTooManyStations
	}

	anyFuel := false
	for _, s := range instance.Stations {
		if s.FuelCapable {
			anyFuel = true
			break
		}
	}
	if !anyFuel {
		return nil, ErrNoFuelCapableStation
	}

	hasTarget := instance.TargetStation != station.NoTarget
	target := instance.TargetStation

	idx := &Index{
		k: k,
		neighbours: make([][]Neighbour, n),
		distanceToTarget: make([]float64, n),
		nearestRefuelDistance: make([]float64, n),
		hasTarget: hasTarget,
		target: target,
	}

	for i := 0; i < n; i++ {
		si := instance.Stations[i]

		all := make([]Neighbour, 0, n-1)
		minFuel := -1
		minFuelDist := 0.0

		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if hasTarget && j == target {
				continue
			}
			sj := instance.Stations[j]
			d := instance.TimeDistance(si, sj)
			all = append(all, Neighbour{Distance: d, Station: j})

			if sj.FuelCapable && (minFuel == -1 || d < minFuelDist) {
				minFuel = j
				minFuelDist = d
			}
		}

		sort.Slice(all, func(a, b int) bool { return all[a].Distance < all[b].Distance })

		kk := k
		if kk > len(all) {
			kk = len(all)
		}
		nb := make([]Neighbour, kk)
		copy(nb, all[:kk])

		hasFuelInList := false
		for _, n := range nb {
			if instance.Stations[n.Station].FuelCapable {
				hasFuelInList = true
				break
			}
		}
		if !hasFuelInList && minFuel != -1 {
			nb = append(nb, Neighbour{Distance: minFuelDist, Station: minFuel})
		}

		idx.neighbours[i] = nb
		idx.nearestRefuelDistance[i] = minFuelDist
		if minFuel == -1 {
			idx.nearestRefuelDistance[i] = 0
		}

		if hasTarget {
			idx.distanceToTarget[i] = instance.TimeDistance(si, instance.Stations[target])
		}
	}

	return idx, nil
}

// Neighbours returns station s's ordered (ascending distance) neighbour
// list, of at most K entries plus the fuel-fallback entry if one was added.
func (idx *Index) Neighbours(s int) []Neighbour { return idx.neighbours[s] }

// DistanceToTarget returns the time-distance from s to the target station.
// Meaningless (returns 0) if the instance has no target; callers should
// check HasTarget first.
func (idx *Index) DistanceToTarget(s int) float64 { return idx.distanceToTarget[s] }

// NearestRefuelDistance returns the time-distance from s to the nearest
// fuel-capable station, independently of whether it made the K-best list.
func (idx *Index) NearestRefuelDistance(s int) float64 { return idx.nearestRefuelDistance[s] }

// HasTarget reports whether this instance has a designated target station.
func (idx *Index) HasTarget() bool { return idx.hasTarget }

// Target returns the designated target station index; only meaningful if
// HasTarget() is true.
func (idx *Index) Target() int { return idx.target }
