package natural

import (
	"errors"

	"github.com/aerocircuit/breitling/geo"
	"github.com/aerocircuit/breitling/station"
)

// Sentinel errors for the natural package.
var (
	// ErrNoFeasibleNextStation indicates the greedy march got stuck: every
	// remaining station is either already visited, out of fuel range, or
	// closed for the night, with none of those relaxed by backtracking
	// (this heuristic never backtracks, and never will: it trades
	// optimality for a cheap warm-start bound).
	ErrNoFeasibleNextStation = errors.New("natural: no feasible next station")

	// ErrNonPositiveMinStations indicates minStations <= 0.
	ErrNonPositiveMinStations = errors.New("natural: minStations must be positive")
)

// regionCaptureThreshold scales the distance to the nearest station outside
// a region's boundary into the target's "close enough" radius, matching the
// original's REGION_CAPTURE_THRESHOLD.
const regionCaptureThreshold = 0.5

// pathTarget is one waypoint of the greedy march: a region centroid (or the
// final designated target station), a capture radius, and the step index by
// which the march expects to have reached it.
type pathTarget struct {
	location geo.Location
	radius float64
	expectedStepsToReach int
}

// GreedySeed builds a heuristic path of up to minStations distinct stations
// starting at instance.DepartureStation, greedily marching region by region
// toward instance.TargetStation (if set), and returns the path along with
// its total flight time. If the march gets stuck before reaching
// minStations, it returns the partial path built so far alongside
// ErrNoFeasibleNextStation: still usable as a weak seed, just not a complete
// one.
func GreedySeed(instance *station.ProblemInstance, minStations int) ([]int, float64, error) {
	if minStations < 1 {
		return nil, 0, ErrNonPositiveMinStations
	}

	targets := generateTargets(instance, minStations)

	dep := instance.DepartureStation
	path := []int{dep}
	visitedStations := map[int]bool{dep: true}
	currentLocation := instance.Stations[dep].Location
	currentTime := instance.DepartureTime
	currentFuel := instance.PlaneFuelTime()
	totalTime := 0.0

	hasTarget := instance.TargetStation != station.NoTarget
	steps := minStations - 1
	if hasTarget {
		steps--
	}

	targetIdx := 0
	for step := 0; step < steps; step++ {
		if targetIdx >= len(targets) {
			targetIdx = len(targets) - 1
		}
		target := targets[targetIdx]

		remaining := target.expectedStepsToReach - step
		if remaining < 1 {
			remaining = 1
		}
		expected := geo.Interpolate(currentLocation, target.location, 1.0/float64(remaining))

		nextIdx, ok := nearestAccessible(instance, visitedStations, expected, currentLocation, currentFuel, currentTime)
		if !ok {
			return path, totalTime, ErrNoFeasibleNextStation
		}

		next := instance.Stations[nextIdx]
		hop := instance.TimeDistance(instance.Stations[path[len(path)-1]], next)

		currentTime += hop
		totalTime += hop
		currentFuel -= hop
		if next.FuelCapable {
			currentTime += instance.RefuelTime
			totalTime += instance.RefuelTime
			currentFuel = instance.PlaneFuelTime()
		}

		path = append(path, nextIdx)
		visitedStations[nextIdx] = true
		currentLocation = next.Location

		if geo.GreatCircleNM(target.location, currentLocation)/instance.CruiseSpeed < target.radius && targetIdx < len(targets)-1 {
			targetIdx++
		}
	}

	if hasTarget {
		last := instance.Stations[path[len(path)-1]]
		tgt := instance.Stations[instance.TargetStation]
		hop := instance.TimeDistance(last, tgt)
		if hop > currentFuel {
			return path, totalTime, ErrNoFeasibleNextStation
		}
		totalTime += hop
		path = append(path, instance.TargetStation)
	}

	return path, totalTime, nil
}

// generateTargets builds the ordered region-centroid waypoint list of
// natural heuristic: regions visited nearest-first starting from
// the departure station, followed once at the end by the designated target
// station if one is set (original's generateTargets).
func generateTargets(instance *station.ProblemInstance, minStations int) []pathTarget {
	regions := instance.Regions()
	n := station.RegionCount

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	current := instance.Stations[instance.DepartureStation].Location
	targets := make([]pathTarget, 0, n+1)
	totalDistance := 0.0

	remaining := append([]int(nil), order...)
	for len(remaining) > 0 {
		best, bestDist := 0, geo.GreatCircleNM(current, regions.Centroid(remaining[0]))
		for i := 1; i < len(remaining); i++ {
			d := geo.GreatCircleNM(current, regions.Centroid(remaining[i]))
			if d < bestDist {
				best, bestDist = i, d
			}
		}
		region := remaining[best]
		remaining = append(remaining[:best], remaining[best+1:]...)

		centroid := regions.Centroid(region)
		minOutside := minDistanceToOutsideOfRegion(instance, region, centroid)

		totalDistance += geo.GreatCircleNM(current, centroid)
		targets = append(targets, pathTarget{location: centroid, radius: minOutside * regionCaptureThreshold})
		current = centroid
	}

	if instance.TargetStation != station.NoTarget {
		loc := instance.Stations[instance.TargetStation].Location
		totalDistance += geo.GreatCircleNM(current, loc)
		targets = append(targets, pathTarget{location: loc, radius: 0})
	}

	if totalDistance == 0 {
		totalDistance = 1
	}

	acc := 0.0
	current = instance.Stations[instance.DepartureStation].Location
	for i := range targets {
		acc += geo.GreatCircleNM(current, targets[i].location)
		current = targets[i].location
		targets[i].expectedStepsToReach = int(acc / totalDistance * float64(minStations))
	}

	return targets
}

// minDistanceToOutsideOfRegion finds the smallest distance from centroid to
// any station whose primary region differs from region: any station closer
// to centroid than this distance is guaranteed to lie inside the region
// (original's "maximum distance to the region's center that can be crossed
// without being able to exit the region").
func minDistanceToOutsideOfRegion(instance *station.ProblemInstance, region int, centroid geo.Location) float64 {
	regions := instance.Regions()
	closest := geo.EarthRadiusNM * 4 // larger than any real great-circle distance
	for i, s := range instance.Stations {
		if regions.PrimaryRegion(i) == region {
			continue
		}
		d := geo.GreatCircleNM(s.Location, centroid)
		if d < closest {
			closest = d
		}
	}
	return closest
}

// nearestAccessible finds the unvisited, non-target station nearest to
// idealLocation (the interpolated "where we'd like to be" point) that the
// plane can actually reach from actualLocation (where it really is): within
// currentFuel range and open at the arrival time. Returns false if no such
// station exists. The original left the fuel check as a TODO; this always
// enforces it.
func nearestAccessible(instance *station.ProblemInstance, visited map[int]bool, idealLocation, actualLocation geo.Location, currentFuel, currentTime float64) (int, bool) {
	best, bestDist := -1, 0.0
	for i, s := range instance.Stations {
		if visited[i] {
			continue
		}
		if instance.TargetStation != station.NoTarget && i == instance.TargetStation {
			continue
		}
		d := geo.GreatCircleNM(idealLocation, s.Location)
		if best != -1 && d >= bestDist {
			continue
		}

		hopTime, err := geo.TimeDistance(geo.GreatCircleNM(actualLocation, s.Location), instance.CruiseSpeed)
		if err != nil || hopTime > currentFuel {
			continue
		}
		if !s.NightAccessible && instance.IsNight(currentTime+hopTime) {
			continue
		}

		best, bestDist = i, d
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
