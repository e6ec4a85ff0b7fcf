package labelsetting

import (
	"errors"

	"github.com/aerocircuit/breitling/arena"
	"github.com/aerocircuit/breitling/station"
)

// Sentinel errors for path validation.
var (
	ErrWrongDeparture = errors.New("labelsetting: path does not start at the departure station")
	ErrWrongTarget = errors.New("labelsetting: path does not end at the target station")
	ErrTooFewStations = errors.New("labelsetting: path has fewer than MinStations distinct stations")
	ErrDuplicateStation = errors.New("labelsetting: path visits a station more than once")
	ErrMissingRegion = errors.New("labelsetting: path does not touch every mandatory region")
	ErrFuelExhausted = errors.New("labelsetting: path runs out of fuel")
	ErrDurationExceeded = errors.New("labelsetting: path exceeds MaxDuration")
)

// ValidatePath checks every independent condition a completed path must
// satisfy (a sequence of station indices), returning the first violated
// sentinel, or nil if the path is valid.
func ValidatePath(instance *station.ProblemInstance, path []int, minStations int, maxDuration float64) error {
	if len(path) == 0 {
		return ErrTooFewStations
	}
	if path[0] != instance.DepartureStation {
		return ErrWrongDeparture
	}
	if instance.TargetStation != station.NoTarget && path[len(path)-1] != instance.TargetStation {
		return ErrWrongTarget
	}

	var visited arena.StationSet
	for _, s := range path {
		if visited.Has(s) {
			return ErrDuplicateStation
		}
		visited.Set(s)
	}
	if visited.Count() < minStations {
		return ErrTooFewStations
	}

	regions := instance.Regions()
	var touched station.RegionSet
	for _, s := range path {
		if p := regions.PrimaryRegion(s); p >= 0 {
			touched |= station.RegionBit(p)
		}
	}
	if touched.PopCount() < station.RegionCount {
		return ErrMissingRegion
	}

	distanceSinceRefuel := 0.0
	totalDistance := 0.0
	for i := 1; i < len(path); i++ {
		a, b := instance.Stations[path[i-1]], instance.Stations[path[i]]
		d := instance.TimeDistance(a, b)
		totalDistance += d
		distanceSinceRefuel += d

		remainingFuel := instance.PlaneFuelTime() - distanceSinceRefuel
		if remainingFuel < -1e-9 {
			return ErrFuelExhausted
		}
		if b.FuelCapable {
			distanceSinceRefuel = 0
		}
	}

	if totalDistance >= maxDuration {
		return ErrDurationExceeded
	}
	return nil
}
