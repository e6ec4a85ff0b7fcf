package labelsetting_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aerocircuit/breitling/labelsetting"
	"github.com/aerocircuit/breitling/station"
)

func buildFourStationLine(t *testing.T) *station.ProblemInstance {
	t.Helper()
	stations := lineStations([]float64{0, 10, 20, 30}, nil, nil)
	stations[0].Name, stations[1].Name, stations[2].Name, stations[3].Name = "A", "B", "C", "D"

	inst, err := station.New(stations, 0, 120, 1000, 100, 0, 0, 24, 0,
		station.WithRegionPredicates(regionByLonBands(5, 15, 25)))
	require.NoError(t, err)
	return inst
}

func TestValidatePath_Valid(t *testing.T) {
	inst := buildFourStationLine(t)
	err := labelsetting.ValidatePath(inst, []int{0, 1, 2, 3}, 4, 24)
	require.NoError(t, err)
}

func TestValidatePath_WrongDeparture(t *testing.T) {
	inst := buildFourStationLine(t)
	err := labelsetting.ValidatePath(inst, []int{1, 2, 3}, 3, 24)
	require.ErrorIs(t, err, labelsetting.ErrWrongDeparture)
}

func TestValidatePath_WrongTarget(t *testing.T) {
	stations := lineStations([]float64{0, 10, 20, 30}, nil, nil)
	inst, err := station.New(stations, 0, 120, 1000, 100, 0, 0, 24, 0,
		station.WithTarget(3),
		station.WithRegionPredicates(regionByLonBands(5, 15, 25)))
	require.NoError(t, err)

	verr := labelsetting.ValidatePath(inst, []int{0, 1, 2}, 3, 24)
	require.ErrorIs(t, verr, labelsetting.ErrWrongTarget)
}

func TestValidatePath_TooFewStations(t *testing.T) {
	inst := buildFourStationLine(t)
	err := labelsetting.ValidatePath(inst, []int{0, 1}, 4, 24)
	require.ErrorIs(t, err, labelsetting.ErrTooFewStations)
}

func TestValidatePath_DuplicateStation(t *testing.T) {
	inst := buildFourStationLine(t)
	err := labelsetting.ValidatePath(inst, []int{0, 1, 0, 2}, 3, 24)
	require.ErrorIs(t, err, labelsetting.ErrDuplicateStation)
}

func TestValidatePath_MissingRegion(t *testing.T) {
	inst := buildFourStationLine(t)
	// Visits only stations 0 and 1, touching two of the four mandatory regions.
	err := labelsetting.ValidatePath(inst, []int{0, 1}, 2, 24)
	require.ErrorIs(t, err, labelsetting.ErrMissingRegion)
}

func TestValidatePath_FuelExhausted(t *testing.T) {
	stations := lineStations([]float64{0, 10, 20, 30}, nil, nil)
	// Burn rate high enough that a single hop (600nm @ 120kt = 5h) exceeds
	// the plane's endurance of 1h.
	inst, err := station.New(stations, 0, 120, 100, 100, 0, 0, 24, 0,
		station.WithRegionPredicates(regionByLonBands(5, 15, 25)))
	require.NoError(t, err)

	verr := labelsetting.ValidatePath(inst, []int{0, 1, 2, 3}, 4, 24)
	require.ErrorIs(t, verr, labelsetting.ErrFuelExhausted)
}

func TestValidatePath_DurationExceeded(t *testing.T) {
	inst := buildFourStationLine(t)
	err := labelsetting.ValidatePath(inst, []int{0, 1, 2, 3}, 4, 1.0)
	require.ErrorIs(t, err, labelsetting.ErrDurationExceeded)
}
