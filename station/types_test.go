package station_test

import (
	"testing"

	"github.com/aerocircuit/breitling/geo"
	"github.com/aerocircuit/breitling/station"
	"github.com/stretchr/testify/require"
)

func toyGrid() []station.Station {
	return []station.Station{
		{Index: 0, Location: geo.Location{Lon: 0, Lat: 0}, FuelCapable: true, NightAccessible: true},
		{Index: 1, Location: geo.Location{Lon: 10, Lat: 0}, FuelCapable: false, NightAccessible: true},
		{Index: 2, Location: geo.Location{Lon: 20, Lat: 0}, FuelCapable: true, NightAccessible: true},
		{Index: 3, Location: geo.Location{Lon: 30, Lat: 0}, FuelCapable: false, NightAccessible: false},
	}
}

// lonBandRegions splits stations into the four mandatory regions by
// longitude (below 5, below 15, below 25, the rest), which gives each
// station of toyGrid a region of its own.
func lonBandRegions() [station.RegionCount]station.RegionPredicate {
	return [station.RegionCount]station.RegionPredicate{
		func(l geo.Location) bool { return l.Lon < 5 },
		func(l geo.Location) bool { return l.Lon >= 5 && l.Lon < 15 },
		func(l geo.Location) bool { return l.Lon >= 15 && l.Lon < 25 },
		func(l geo.Location) bool { return l.Lon >= 25 },
	}
}

func TestNew_ValidInstance(t *testing.T) {
	t.Parallel()
	p, err := station.New(toyGrid(), 0, 120, 100, 25, 0.5, 8, 20, 6,
		station.WithTarget(3), station.WithRegionPredicates(lonBandRegions()))
	require.NoError(t, err)
	require.Equal(t, 3, p.TargetStation)
	require.InDelta(t, 4.0, p.PlaneFuelTime(), 1e-9)
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()
	grid := toyGrid()
	preds := lonBandRegions()

	_, err := station.New(nil, 0, 120, 100, 25, 0.5, 8, 20, 6, station.WithRegionPredicates(preds))
	require.ErrorIs(t, err, station.ErrEmptyCatalogue)

	_, err = station.New(grid, 9, 120, 100, 25, 0.5, 8, 20, 6, station.WithRegionPredicates(preds))
	require.ErrorIs(t, err, station.ErrIndexOutOfRange)

	_, err = station.New(grid, 0, 0, 100, 25, 0.5, 8, 20, 6, station.WithRegionPredicates(preds))
	require.ErrorIs(t, err, station.ErrNonPositiveSpeed)

	_, err = station.New(grid, 0, 120, 0, 25, 0.5, 8, 20, 6, station.WithRegionPredicates(preds))
	require.ErrorIs(t, err, station.ErrNonPositiveFuelCapacity)

	_, err = station.New(grid, 0, 120, 100, 0, 0.5, 8, 20, 6, station.WithRegionPredicates(preds))
	require.ErrorIs(t, err, station.ErrNonPositiveFuelBurnRate)

	_, err = station.New(grid, 0, 120, 100, 25, -1, 8, 20, 6, station.WithRegionPredicates(preds))
	require.ErrorIs(t, err, station.ErrNegativeRefuelTime)

	_, err = station.New(grid, 0, 120, 100, 25, 0.5, 20, 8, 6, station.WithRegionPredicates(preds))
	require.ErrorIs(t, err, station.ErrInvalidDayNightWindow)

	_, err = station.New(grid, 0, 120, 100, 25, 0.5, 8, 20, 6) // default France predicates, toy grid is region-less
	require.ErrorIs(t, err, station.ErrEmptyRegion)
}

func TestNew_TooManyStations(t *testing.T) {
	t.Parallel()
	big := make([]station.Station, station.MaxStations+1)
	for i := range big {
		big[i] = station.Station{Index: i, Location: geo.Location{Lon: float64(i), Lat: 0}}
	}
	_, err := station.New(big, 0, 120, 100, 25, 0.5, 8, 20, 6, station.WithRegionPredicates(lonBandRegions()))
	require.ErrorIs(t, err, station.ErrTooManyStations)
}

func TestRegionSet(t *testing.T) {
	t.Parallel()

	rs := station.RegionBit(0) | station.RegionBit(2)
	require.Equal(t, 2, rs.PopCount())
	require.True(t, rs.Has(0))
	require.False(t, rs.Has(1))
	require.True(t, rs.Contains(station.RegionBit(0)))
	require.False(t, rs.Contains(station.RegionBit(1)))
	require.Equal(t, station.RegionCount, station.AllRegions.PopCount())
}

func TestDefaultRegionPredicates_France(t *testing.T) {
	t.Parallel()

	// A catalogue with one station per default France region.
	grid := []station.Station{
		{Index: 0, Location: geo.Location{Lon: -5, Lat: 48}},   // region 0
		{Index: 1, Location: geo.Location{Lon: 0, Lat: 43}},    // region 1
		{Index: 2, Location: geo.Location{Lon: 6, Lat: 43}},    // region 2
		{Index: 3, Location: geo.Location{Lon: 7, Lat: 47}},    // region 3
	}
	p, err := station.New(grid, 0, 120, 100, 25, 0.5, 8, 20, 6)
	require.NoError(t, err)
	regions := p.Regions()
	require.Equal(t, 0, regions.PrimaryRegion(0))
	require.Equal(t, 1, regions.PrimaryRegion(1))
	require.Equal(t, 2, regions.PrimaryRegion(2))
	require.Equal(t, 3, regions.PrimaryRegion(3))
	for i := range grid {
		require.Equal(t, i, regions.ExtendedRegion(i))
	}
}
