package labelsetting_test

import (
	"github.com/aerocircuit/breitling/geo"
	"github.com/aerocircuit/breitling/station"
)

// regionByQuadrant assigns each of the 4 mandatory regions to one quadrant of
// the lon/lat plane, letting small synthetic catalogues populate every
// region without needing the real continental-France inequalities.
func regionByQuadrant(midLon, midLat float64) [station.RegionCount]station.RegionPredicate {
	return [station.RegionCount]station.RegionPredicate{
		func(l geo.Location) bool { return l.Lon < midLon && l.Lat < midLat },
		func(l geo.Location) bool { return l.Lon >= midLon && l.Lat < midLat },
		func(l geo.Location) bool { return l.Lon >= midLon && l.Lat >= midLat },
		func(l geo.Location) bool { return l.Lon < midLon && l.Lat >= midLat },
	}
}

// regionByLonBands assigns each of the 4 mandatory regions to one band of
// longitude, for synthetic catalogues laid out on a single collinear line
// (regionByQuadrant's lat split degenerates when every station shares one
// latitude).
func regionByLonBands(b1, b2, b3 float64) [station.RegionCount]station.RegionPredicate {
	return [station.RegionCount]station.RegionPredicate{
		func(l geo.Location) bool { return l.Lon < b1 },
		func(l geo.Location) bool { return l.Lon >= b1 && l.Lon < b2 },
		func(l geo.Location) bool { return l.Lon >= b2 && l.Lon < b3 },
		func(l geo.Location) bool { return l.Lon >= b3 },
	}
}

func lineStations(lons []float64, fuelCapable, nightAccessible []bool) []station.Station {
	out := make([]station.Station, len(lons))
	for i, lon := range lons {
		out[i] = station.Station{
			Index:           i,
			Location:        geo.Location{Lon: lon, Lat: 0},
			FuelCapable:     fuelCapable == nil || fuelCapable[i],
			NightAccessible: nightAccessible == nil || nightAccessible[i],
		}
	}
	return out
}
