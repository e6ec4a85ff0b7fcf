package station

import (
	"math/bits"

	"github.com/aerocircuit/breitling/geo"
)

// RegionCount is the fixed number of mandatory geographic regions.
const RegionCount = 4

// RegionSet is a bit field of RegionCount bits, one per region: bit r set
// means region r has been visited. Mirrors the original's region_t
// (_examples/original_source/Solver/src/breitling/label_setting_breitling.h).
type RegionSet uint8

// RegionBit returns the single-region bit field for region r.
func RegionBit(r int) RegionSet { return RegionSet(1) << uint(r) }

// AllRegions is the bit field with every region bit set.
const AllRegions RegionSet = (1 << RegionCount) - 1

// PopCount returns the number of set bits, i.e. the number of visited regions.
func (rs RegionSet) PopCount() int { return bits.OnesCount8(uint8(rs)) }

// Contains reports whether rs has every bit set in other (rs ⊇ other).
func (rs RegionSet) Contains(other RegionSet) bool { return rs&other == other }

// Has reports whether region r's bit is set.
func (rs RegionSet) Has(r int) bool { return rs&RegionBit(r) != 0 }

// RegionPredicate reports whether a location lies within one mandatory
// region. Predicates are evaluated in order; the first match wins, so they
// should be disjoint ("a station belongs to at most one primary
// region").
type RegionPredicate func(geo.Location) bool

// defaultRegionPredicates are the continental-France half-plane inequalities
// hard-coded in the original solver's breitlingSolver.cpp,
// isStationInMandatoryRegion: four regions carved out of the map by
// longitude/latitude thresholds.
var defaultRegionPredicates = [RegionCount]RegionPredicate{
	func(l geo.Location) bool { return l.Lon < -1.66 },
	func(l geo.Location) bool { return l.Lon < 2 && l.Lat < 44.5 },
	func(l geo.Location) bool { return l.Lon > 5 && l.Lat < 44.5 },
	func(l geo.Location) bool { return l.Lon > 6 && l.Lat > 46.5 },
}

// Regions holds the per-station primary/extended region assignment and
// region centroids for one ProblemInstance, computed by assignAll.
type Regions struct {
	predicates [RegionCount]RegionPredicate

	// primary[s] is the primary region index of station s, or -1 if the
	// station matches no predicate.
	primary []int

	// extended[s] is the extended region index of station s: the region
	// whose centroid is nearest. Always assigned.
	extended []int

	centroids [RegionCount]geo.Location
}

func newRegions(preds [RegionCount]RegionPredicate) Regions {
	return Regions{predicates: preds}
}

// PrimaryRegion returns the primary region index of station s, or -1 if the
// station belongs to no mandatory region.
func (r *Regions) PrimaryRegion(s int) int { return r.primary[s] }

// ExtendedRegion returns the extended region index of station s: every
// station has exactly one.
func (r *Regions) ExtendedRegion(s int) int { return r.extended[s] }

// Centroid returns the computed centroid of region idx.
func (r *Regions) Centroid(idx int) geo.Location { return r.centroids[idx] }

// assignAll computes primary regions, verifies every mandatory region is
// non-empty (ErrEmptyRegion otherwise), computes centroids by averaging
// primary-member locations, then assigns every station its extended region
// by nearest centroid.
func (r *Regions) assignAll(stations []Station) error {
	n := len(stations)
	r.primary = make([]int, n)
	r.extended = make([]int, n)

	var sumLon, sumLat [RegionCount]float64
	var count [RegionCount]int

	for i, s := range stations {
		region := -1
		for ri, pred := range r.predicates {
			if pred(s.Location) {
				region = ri
				break
			}
		}
		r.primary[i] = region
		if region >= 0 {
			sumLon[region] += s.Location.Lon
			sumLat[region] += s.Location.Lat
			count[region]++
		}
	}

	for ri := 0; ri < RegionCount; ri++ {
		if count[ri] == 0 {
			return ErrEmptyRegion
		}
		r.centroids[ri] = geo.Location{
			Lon: sumLon[ri] / float64(count[ri]),
			Lat: sumLat[ri] / float64(count[ri]),
		}
	}

	for i, s := range stations {
		best, bestDist := 0, geo.GreatCircleNM(s.Location, r.centroids[0])
		for ri := 1; ri < RegionCount; ri++ {
			d := geo.GreatCircleNM(s.Location, r.centroids[ri])
			if d < bestDist {
				best, bestDist = ri, d
			}
		}
		r.extended[i] = best
	}
	return nil
}
