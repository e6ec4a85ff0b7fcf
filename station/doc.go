// Package station defines the immutable data model shared by every solver in
// this module: Station, ProblemInstance, and the four-region partition
// (region.go) with its "extended region" nearest-centroid refinement used by
// the Ir pruning strategy (see labelsetting/explore.go).
//
// Region inequalities default to the original solver's continental-France
// half-planes (_examples/original_source/Solver/src/breitling/breitlingSolver.cpp,
// function isStationInMandatoryRegion) but are overridable via
// WithRegionPredicates, since the spec's synthetic test scenarios place
// stations on a toy grid the France inequalities would leave region-less.
package station
