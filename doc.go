// Package breitling computes near-optimal flight plans for the Breitling-cup
// long-distance touring problem: a tour of at least MinStations
// aerodromes, touching every mandatory region, respecting fuel and night-VFR
// constraints, found within a time/memory budget.
//
// The module is organized as a set of flat subpackages, each owning one
// layer of the solve:
//
//	geo/          — great-circle distance and time-distance conversion
//	station/      — station catalogue, problem instance, region model
//	adjacency/    — partial adjacency index (K-nearest neighbours + fuel fallback)
//	lowerbound/   — monotone lower-bound tables used to prune exploration
//	arena/        — label arena and path-fragment arena (clock-hand slabs)
//	bestqueue/    — bounded best-labels priority cache
//	natural/      — greedy heuristic seed solver, warms the upper bound
//	labelsetting/ — the label-setting driver: the hard core of this module
//	tsp/          — a separate touring solver (nearest neighbour + 2-opt),
//	                sharing the station data model but solving an
//	                unrelated problem (see tsp/doc.go)
//	catalogue/    — minimal CSV loading of a station catalogue
//	cmd/breitlingctl — command-line entry point
//
// Persisted state: none. The solver is pure compute; see labelsetting/doc.go
// for the concurrency and cancellation contract.
package breitling
