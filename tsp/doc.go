// Package tsp is a thin boundary around a plain-vector Travelling Salesman
// Problem solver, kept deliberately small: nearest-neighbour construction
// followed by a deterministic first-improvement 2-opt local search.
//
// Everywhere else in this module treats the full catalogue tour (every
// station, once, no fuel/night/region constraint) as work for an external
// collaborator — labelsetting's budget-constrained search is the real
// planner. This package exists only so cmd/breitlingctl's "tsp-tour"
// subcommand has something to call; it does not attempt the exact
// (Held-Karp, branch-and-bound) or 1.5-approximate (Christofides) solvers a
// general-purpose TSP library would carry.
//
// # Algorithm
//
//   - NearestNeighbourTour builds a starting cycle greedily: from the
//     current vertex, hop to the closest unvisited one, until every vertex
//     has been visited once, then close back to the start.
//   - TwoOpt repeatedly looks for a crossing pair of edges whose swap
//     shortens the cycle (Δ = (a→c)+(b→d)-(a→b)-(c→d)) and applies the
//     first such improvement found, restarting the scan, until no
//     improving swap remains.
//
// # Determinism
//
// No randomness: NearestNeighbourTour scans candidates in index order and
// TwoOpt applies first-improvement moves in a fixed scan order. Costs are
// rounded to 1e-9 (round1e9) to avoid cross-platform floating-point drift.
package tsp
