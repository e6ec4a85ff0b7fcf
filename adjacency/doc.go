// Package adjacency builds the partial adjacency index: for
// every station, the K nearest neighbours in time-distance (excluding the
// station itself and the designated target), the distance to the nearest
// fuel-capable station, and the distance to the target.
//
// Grounded in the original PartialAdjencyMatrix
// (_examples/original_source/Solver/src/breitling/label_setting_breitling.h):
// same K-nearest-plus-fuel-fallback construction, same O(N²) build pass, same
// guarantee that every neighbour list contains at least one fuel-capable
// station.
package adjacency
