// Package natural implements the greedy "natural" seeding heuristic: march
// from the departure station toward the centroid of the nearest unvisited
// mandatory region, always stepping to the nearest feasible aerodrome,
// until a station count is reached.
//
// Grounded in the original NaturalBreitlingSolver
// (_examples/original_source/Solver/src/breitling/breitlingnatural.cpp):
// same region-centroid target list, same linear interpolation toward an
// "ideal next position", same nearest-accessible-station selection. Unlike
// the original, nearestAccessible here actually enforces the fuel and
// night-accessibility constraints the original left as a TODO.
//
// The heuristic gives the label-setting search (package labelsetting) an
// upper bound to seed with: a bad heuristic result only costs some extra
// pruning, never correctness.
package natural
