// Package labelsetting implements the label-setting driver: the hard
// educative core of this module. It explores Label states (arena.Label)
// station by station, prunes via a lower bound (lowerbound.Tables) and
// domination, applies the regional pruning strategy during child
// generation, and reconstructs the best completed path found within a
// configurable time/iteration budget.
//
// Grounded in the original LabelSetting::run main loop
// (_examples/original_source/Solver/src/breitling/label_setting_breitling.h/.cpp),
// adapted to Go's cooperative-cancellation idiom: an atomic stop flag
// checked at iteration boundaries, no preemptive interruption.
package labelsetting
