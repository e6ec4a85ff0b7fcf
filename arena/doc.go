// Package arena implements two index-addressed slab allocators: the label
// arena (dynamic-programming states) and the path-fragment arena (a
// reference-counted, tail-shared trie of partial paths). Both are
// clock-hand allocators: free slots self-identify via a reserved in-slot
// sentinel, allocation scans forward from a cursor, and the slab grows by
// 1.5x when free slots drop below 5%.
//
// Grounded in the original ClockArenaAllocator / LabelsArena / PathFragment
// reference-counting discipline
// (_examples/original_source/Solver/src/breitling/label_setting_breitling.h).
// Go has no pointer-invalidating realloc, but the design is kept index-only
// throughout: Get returns a pointer valid only until the next Alloc that
// triggers growth, matching the original's realloc-invalidation discipline
// one-for-one.
package arena
