// Package lowerbound precomputes the two monotone-increasing tables used to
// bound the remaining flight time of a partial label: T_r, indexed by
// regions still to visit, and T_s, indexed by stations still to visit. Both
// are sums of the smallest pairwise time-distances available at
// construction time, so no exact pairwise distance beyond what
// adjacency.Index already holds is required at query time.
//
// Grounded in the original solver's LabelSetting constructor
// (_examples/original_source/Solver/src/breitling/label_setting_breitling.h,
// the m_minDistancePerRemainingRegionCount / m_minDistancePerRemainingStationCount
// blocks). The original's T_s computation reuses a bounded priority queue
// sized for R (4) entries while draining MIN_STATIONS (100) of them, a bug
// this package avoids by keeping the full sorted list of pairwise distances
// instead, preserving the monotonicity property exactly.
package lowerbound
