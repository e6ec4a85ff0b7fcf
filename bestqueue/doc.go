// Package bestqueue implements the bounded best-labels priority cache: at
// most C (label_index, label_score) entries kept in descending-score order,
// with refill-by-full-scan when the cache drains.
//
// Grounded in the original LabelsArena's m_bestLabels /
// SmallBoundedPriorityQueue
// (_examples/original_source/Solver/src/breitling/label_setting_breitling.h).
package bestqueue
