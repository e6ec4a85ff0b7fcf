// Package tsp - tour utilities shared by construction and local search.
//
// These operate purely on tour structure (index sequences), without
// depending on a distance representation.
package tsp

import "fmt"

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each vertex v in [0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		v := tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}
	return nil
}

// CanonicalizeOrientationInPlace fixes the tour direction under a fixed
// start. If the right neighbor tour[1] is lexicographically "worse" than
// the left neighbor tour[n-1], the interior segment [1..n-1] is reversed in
// place, yielding a unique canonical orientation for the same cyclic order.
//
// Complexity: O(n) time, O(1) space.
func CanonicalizeOrientationInPlace(tour []int) error {
	if len(tour) < 3 {
		return ErrDimensionMismatch
	}
	n := len(tour) - 1
	if tour[0] != tour[n] {
		return ErrDimensionMismatch
	}
	if tour[1] > tour[n-1] {
		return reverseArcInPlace(tour, 1, n-1)
	}
	return nil
}

// reverseArcInPlace reverses the inclusive segment tour[i..k] in place,
// keeping the closing vertex intact. The primitive used by 2-opt.
//
// Contracts: tour is closed (tour[0]==tour[n]); 1 <= i < k <= n-1.
//
// Complexity: O(k-i) time, O(1) space.
func reverseArcInPlace(tour []int, i, k int) error {
	n := len(tour) - 1
	if n < 2 {
		return ErrDimensionMismatch
	}
	if tour[0] != tour[n] {
		return ErrDimensionMismatch
	}
	if i < 1 || k > n-1 || i >= k {
		return ErrDimensionMismatch
	}
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
	return nil
}

// CopyTour returns an independent copy of the input tour slice.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)
	return out
}

// DebugString returns a compact printable representation for tests/debug,
// e.g. "[0 3 1 2 | 0]" where the vertical bar marks the closure.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	n := len(tour) - 1
	s := "["
	for i := 0; i < n; i++ {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d", tour[i])
	}
	s += " | "
	if n >= 0 {
		s += fmt.Sprintf("%d", tour[n])
	}
	s += "]"
	return s
}
