package tsp

import "math"

// NearestNeighbourTour builds a closed tour over n vertices by greedily
// hopping from the current vertex to the nearest unvisited one, starting
// and ending at start.
//
// Complexity: O(n^2) time, O(n) space.
func NearestNeighbourTour(dist func(u, v int) float64, n int, start int) ([]int, error) {
	if n <= 0 {
		return nil, ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	visited := make([]bool, n)
	tour := make([]int, 0, n+1)

	cur := start
	visited[cur] = true
	tour = append(tour, cur)

	for len(tour) < n {
		best := -1
		bestDist := math.Inf(1)
		for v := 0; v < n; v++ {
			if visited[v] {
				continue
			}
			d := dist(cur, v)
			if d < bestDist {
				bestDist = d
				best = v
			}
		}
		if best == -1 {
			return nil, ErrDimensionMismatch
		}
		visited[best] = true
		tour = append(tour, best)
		cur = best
	}
	tour = append(tour, start)
	return tour, nil
}
