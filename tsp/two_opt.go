// Package tsp - 2-opt local search (symmetric only).
//
// TwoOpt performs deterministic first-improvement 2-opt on a closed tour:
// reverses segment [i..k] whenever that shortens the cycle.
// Δ = w(a,c) + w(b,d) - w(a,b) - w(c,d), with a=T[i-1], b=T[i], c=T[k], d=T[k+1].
//
// Design:
//   - Deterministic scanning order; no RNG.
//   - Soft time budget via opts.TimeLimit, checked periodically.
//   - Cost stabilized to 1e-9 via round1e9.
package tsp

import (
	"math"
	"time"
)

// TwoOpt runs deterministic first-improvement 2-opt starting from initTour.
// dist must be symmetric: station distances (great-circle / cruise speed)
// always are, so this package never carries an asymmetric branch.
func TwoOpt(dist func(u, v int) float64, initTour []int, opts Options) ([]int, float64, error) {
	if initTour == nil || len(initTour) < 2 {
		return nil, 0, ErrDimensionMismatch
	}
	n := len(initTour) - 1
	if n < 2 {
		return nil, 0, ErrDimensionMismatch
	}
	if err := ValidateTour(initTour, n, opts.StartVertex); err != nil {
		return nil, 0, err
	}

	cur := CopyTour(initTour)

	cost, err := tourCost(dist, cur)
	if err != nil {
		return nil, 0, err
	}

	eps := opts.Eps
	if eps < 0 {
		eps = 0
	}
	maxIters := opts.TwoOptMaxIters

	var (
		useDeadline bool
		deadline    time.Time
		step        int
	)
	if opts.TimeLimit > 0 {
		useDeadline = true
		deadline = time.Now().Add(opts.TimeLimit)
	}
	checkDeadline := func() bool {
		step++
		if !useDeadline || (step&2047) != 0 {
			return false
		}
		return time.Now().After(deadline)
	}

	accepted := 0
	for {
		improved := false

		for i := 1; i <= n-2; i++ {
			for k := i + 1; k <= n-1; k++ {
				a, b, c, d := cur[i-1], cur[i], cur[k], cur[k+1]

				wab := dist(a, b)
				wcd := dist(c, d)
				wac := dist(a, c)
				wbd := dist(b, d)

				if math.IsInf(wac, 0) || math.IsInf(wbd, 0) {
					continue
				}
				delta := (wac + wbd) - (wab + wcd)
				if delta >= -eps {
					continue
				}
				if err := reverseArcInPlace(cur, i, k); err != nil {
					return nil, 0, err
				}

				cost += delta
				accepted++
				improved = true

				if maxIters > 0 && accepted >= maxIters {
					_ = CanonicalizeOrientationInPlace(cur)
					return cur, round1e9(cost), nil
				}
				if checkDeadline() {
					return nil, 0, ErrTimeLimit
				}
				break
			}
			if improved {
				break
			}
		}

		if !improved {
			break
		}
	}

	_ = CanonicalizeOrientationInPlace(cur)
	if verr := ValidateTour(cur, n, opts.StartVertex); verr != nil {
		return nil, 0, verr
	}

	return cur, round1e9(cost), nil
}
