package labelsetting

import (
	"math/rand"

	"github.com/aerocircuit/breitling/arena"
)

// scoreJitterScale bounds the random tie-breaking noise added once an upper
// bound is known, small enough never to invert the ordering between labels
// that differ by a whole station or a meaningful time delta.
const scoreJitterScale = 1e-3

// scoreLabel computes exploration priority:
//
// score = visited_station_count * ScoreStationWeight
// - ScoreTimeWeight * current_time
// + noise
//
// noise is drawn from rng and added only once hasUpperBound is true, to
// diversify otherwise score-tied labels. The result always lies
// strictly above arena.MinScore given realistic time magnitudes.
func scoreLabel(l *arena.Label, opts Options, rng *rand.Rand, hasUpperBound bool) float64 {
	score := float64(l.VisitedStationCount)*opts.ScoreStationWeight - opts.ScoreTimeWeight*l.CurrentTime
	if hasUpperBound && rng != nil {
		score += rng.Float64() * scoreJitterScale
	}
	return score
}
