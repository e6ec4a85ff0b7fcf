package labelsetting

import (
	"errors"
	"time"
)

// Sentinel errors for the labelsetting package.
var (
	// ErrMinStationsExceedsCatalogue indicates Options.MinStations is larger
	// than the station catalogue, making a solution structurally impossible.
	ErrMinStationsExceedsCatalogue = errors.New("labelsetting: MinStations exceeds catalogue size")

	// ErrNonPositiveMinStations indicates Options.MinStations <= 0.
	ErrNonPositiveMinStations = errors.New("labelsetting: MinStations must be positive")

	// ErrNonPositiveMaxDuration indicates Options.MaxDuration <= 0.
	ErrNonPositiveMaxDuration = errors.New("labelsetting: MaxDuration must be positive")
)

// DefaultMinStations is MIN_STATIONS.
const DefaultMinStations = 100

// DefaultMaxDuration is MAX_DURATION, in hours.
const DefaultMaxDuration = 24.0

// Options configures a Solver, following this module's functional-options
// convention (as tsp.Options does).
type Options struct {
	// K is the adjacency index's neighbour-list size (adjacency.DefaultK if 0).
	K int

	// MinStations is MIN_STATIONS.
	MinStations int

	// MaxDuration is MAX_DURATION, in hours.
	MaxDuration float64

	// LabelCacheCapacity bounds the best-labels cache (bestqueue.Cache) and
	// doubles as the cap on concurrent explorable labels.
	LabelCacheCapacity int

	// InitialLabelArenaSize / InitialFragmentArenaSize seed the two arenas.
	InitialLabelArenaSize int
	InitialFragmentArenaSize int

	// Seed drives the scoring jitter's RNG, for reproducibility.
	Seed int64

	// ScoreStationWeight / ScoreTimeWeight are the scoring rule's
	// coefficients: score = w1*visited - w2*time + noise.
	ScoreStationWeight float64
	ScoreTimeWeight float64

	// MaxIterations caps the main loop (0 = unlimited).
	MaxIterations int

	// MaxSearchTime is an optional wall-clock budget; zero means unlimited.
	MaxSearchTime time.Duration

	// OnImprovement is invoked every time the upper bound tightens:
	// on_improvement(current_best_time, elapsed_ms).
	OnImprovement func(bestTime float64, elapsedMs int64)
}

// Option is a functional option for Options.
type Option func(*Options)

// WithK overrides the adjacency neighbour-list size.
func WithK(k int) Option { return func(o *Options) { o.K = k } }

// WithMinStations overrides MIN_STATIONS.
func WithMinStations(n int) Option { return func(o *Options) { o.MinStations = n } }

// WithMaxDuration overrides MAX_DURATION (hours).
func WithMaxDuration(h float64) Option { return func(o *Options) { o.MaxDuration = h } }

// WithLabelCacheCapacity overrides the best-labels cache capacity.
func WithLabelCacheCapacity(c int) Option { return func(o *Options) { o.LabelCacheCapacity = c } }

// WithSeed sets the scoring RNG seed.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithScoreWeights overrides the scoring rule's coefficients.
func WithScoreWeights(stationWeight, timeWeight float64) Option {
	return func(o *Options) {
		o.ScoreStationWeight = stationWeight
		o.ScoreTimeWeight = timeWeight
	}
}

// WithMaxIterations caps the main loop's iteration count.
func WithMaxIterations(n int) Option { return func(o *Options) { o.MaxIterations = n } }

// WithMaxSearchTime sets a wall-clock search budget.
func WithMaxSearchTime(d time.Duration) Option { return func(o *Options) { o.MaxSearchTime = d } }

// WithOnImprovement sets the progress callback.
func WithOnImprovement(cb func(bestTime float64, elapsedMs int64)) Option {
	return func(o *Options) { o.OnImprovement = cb }
}

// DefaultOptions mirrors tsp.DefaultOptions: sensible defaults for every
// field, ready to be adjusted with WithXxx options.
func DefaultOptions() Options {
	return Options{
		MinStations: DefaultMinStations,
		MaxDuration: DefaultMaxDuration,
		LabelCacheCapacity: 0, // bestqueue.DefaultCapacity
		InitialLabelArenaSize: 0, // arena.DefaultLabelArenaSize
		InitialFragmentArenaSize: 0, // arena.DefaultFragmentArenaSize
		Seed: 1,
		ScoreStationWeight: 1.0,
		ScoreTimeWeight: 0.3,
	}
}

func (o Options) validate(catalogueSize int) error {
	if o.MinStations <= 0 {
		return ErrNonPositiveMinStations
	}
	if o.MinStations > catalogueSize {
		return ErrMinStationsExceedsCatalogue
	}
	if o.MaxDuration <= 0 {
		return ErrNonPositiveMaxDuration
	}
	return nil
}
