package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aerocircuit/breitling/labelsetting"
)

// bindSolverFlags registers the labelsetting.Options flags shared by solve
// and tour, with the same viper binding convention as bindFlightFlags.
func bindSolverFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Int("k", 0, "adjacency neighbour-list size (0 = adjacency.DefaultK)")
	flags.Int("min-stations", labelsetting.DefaultMinStations, "minimum distinct stations to visit")
	flags.Float64("max-duration", labelsetting.DefaultMaxDuration, "maximum total flight duration, hours")
	flags.Int("cache-capacity", 0, "best-labels cache capacity (0 = bestqueue.DefaultCapacity)")
	flags.Int64("seed", 1, "scoring RNG seed")
	flags.Int("max-iterations", 0, "main-loop iteration cap (0 = unlimited)")
	flags.Duration("max-search-time", 0, "wall-clock search budget (0 = unlimited)")

	for _, name := range []string{
		"k", "min-stations", "max-duration", "cache-capacity", "seed",
		"max-iterations", "max-search-time",
	} {
		key := "solver." + strings.ReplaceAll(name, "-", "_")
		_ = viper.BindPFlag(key, flags.Lookup(name))
	}
}

func loadSolverOptions() []labelsetting.Option {
	opts := []labelsetting.Option{
		labelsetting.WithMinStations(viper.GetInt("solver.min_stations")),
		labelsetting.WithMaxDuration(viper.GetFloat64("solver.max_duration")),
		labelsetting.WithSeed(viper.GetInt64("solver.seed")),
	}
	if k := viper.GetInt("solver.k"); k > 0 {
		opts = append(opts, labelsetting.WithK(k))
	}
	if c := viper.GetInt("solver.cache_capacity"); c > 0 {
		opts = append(opts, labelsetting.WithLabelCacheCapacity(c))
	}
	if n := viper.GetInt("solver.max_iterations"); n > 0 {
		opts = append(opts, labelsetting.WithMaxIterations(n))
	}
	if d := viper.GetDuration("solver.max_search_time"); d > 0 {
		opts = append(opts, labelsetting.WithMaxSearchTime(d))
	}
	return opts
}

// reportProgress is passed as labelsetting.WithOnImprovement when
// --verbose is set: it prints each tightening of the upper bound to stderr
// via the log.New(os.Stderr, ...) logger.
func reportProgress(logf func(string, ...interface{})) func(float64, int64) {
	return func(bestTime float64, elapsedMs int64) {
		logf("improved best time to %.3fh after %s", bestTime, time.Duration(elapsedMs)*time.Millisecond)
	}
}
