package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aerocircuit/breitling/labelsetting"
	"github.com/aerocircuit/breitling/natural"
)

// newTourCmd builds the "tour" subcommand: warm-start the label-setting
// search with the natural heuristic's path, a combination whose effect
// shows up under Diagnostics.SeedUsed.
func newTourCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "tour",
		Short: "seed the label-setting search with the natural heuristic",
		RunE: func(cmd *cobra.Command, args []string) error {
			instance, err := buildInstance(loadFlightConfig())
			if err != nil {
				return err
			}

			opts := loadSolverOptions()
			if verbose {
				opts = append(opts, labelsetting.WithOnImprovement(reportProgress(logger.Printf)))
			}

			solver, err := labelsetting.NewSolver(instance, opts...)
			if err != nil {
				return err
			}

			minStations := viper.GetInt("solver.min_stations")
			seedPath, seedTime, seedErr := natural.GreedySeed(instance, minStations)
			if seedErr != nil {
				if verbose {
					logger.Printf("heuristic seed stalled: %v", seedErr)
				}
				seedPath = nil
			}

			path, diag, err := solver.Solve(seedPath, seedTime)
			if err != nil {
				return err
			}
			if verbose {
				logger.Printf("seed used: %v, explored %d labels over %s", diag.SeedUsed, diag.ExploredLabels, diag.Elapsed)
			}

			printPath(cmd.OutOrStdout(), instance, path, diag.BestTime)
			return nil
		},
	}
	bindFlightFlags(cmd)
	bindSolverFlags(cmd)
	return cmd
}
