package main

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/aerocircuit/breitling/labelsetting"
)

// newSolveCmd builds the "solve" subcommand: run the label-setting search
// unseeded, the hard core of this module.
func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "run the full label-setting search",
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

			path, diag, err := solver.Solve(nil, math.Inf(1))
			if err != nil {
				return err
			}
			if verbose {
				logger.Printf("explored %d labels over %s (%d iterations)", diag.ExploredLabels, diag.Elapsed, diag.Iterations)
			}

			printPath(cmd.OutOrStdout(), instance, path, diag.BestTime)
			return nil
		},
	}
	bindFlightFlags(cmd)
	bindSolverFlags(cmd)
	return cmd
}
