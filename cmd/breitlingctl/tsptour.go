package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aerocircuit/breitling/tsp"
)

// newTSPTourCmd builds the "tsp-tour" subcommand: a Hamiltonian-cycle tour
// of the entire catalogue via the nearest-neighbour plus 2-opt heuristic of
// package tsp, a different computation from solve/tour (no MinStations threshold,
// no region or fuel constraint — every station, once).
func newTSPTourCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tsp-tour",
		Short: "run a classic TSP tour over the full catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			instance, err := buildInstance(loadFlightConfig())
			if err != nil {
				return err
			}

			result, ids, err := tsp.SolveStations(instance, tsp.DefaultOptions())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, v := range result.Tour {
				fmt.Fprintf(w, "%2d. %s\n", i+1, ids[v])
			}
			fmt.Fprintf(w, "tour cost: %.3fh\n", result.Cost)
			return nil
		},
	}
	bindFlightFlags(cmd)
	return cmd
}
