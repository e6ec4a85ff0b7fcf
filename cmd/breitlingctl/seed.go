package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aerocircuit/breitling/labelsetting"
	"github.com/aerocircuit/breitling/natural"
)

// newSeedCmd builds the "seed" subcommand: run the natural heuristic alone,
// the quick region-by-region march of package natural, without the
// label-setting search.
func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "run the natural heuristic alone",
		RunE: func(cmd *cobra.Command, args []string) error {
			instance, err := buildInstance(loadFlightConfig())
			if err != nil {
				return err
			}

			minStations := viper.GetInt("solver.min_stations")
			path, totalTime, err := natural.GreedySeed(instance, minStations)
			if err != nil && len(path) == 0 {
				return err
			}
			if err != nil && verbose {
				logger.Printf("heuristic stalled: %v", err)
			}

			printPath(cmd.OutOrStdout(), instance, path, totalTime)
			return nil
		},
	}
	bindFlightFlags(cmd)
	cmd.Flags().Int("min-stations", labelsetting.DefaultMinStations, "minimum distinct stations to visit")
	_ = viper.BindPFlag("solver.min_stations", cmd.Flags().Lookup("min-stations"))
	return cmd
}
