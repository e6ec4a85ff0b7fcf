package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aerocircuit/breitling/catalogue"
	"github.com/aerocircuit/breitling/station"
)

// flightConfig is the viper-backed configuration every subcommand shares:
// the station catalogue plus the plane/route parameters of
// station.ProblemInstance.
type flightConfig struct {
	CataloguePath string

	DepartureStation int
	TargetStation    int // station.NoTarget if unset

	CruiseSpeed   float64
	FuelCapacity  float64
	FuelBurnRate  float64
	RefuelTime    float64
	DayStart      float64
	NightStart    float64
	DepartureTime float64
}

// bindFlightFlags registers the flags flightConfig reads, on cmd, and binds
// each to its viper key so that a YAML config file or BREITLINGCTL_* env var
// of the same name can supply the value instead (cobra flags still win when
// explicitly set, following viper's usual layering).
func bindFlightFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("catalogue", "", "path to a station catalogue CSV (required)")
	flags.Int("departure", 0, "index of the departure station")
	flags.Int("target", station.NoTarget, "index of a fixed target station, or -1 for none")
	flags.Float64("cruise-speed", 120, "plane cruise speed, knots")
	flags.Float64("fuel-capacity", 0, "plane fuel endurance, hours (required)")
	flags.Float64("fuel-burn-rate", 1, "fuel burn rate, units/hour")
	flags.Float64("refuel-time", 0.25, "ground time spent refuelling, hours")
	flags.Float64("day-start", 6, "start of the flyable day, hours")
	flags.Float64("night-start", 21, "start of the night curfew, hours")
	flags.Float64("departure-time", 8, "departure clock time, hours")

	for _, name := range []string{
		"catalogue", "departure", "target", "cruise-speed", "fuel-capacity",
		"fuel-burn-rate", "refuel-time", "day-start", "night-start", "departure-time",
	} {
		key := "flight." + strings.ReplaceAll(name, "-", "_")
		_ = viper.BindPFlag(key, flags.Lookup(name))
	}
}

func loadFlightConfig() flightConfig {
	return flightConfig{
		CataloguePath:    viper.GetString("flight.catalogue"),
		DepartureStation: viper.GetInt("flight.departure"),
		TargetStation:    viper.GetInt("flight.target"),
		CruiseSpeed:      viper.GetFloat64("flight.cruise_speed"),
		FuelCapacity:     viper.GetFloat64("flight.fuel_capacity"),
		FuelBurnRate:     viper.GetFloat64("flight.fuel_burn_rate"),
		RefuelTime:       viper.GetFloat64("flight.refuel_time"),
		DayStart:         viper.GetFloat64("flight.day_start"),
		NightStart:       viper.GetFloat64("flight.night_start"),
		DepartureTime:    viper.GetFloat64("flight.departure_time"),
	}
}

// buildInstance loads the station catalogue named by cfg.CataloguePath and
// assembles a station.ProblemInstance from cfg's plane/route parameters.
func buildInstance(cfg flightConfig) (*station.ProblemInstance, error) {
	if cfg.CataloguePath == "" {
		return nil, fmt.Errorf("breitlingctl: --catalogue is required")
	}
	f, err := os.Open(cfg.CataloguePath)
	if err != nil {
		return nil, fmt.Errorf("breitlingctl: open catalogue: %w", err)
	}
	defer f.Close()

	stations, err := catalogue.LoadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("breitlingctl: load catalogue: %w", err)
	}

	var opts []station.Option
	if cfg.TargetStation != station.NoTarget {
		opts = append(opts, station.WithTarget(cfg.TargetStation))
	}

	instance, err := station.New(stations, cfg.DepartureStation, cfg.CruiseSpeed,
		cfg.FuelCapacity, cfg.FuelBurnRate, cfg.RefuelTime, cfg.DayStart,
		cfg.NightStart, cfg.DepartureTime, opts...)
	if err != nil {
		return nil, fmt.Errorf("breitlingctl: build instance: %w", err)
	}
	return instance, nil
}
