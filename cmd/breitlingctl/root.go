package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	logger  = log.New(os.Stderr, "breitlingctl: ", 0)
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "breitlingctl",
		Short: "Breitling-cup flight planner",
		Long: "breitlingctl loads a station catalogue and plane parameters and plans\n" +
			"a flight that visits every mandatory region within the time and fuel\n" +
			"budget, either with the full label-setting search, the natural\n" +
			"heuristic alone, or both.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log search progress to stderr")

	cobra.OnInitialize(initConfig)

	root.AddCommand(newSolveCmd())
	root.AddCommand(newSeedCmd())
	root.AddCommand(newTourCmd())
	root.AddCommand(newTSPTourCmd())

	return root
}

// initConfig loads a YAML config file (if --config was given, or ./breitlingctl.yaml
// exists) and layers BREITLINGCTL_* environment variables over it, following
// the config.go / viper.ReadInConfig pattern of _examples/ChristopherRabotin-smd.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("breitlingctl")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("BREITLINGCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && cfgFile != "" {
			logger.Printf("could not read config file %s: %v", cfgFile, err)
		}
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
