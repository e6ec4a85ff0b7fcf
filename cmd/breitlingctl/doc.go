// Command breitlingctl is the command-line driver of the Breitling-cup
// solver: it reads a station catalogue and plane/route parameters, then
// runs either the full label-setting search (solve), the natural heuristic
// alone (seed), or both in sequence (tour, seeding the search with the
// heuristic).
//
// Configuration layers a flag/env/file stack: a YAML config file
// (--config), environment variables (BREITLINGCTL_*), and command-line
// flags, in increasing priority, via github.com/spf13/viper. Subcommand
// dispatch and flag parsing use github.com/spf13/cobra.
package main
