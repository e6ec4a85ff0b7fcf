package main

import (
	"fmt"
	"io"

	"github.com/aerocircuit/breitling/station"
)

// printPath writes one line per visited station, followed by a summary line,
// to w.
func printPath(w io.Writer, instance *station.ProblemInstance, path []int, totalTime float64) {
	if len(path) == 0 {
		fmt.Fprintln(w, "no feasible path found")
		return
	}
	for i, idx := range path {
		s := instance.Stations[idx]
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("station-%d", idx)
		}
		fmt.Fprintf(w, "%2d. %-20s (index %d)\n", i+1, name, idx)
	}
	fmt.Fprintf(w, "stations visited: %d, total time: %.3fh\n", len(path), totalTime)
}
