package main

import (
	"fmt"
	"io"

	"github.com/ferrotap/torpedosched/pipeline"
	"github.com/ferrotap/torpedosched/solve"
)

// printMetrics renders the "Metrics output" block of spec.md §6, in
// the field order and labels of original_source/main.py's
// _print_solution helper.
func printMetrics(w io.Writer, result solve.Result) {
	fmt.Fprintf(w, "Torpedo count: %d\n", result.MaxTorpedoes)
	fmt.Fprintf(w, "Desulf time: %d\n", result.DesulfTime)
	fmt.Fprintf(w, "Total time: %d\n", result.TotalTime)
	fmt.Fprintf(w, "Conflicts: %v\n", conflictList(result.Conflicts))
	fmt.Fprintf(w, "Cost evaluation: %v\n", result.Cost)
	fmt.Fprintf(w, "Gain evaluation: %v\n", result.Gain)
}

func conflictList(c [pipeline.StateCount]int) []int {
	out := make([]int, len(c))
	for i, v := range c {
		out[i] = v
	}
	return out
}
