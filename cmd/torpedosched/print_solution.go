package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ferrotap/torpedosched/solve"
	"github.com/ferrotap/torpedosched/torpedo"
)

var printSolutionCmd = &cobra.Command{
	Use:   "print-solution <instance-file>",
	Short: "Solve and emit one stage-boundary record per torpedo run",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrintSolution,
}

func runPrintSolution(cmd *cobra.Command, args []string) error {
	inst, err := readInstance(args[0])
	if err != nil {
		return err
	}

	_, runs, torpedoes, err := solve.PrintSolution(inst)
	if err != nil {
		return err
	}

	torpedoOf := make(map[*torpedo.Run]int, len(runs))
	for _, tp := range torpedoes {
		for _, run := range tp.Runs {
			torpedoOf[run] = tp.ID
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, filepath.Base(args[0]))
	fmt.Fprintln(out, "TeamsID=")
	fmt.Fprintf(out, "nbTorpedoes=%d\n", len(torpedoes))
	fmt.Fprintln(out)

	for _, run := range runs {
		fmt.Fprintln(out, formatRun(torpedoOf[run], run))
	}
	return nil
}

// formatRun renders one run's idTorpedo/idBF/idConverter and its ten
// stage-boundary timestamps, per spec.md §6's "Solution output
// (print_solution)" field list.
func formatRun(torpedoID int, run *torpedo.Run) string {
	b := run.Boundaries
	return fmt.Sprintf(
		"idTorpedo=%d idBF=%d idConverter=%d "+
			"startBF=%d endBF=%d startFullBuffer=%d endFullBuffer=%d "+
			"startDesulf=%d endDesulf=%d startConverter=%d endConverter=%d "+
			"startEmptyBuffer=%d endEmptyBuffer=%d",
		torpedoID, run.BFID, run.ConverterID,
		b.StartBF, b.EndBF, b.StartFullBuffer, b.EndFullBuffer,
		b.StartDesulf, b.EndDesulf, b.StartConverter, b.EndConverter,
		b.StartEmptyBuffer, b.EndEmptyBuffer,
	)
}
