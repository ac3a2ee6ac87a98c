package main

import (
	"github.com/spf13/cobra"

	"github.com/ferrotap/torpedosched/internal/metrics"
	"github.com/ferrotap/torpedosched/solve"
)

var initialSolutionCmd = &cobra.Command{
	Use:   "initial-solution <instance-file>",
	Short: "Run the forward-checking search alone and report metrics",
	Args:  cobra.ExactArgs(1),
	RunE:  runInitialSolution,
}

func runInitialSolution(cmd *cobra.Command, args []string) error {
	inst, err := readInstance(args[0])
	if err != nil {
		return err
	}

	logger.Phase("finding initial solution")
	result, err := solve.InitialSolution(inst)
	if err != nil {
		return err
	}

	logger.Phase("evaluating initial solution")
	metrics.Record(metrics.Snapshot{
		TorpedoCount: result.MaxTorpedoes,
		DesulfTime:   result.DesulfTime,
		TotalTime:    result.TotalTime,
		Cost:         result.Cost,
		Gain:         result.Gain,
		Conflicts:    result.Conflicts,
	})
	printMetrics(cmd.OutOrStdout(), result)
	return nil
}
