package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ferrotap/torpedosched/internal/metrics"
	"github.com/ferrotap/torpedosched/resolve"
	"github.com/ferrotap/torpedosched/solve"
)

var metricsAddr string

var solveCmd = &cobra.Command{
	Use:   "solve <instance-file>",
	Short: "Search, hill-climb, and (if needed) repair conflicts, then report metrics",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus /metrics on this address")
}

func runSolve(cmd *cobra.Command, args []string) error {
	inst, err := readInstance(args[0])
	if err != nil {
		return err
	}

	if metricsAddr != "" {
		metrics.Serve(metricsAddr)
	}

	logger.Phase("finding initial solution")
	logger.Phase("optimizing solution")
	result, err := solve.Solve(inst)
	if err != nil {
		if errors.Is(err, resolve.ErrIrreparableConflict) || errors.Is(err, resolve.ErrInvariantViolation) {
			metrics.RecordResolverFailure()
		}
		return err
	}
	if result.Resolved {
		logger.Phase("resolving conflicts")
	}

	logger.Phase("evaluating solution")
	metrics.Record(metrics.Snapshot{
		TorpedoCount:     result.MaxTorpedoes,
		DesulfTime:       result.DesulfTime,
		TotalTime:        result.TotalTime,
		Cost:             result.Cost,
		Gain:             result.Gain,
		Conflicts:        result.Conflicts,
		OptimizerUpdates: result.Updates,
	})
	printMetrics(cmd.OutOrStdout(), result)
	return nil
}
