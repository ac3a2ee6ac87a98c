// Package torpedosched implements a blast-furnace-to-converter torpedo
// scheduling engine for a steelmaking plant.
//
// Given a dated list of blast-furnace (BF) taps and a dated list of
// converter (C) charge windows, the engine assigns each BF tap to a
// converter, choosing which torpedo runs transport the molten iron
// through the plant's fixed pipeline: empty buffer -> BF -> full
// buffer -> desulfurization -> converter -> empty buffer. It finds a
// feasible initial assignment by forward-checking backtracking search,
// improves it by hill-climbing pairwise swaps, repairs any remaining
// single-capacity transit-corridor conflicts, and reconstructs the
// physical torpedo fleet that served the result.
//
// The pipeline stages live under their own packages:
//
//	instance/          immutable problem description
//	instanceio/        line-oriented text format parser/formatter
//	schedule/          per-(BF,converter) feasible trip records
//	adjacency/         the full feasibility matrix
//	pipeline/          the nine-state per-trip occupancy model
//	conflicttimeline/  compact capacity-vector conflict counting
//	search/            initial-solution forward-checking search
//	optimize/          hill-climbing local search
//	resolve/           transit-corridor conflict repair
//	torpedo/           physical fleet reconstruction
//	solve/             orchestrates the above into one call per command
//
// cmd/torpedosched is the command-line entry point; internal/telemetry
// and internal/metrics are its logging and Prometheus ambient stack.
package torpedosched
