package solve

import (
	"github.com/ferrotap/torpedosched/adjacency"
	"github.com/ferrotap/torpedosched/conflicttimeline"
	"github.com/ferrotap/torpedosched/instance"
	"github.com/ferrotap/torpedosched/optimize"
	"github.com/ferrotap/torpedosched/pipeline"
	"github.com/ferrotap/torpedosched/resolve"
	"github.com/ferrotap/torpedosched/search"
	"github.com/ferrotap/torpedosched/torpedo"
)

// Result is one pipeline stage's outcome: the assignment, the matrix it
// was built against, and the evaluation numbers spec.md §6 requires
// every command past "parse" to report.
type Result struct {
	Solution []int
	Matrix   adjacency.Matrix

	Conflicts    [pipeline.StateCount]int
	MaxTorpedoes int

	DesulfTime int
	TotalTime  int
	Cost       float64
	Gain       float64

	// Updates is the number of hill-climbing swaps accepted; zero for
	// InitialSolution, which never optimizes.
	Updates int

	// Resolved reports whether the conflict resolver ran (and
	// succeeded) on this result, per original_source/main.py's solve
	// command, which only invokes it when an initial count finds
	// conflicts.
	Resolved bool
}

// InitialSolution builds the feasibility matrix and runs the
// forward-checking search alone, with no optimization or repair pass,
// mirroring original_source/main.py's initial_solution command.
func InitialSolution(inst *instance.Instance) (Result, error) {
	matrix := adjacency.Build(inst)
	solution, err := search.Run(inst, matrix)
	if err != nil {
		return Result{}, err
	}
	return evaluate(inst, matrix, solution, 0, false), nil
}

// Solve runs the search, hill-climbs the result, and — only if that
// leaves any conflicting slot — repairs the remaining two-way overlaps
// with resolve.Run and recounts, per original_source/main.py's solve
// command's "if sum(conflicts) > 0" guard.
func Solve(inst *instance.Instance) (Result, error) {
	matrix := adjacency.Build(inst)
	solution, err := search.Run(inst, matrix)
	if err != nil {
		return Result{}, err
	}

	opt := optimize.Run(inst, matrix, solution)
	solution = opt.Solution

	conflicts := opt.Conflicts
	maxTorpedoes := opt.MaxTorpedoes
	resolved := false

	if sumConflicts(conflicts) > 0 {
		if err := resolve.Run(inst, matrix, solution); err != nil {
			return Result{}, err
		}
		tl := conflicttimeline.BuildFromSolution(inst, solution, matrix)
		conflicts, maxTorpedoes = tl.CountAll()
		resolved = true
	}

	result := evaluate(inst, matrix, solution, opt.Updates, resolved)
	result.Conflicts = conflicts
	result.MaxTorpedoes = maxTorpedoes
	return result, nil
}

// PrintSolution runs Solve and additionally reconstructs the physical
// torpedo fleet behind the result, per original_source/main.py's
// print_solution command, which alone among the five needs per-run
// boundary timestamps and a fleet size rather than the peak-occupancy
// estimate.
func PrintSolution(inst *instance.Instance) (Result, []*torpedo.Run, []*torpedo.Torpedo, error) {
	result, err := Solve(inst)
	if err != nil {
		return Result{}, nil, nil, err
	}
	runs, torpedoes := torpedo.Build(inst, result.Matrix, result.Solution)
	return result, runs, torpedoes, nil
}

func sumConflicts(conflicts [pipeline.StateCount]int) int {
	total := 0
	for _, c := range conflicts {
		total += c
	}
	return total
}

// evaluate computes the desulf time, total time, cost, and gain numbers
// for a finished solution, per original_source/evaluator.py's
// calculate_desulf_time, calculate_total_time, evaluate_solution, and
// evaluate_gain.
func evaluate(inst *instance.Instance, matrix adjacency.Matrix, solution []int, updates int, resolved bool) Result {
	tl := conflicttimeline.BuildFromSolution(inst, solution, matrix)
	conflicts, maxTorpedoes := tl.CountAll()

	desulf := desulfTime(matrix, solution)
	total := totalTime(inst, matrix, solution)
	c := cost(inst, maxTorpedoes, desulf)
	g := gain(inst, c)

	return Result{
		Solution:     solution,
		Matrix:       matrix,
		Conflicts:    conflicts,
		MaxTorpedoes: maxTorpedoes,
		DesulfTime:   desulf,
		TotalTime:    total,
		Cost:         c,
		Gain:         g,
		Updates:      updates,
		Resolved:     resolved,
	}
}

func desulfTime(matrix adjacency.Matrix, solution []int) int {
	total := 0
	for bfID, converterID := range solution {
		if converterID == -1 {
			continue
		}
		total += matrix[converterID].SparseList[bfID].DesulfDuration
	}
	return total
}

func totalTime(inst *instance.Instance, matrix adjacency.Matrix, solution []int) int {
	total := 0
	for bfID, converterID := range solution {
		if converterID == -1 {
			total += inst.TTBFEmergencyPitToEmptyBuffer
			continue
		}
		total += matrix[converterID].SparseList[bfID].Duration
	}
	return total
}

// cost is torpedo_count + desulf_time / (4 * C * dur_desulf), per
// evaluate_solution. A degenerate instance with no converters or a zero
// desulf duration has no meaningful desulf-time term, so it is dropped
// rather than dividing by zero.
func cost(inst *instance.Instance, maxTorpedoes, desulf int) float64 {
	c := float64(maxTorpedoes)
	denom := 4 * len(inst.ConverterSchedules) * inst.DurDesulf
	if denom == 0 {
		return c
	}
	return c + float64(desulf)/float64(denom)
}

// gain is B + 1 - cost, per evaluate_gain.
func gain(inst *instance.Instance, cost float64) float64 {
	return float64(len(inst.BFSchedules)+1) - cost
}
