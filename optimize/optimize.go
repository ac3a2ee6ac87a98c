// Package optimize implements the pairwise-swap hill-climbing local
// search of spec.md §4.4: it reduces total desulf duration without ever
// worsening a per-state conflict count or the fleet-size estimate. It is
// grounded on tsp.twoOpt's local-search move generation and
// accept/reject-by-objective-delta shape, and on tsp.bbEngine's pattern
// of a dedicated engine struct owning all search state instead of
// closures, here adapted to a conflict-feasibility gate in place of a
// tour-length bound.
package optimize

import (
	"github.com/ferrotap/torpedosched/adjacency"
	"github.com/ferrotap/torpedosched/conflicttimeline"
	"github.com/ferrotap/torpedosched/instance"
	"github.com/ferrotap/torpedosched/pipeline"
)

// Result reports the optimizer's outcome: the (mutated in place)
// solution, how many moves were accepted, and the final conflict
// picture.
type Result struct {
	Solution     []int
	Updates      int
	Conflicts    [pipeline.StateCount]int
	MaxTorpedoes int
}

// Run hill-climbs solution in place by repeated pairwise swaps, per
// spec.md §4.4's doubling-lookahead search schedule. matrix's
// ScheduleMap.CurrentIndex fields are advanced on every accepted move.
func Run(inst *instance.Instance, matrix adjacency.Matrix, solution []int) Result {
	lookaheadCap := len(solution) - 1
	if lookaheadCap > 32 {
		lookaheadCap = 32
	}
	if lookaheadCap < 1 {
		tl := conflicttimeline.BuildFromSolution(inst, solution, matrix)
		conflicts, maxT := tl.CountAll()
		return Result{Solution: solution, Conflicts: conflicts, MaxTorpedoes: maxT}
	}

	tl := conflicttimeline.BuildFromSolution(inst, solution, matrix)
	e := &engine{inst: inst, matrix: matrix, solution: solution, tl: tl}

	lookahead := 1
	totalUpdates := 0
	for {
		updates := 0
		for c1 := range matrix {
			if e.tryAdvance(c1, lookahead) {
				updates++
				totalUpdates++
			}
		}
		if updates > 0 {
			continue
		}
		if lookahead >= lookaheadCap {
			break
		}
		lookahead *= 2
		if lookahead > lookaheadCap {
			lookahead = lookaheadCap
		}
	}

	conflicts, maxT := tl.CountAll()
	return Result{Solution: solution, Updates: totalUpdates, Conflicts: conflicts, MaxTorpedoes: maxT}
}

type engine struct {
	inst     *instance.Instance
	matrix   adjacency.Matrix
	solution []int
	tl       *conflicttimeline.Timeline
}

// tryAdvance scans converter c1's sorted domain from CurrentIndex+1 to
// CurrentIndex+1+lookahead for the first accepted swap, advancing
// CurrentIndex on success.
func (e *engine) tryAdvance(c1, lookahead int) bool {
	mk := e.matrix[c1]
	if mk.CurrentIndex < 0 || len(mk.SortedList) == 0 {
		return false
	}

	curr1 := mk.SortedList[mk.CurrentIndex]
	a := curr1.BFID

	start := mk.CurrentIndex + 1
	end := mk.CurrentIndex + 1 + lookahead
	for pos := start; pos <= end && pos < len(mk.SortedList); pos++ {
		new1 := mk.SortedList[pos]
		b := new1.BFID
		if b == a {
			continue
		}
		if new1.DesulfDuration >= curr1.DesulfDuration {
			continue
		}
		if !new1.IsPullable {
			continue
		}

		c2 := e.solution[b]
		var ok bool
		if c2 >= 0 {
			ok = e.tryRegularSwap(c1, a, b, c2, curr1, new1)
		} else {
			ok = e.tryEmergencySwap(c1, a, b, curr1, new1)
		}
		if ok {
			mk.CurrentIndex = pos
			return true
		}
	}
	return false
}
