package search

import (
	"sort"

	"github.com/ferrotap/torpedosched/adjacency"
	"github.com/ferrotap/torpedosched/instance"
	"github.com/ferrotap/torpedosched/schedule"
)

// stackEntry is one level of the explicit backtracking stack: the BF
// committed at that level and the position in the level's converter's
// SortedList where that commitment was found.
type stackEntry struct {
	bfID          int
	feasibleIndex int
}

// engine owns every piece of mutable state touched by one Run call: the
// solution under construction, the explicit backtracking stack, and the
// static most-constrained-variable processing order. It is the
// non-recursive analogue of a depth-first search frame stack.
type engine struct {
	inst   *instance.Instance
	matrix adjacency.Matrix

	order      []int // sortedConverters: converter ids, ascending initial DomainSize
	posInOrder []int // posInOrder[converterID] = index into order

	solution []int
	stack    []stackEntry
}

// Run builds one BF-to-converter assignment by greedy forward-checking
// backtracking over converters ordered by ascending domain size, per
// spec.md §4.2. It mutates matrix's ScheduleMap state (DomainSize,
// CurrentIndex) and, when cluster widening fires, the MinEarlyArrival
// fields of inst's converter events — the sole place outside instance.New
// that the otherwise-immutable Instance is mutated after construction.
func Run(inst *instance.Instance, matrix adjacency.Matrix) ([]int, error) {
	e := newEngine(inst, matrix)
	return e.run()
}

func newEngine(inst *instance.Instance, matrix adjacency.Matrix) *engine {
	c := len(matrix)
	order := make([]int, c)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return matrix[order[i]].DomainSize < matrix[order[j]].DomainSize
	})

	posInOrder := make([]int, c)
	for pos, converterID := range order {
		posInOrder[converterID] = pos
	}

	stack := make([]stackEntry, c)
	for i := range stack {
		stack[i] = stackEntry{bfID: -1, feasibleIndex: -1}
	}

	solution := make([]int, len(inst.BFSchedules))
	for i := range solution {
		solution[i] = -1
	}

	return &engine{
		inst:       inst,
		matrix:     matrix,
		order:      order,
		posInOrder: posInOrder,
		solution:   solution,
		stack:      stack,
	}
}

func (e *engine) run() ([]int, error) {
	c := len(e.matrix)
	i := 0
	for i < c {
		k := e.order[i]
		mk := e.matrix[k]
		start := e.stack[i].feasibleIndex + 1

		nonPullable := 0
		foundIdx := -1
		for idx := start; idx < len(mk.SortedList); idx++ {
			s := mk.SortedList[idx]
			if e.solution[s.BFID] != -1 {
				continue
			}
			if !s.IsPullable {
				nonPullable++
				continue
			}
			if e.forwardCheck(i, s.BFID) {
				foundIdx = idx
				break
			}
		}

		if foundIdx >= 0 {
			s := mk.SortedList[foundIdx]
			e.solution[s.BFID] = k
			e.stack[i] = stackEntry{bfID: s.BFID, feasibleIndex: foundIdx}
			mk.CurrentIndex = foundIdx
			i++
			continue
		}

		if nonPullable > 0 {
			if err := e.widenCluster(i, k); err != nil {
				return nil, err
			}
			e.stack[i] = stackEntry{bfID: -1, feasibleIndex: -1}
			continue
		}

		// backtrack
		e.stack[i] = stackEntry{bfID: -1, feasibleIndex: -1}
		i--
		if i < 0 {
			return nil, ErrNoFeasibleSolution
		}
		prev := e.stack[i]
		e.solution[prev.bfID] = -1
		e.undoForwardCheck(i, prev.bfID)
	}

	return e.solution, nil
}

// forwardCheck tentatively constrains every not-yet-processed converter's
// domain against bfID. If any collapses to zero it undoes every
// constraint it just applied and reports failure.
func (e *engine) forwardCheck(i, bfID int) bool {
	c := len(e.matrix)
	touched := make([]int, 0, c-i-1)
	for j := i + 1; j < c; j++ {
		k2 := e.order[j]
		newSize := e.matrix[k2].ConstrainDomain(bfID)
		touched = append(touched, k2)
		if newSize == 0 {
			for _, t := range touched {
				e.matrix[t].UndoDomainConstraint(bfID)
			}
			return false
		}
	}
	return true
}

func (e *engine) undoForwardCheck(i, bfID int) {
	c := len(e.matrix)
	for j := i + 1; j < c; j++ {
		e.matrix[e.order[j]].UndoDomainConstraint(bfID)
	}
}

// widenCluster trades min_early_arrival slack from converter k to
// converter k+1, then rebuilds both ScheduleMaps and replays every
// commitment already on the stack against them, per spec.md §4.2 step 3.
func (e *engine) widenCluster(i, k int) error {
	if k+1 >= len(e.inst.ConverterSchedules) {
		return ErrClusterTooLong
	}
	if e.posInOrder[k+1] < i {
		// the next converter already has a committed, now-stale stack
		// entry; the two-element widening heuristic cannot reach back
		// to revise it.
		return ErrClusterTooLong
	}

	curr := &e.inst.ConverterSchedules[k]
	next := &e.inst.ConverterSchedules[k+1]
	if next.MinEarlyArrival != 0 {
		return ErrClusterTooLong
	}

	next.MinEarlyArrival = next.Time - curr.Time + e.inst.TTDesulfToConverter
	curr.MinEarlyArrival = 0

	e.rebuildConverter(k)
	e.rebuildConverter(k + 1)

	for j := 0; j < i; j++ {
		bfID := e.stack[j].bfID
		e.matrix[k].ConstrainDomain(bfID)
		e.matrix[k+1].ConstrainDomain(bfID)
	}
	return nil
}

func (e *engine) rebuildConverter(converterID int) {
	c := e.inst.ConverterSchedules[converterID]
	sparse := make([]*schedule.Schedule, len(e.inst.BFSchedules))
	for bi, bf := range e.inst.BFSchedules {
		sparse[bi] = schedule.Compute(e.inst, bf, c)
	}
	e.matrix[converterID] = schedule.NewScheduleMap(c.ID, sparse)
}
