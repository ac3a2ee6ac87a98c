// Package schedule models the per-(BF,converter) feasible trip record
// (Schedule) and the per-converter sorted domain of feasible BFs
// (ScheduleMap) described in spec.md §3-4.1.
package schedule

import (
	"sort"

	"github.com/ferrotap/torpedosched/instance"
)

// Schedule caches a feasible torpedo trip for one (bf, converter) pair.
// Everything is immutable after Compute except BufferDuration and
// ConverterEarlyArrival, which the conflict resolver (package resolve)
// mutates in place — see spec.md §9 "Mutable state in Schedule".
type Schedule struct {
	BFID        int
	ConverterID int

	StartTime int
	EndTime   int
	Duration  int

	DesulfDuration   int
	DesulfEfficiency int

	// BufferDuration is the slack held at the full buffer. The resolver
	// may decrement it; Duration is not re-derived after mutation, per
	// spec.md §9, because it does not depend on BufferDuration.
	BufferDuration int

	ConverterDepartDelay   int
	ConverterEarlyArrival  int

	IsPullable bool

	// Index is this Schedule's position in its owning ScheduleMap's
	// SortedList, set by NewScheduleMap.
	Index int
}

// Compute derives the feasible Schedule for one (bf, converter) pair, or
// nil if the pair is infeasible. Infeasibility is a normal cell value,
// not an error, per spec.md §4.1.
func Compute(inst *instance.Instance, bf instance.BFEvent, c instance.ConverterEvent) *Schedule {
	if c.Time < bf.Time {
		return nil
	}

	desulfSteps := bf.SulfurLevel - c.MaxSulfurLevel
	desulfDuration := desulfSteps * inst.DurDesulf
	if desulfDuration < 0 {
		desulfDuration = 0
	}
	desulfEfficiency := -desulfSteps
	if desulfEfficiency > 0 {
		desulfEfficiency = 0
	}

	bufferArrival := bf.Time + inst.DurBF + inst.TTBFToFullBuffer
	desulfOverhead := inst.TTFullBufferToDesulf + desulfDuration + inst.TTDesulfToConverter
	bufferDuration := c.EffectiveTime() - desulfOverhead - bufferArrival
	if bufferDuration < 0 {
		return nil
	}

	startTime := bf.Time - inst.TTEmptyToBF
	endTime := c.Time + inst.DurConverter + inst.TTConverterToEmptyBuffer + c.DepartDelay

	return &Schedule{
		BFID:                  bf.ID,
		ConverterID:           c.ID,
		StartTime:             startTime,
		EndTime:               endTime,
		Duration:              endTime - startTime,
		DesulfDuration:        desulfDuration,
		DesulfEfficiency:      desulfEfficiency,
		BufferDuration:        bufferDuration,
		ConverterDepartDelay:  c.DepartDelay,
		ConverterEarlyArrival: 0,
		IsPullable:            bufferDuration > 0,
	}
}

// ScheduleMap holds every feasible Schedule for one converter, indexed
// sparsely by BF id, plus the dense SortedList the search and optimizer
// iterate over.
type ScheduleMap struct {
	ConverterID int

	// SparseList[bfID] is nil when that pair is infeasible.
	SparseList []*Schedule

	// SortedList is the non-nil subset of SparseList ordered by
	// (Duration asc, DesulfEfficiency asc) — shortest trip first,
	// ties broken by more negative efficiency first, i.e. toward the
	// entry that needs more desulfurization steps.
	SortedList []*Schedule

	// DomainSize is the number of entries in SortedList not yet
	// claimed by forward checking. It never goes negative.
	DomainSize int

	// CurrentIndex is the position in SortedList currently assigned to
	// this converter by the search or optimizer.
	CurrentIndex int
}

// NewScheduleMap builds the sorted domain from a sparse per-BF list.
func NewScheduleMap(converterID int, sparse []*Schedule) *ScheduleMap {
	sorted := make([]*Schedule, 0, len(sparse))
	for _, s := range sparse {
		if s != nil {
			sorted = append(sorted, s)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Duration != sorted[j].Duration {
			return sorted[i].Duration < sorted[j].Duration
		}
		return sorted[i].DesulfEfficiency < sorted[j].DesulfEfficiency
	})
	for i, s := range sorted {
		s.Index = i
	}

	return &ScheduleMap{
		ConverterID:  converterID,
		SparseList:   sparse,
		SortedList:   sorted,
		DomainSize:   len(sorted),
		CurrentIndex: -1,
	}
}

// ConstrainDomain narrows the domain because bfID was claimed
// elsewhere, decrementing DomainSize only when bfID is actually
// feasible for this converter. It never drives DomainSize below zero.
func (m *ScheduleMap) ConstrainDomain(bfID int) int {
	if m.SparseList[bfID] != nil {
		if m.DomainSize > 0 {
			m.DomainSize--
		}
	}
	return m.DomainSize
}

// UndoDomainConstraint reverses ConstrainDomain for the same bfID. It
// is a no-op when bfID was never feasible for this converter, mirroring
// ConstrainDomain's guard — see spec.md §9.
func (m *ScheduleMap) UndoDomainConstraint(bfID int) int {
	if m.SparseList[bfID] != nil {
		m.DomainSize++
	}
	return m.DomainSize
}
