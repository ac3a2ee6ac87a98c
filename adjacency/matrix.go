// Package adjacency builds the full (BF, converter) feasibility matrix
// consumed by the search and optimizer, per spec.md §4.1.
package adjacency

import (
	"github.com/ferrotap/torpedosched/instance"
	"github.com/ferrotap/torpedosched/schedule"
)

// Matrix is one schedule.ScheduleMap per converter, indexed by
// converter id.
type Matrix []*schedule.ScheduleMap

// Build enumerates every (bf, converter) pair and records a
// schedule.ScheduleMap per converter. It is pure: called twice on the
// same Instance it returns structurally identical matrices, per
// spec.md §8 invariant 7.
func Build(inst *instance.Instance) Matrix {
	converterCount := len(inst.ConverterSchedules)
	bfCount := len(inst.BFSchedules)

	m := make(Matrix, converterCount)
	for ci, c := range inst.ConverterSchedules {
		sparse := make([]*schedule.Schedule, bfCount)
		for bi, bf := range inst.BFSchedules {
			sparse[bi] = schedule.Compute(inst, bf, c)
		}
		m[ci] = schedule.NewScheduleMap(c.ID, sparse)
	}
	return m
}
