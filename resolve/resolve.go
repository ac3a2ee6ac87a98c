package resolve

import (
	"github.com/ferrotap/torpedosched/adjacency"
	"github.com/ferrotap/torpedosched/instance"
	"github.com/ferrotap/torpedosched/pipeline"
	"github.com/ferrotap/torpedosched/schedule"
)

// Run mutates the BufferDuration and ConverterEarlyArrival fields of
// every Schedule along a non-emergency assignment in solution, resolving
// every two-way T_FULL_TO_DESULF overlap it finds. It returns
// ErrInvariantViolation on a three-way overlap and ErrIrreparableConflict
// when no schedule holds enough slack to absorb an overlap.
func Run(inst *instance.Instance, matrix adjacency.Matrix, solution []int) error {
	timeline := buildTimeline(inst, matrix, solution)

	currentBF := -1
	currentCount := 0

	for t := 0; t < len(timeline.Slots); t++ {
		occ := timeline.Occupants(t, pipeline.TFullToDesulf)
		switch len(occ) {
		case 0:
			currentBF, currentCount = -1, 0
		case 1:
			if occ[0] == currentBF {
				currentCount++
			} else {
				currentBF, currentCount = occ[0], 1
			}
		case 2:
			cur := currentBF
			if cur != occ[0] && cur != occ[1] {
				cur = occ[0]
			}
			other := occ[0]
			if other == cur {
				other = occ[1]
			}

			delta := inst.TTFullBufferToDesulf - currentCount
			curSched := scheduleForBF(matrix, solution, cur)
			otherSched := scheduleForBF(matrix, solution, other)

			switch {
			case curSched.BufferDuration >= delta:
				curSched.BufferDuration -= delta
				curSched.ConverterEarlyArrival += delta
			case otherSched.BufferDuration >= inst.TTFullBufferToDesulf+delta:
				abs := inst.TTFullBufferToDesulf + delta
				otherSched.BufferDuration -= abs
				otherSched.ConverterEarlyArrival += abs
			default:
				return ErrIrreparableConflict
			}

			timeline = buildTimeline(inst, matrix, solution)
			currentBF, currentCount = -1, 0
			t += delta - 1
		default:
			return ErrInvariantViolation
		}
	}
	return nil
}

func scheduleForBF(matrix adjacency.Matrix, solution []int, bfID int) *schedule.Schedule {
	return matrix[solution[bfID]].SparseList[bfID]
}

func buildTimeline(inst *instance.Instance, matrix adjacency.Matrix, solution []int) *pipeline.DetailedTimeline {
	tl := pipeline.NewDetailedTimeline(inst)
	for bfID, converterID := range solution {
		if converterID < 0 {
			continue
		}
		s := matrix[converterID].SparseList[bfID]
		tl.Place(bfID, s.StartTime, pipeline.ScheduleSegments(inst, s))
	}
	return tl
}
