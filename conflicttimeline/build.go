package conflicttimeline

import (
	"github.com/ferrotap/torpedosched/adjacency"
	"github.com/ferrotap/torpedosched/instance"
	"github.com/ferrotap/torpedosched/pipeline"
)

// BuildFromSolution constructs a fresh Timeline reflecting every
// assignment in solution: solution[bfID] == -1 routes via the
// emergency pit; otherwise it names the serving converter id, whose
// Schedule is read from matrix.
func BuildFromSolution(inst *instance.Instance, solution []int, matrix adjacency.Matrix) *Timeline {
	t := New(inst)
	for bfID, converterID := range solution {
		if converterID == -1 {
			start, _ := inst.EmergencyInterval(bfID)
			t.Add(start, pipeline.EmergencySegments(inst))
			continue
		}
		s := matrix[converterID].SparseList[bfID]
		t.Add(s.StartTime, pipeline.ScheduleSegments(inst, s))
	}
	return t
}

// CountAll is CountConflicts over the Timeline's full slot range.
func (t *Timeline) CountAll() (conflicts [pipeline.StateCount]int, maxTorpedoes int) {
	return t.CountConflicts(0, len(t.Counts))
}
