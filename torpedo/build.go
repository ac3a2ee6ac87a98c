package torpedo

import (
	"github.com/ferrotap/torpedosched/adjacency"
	"github.com/ferrotap/torpedosched/instance"
	"github.com/ferrotap/torpedosched/pipeline"
)

// Build threads a solution through a small pool of torpedoes, per
// spec.md §4.6. BFs are visited in id order, which is time order per
// instance.New's validation, so a torpedo's runs are always assigned
// in the order they occur. Fleet size is len(torpedoes).
func Build(inst *instance.Instance, matrix adjacency.Matrix, solution []int) (runs []*Run, torpedoes []*Torpedo) {
	runs = make([]*Run, 0, len(solution))

	for bfID, converterID := range solution {
		run := buildRun(inst, matrix, bfID, converterID)
		runs = append(runs, run)

		tp := findIdle(torpedoes, run.Start)
		if tp == nil {
			tp = &Torpedo{ID: len(torpedoes)}
			torpedoes = append(torpedoes, tp)
		} else {
			last := tp.Runs[len(tp.Runs)-1]
			last.Boundaries.EndEmptyBuffer = run.Start
		}
		tp.Runs = append(tp.Runs, run)
	}

	latest := inst.LatestSlot()
	for _, tp := range torpedoes {
		last := tp.Runs[len(tp.Runs)-1]
		last.Boundaries.EndEmptyBuffer = latest
	}

	return runs, torpedoes
}

// findIdle returns the first torpedo whose current run has already
// begun its return to the empty buffer by newStart, or nil if the
// pool holds no such torpedo.
func findIdle(torpedoes []*Torpedo, newStart int) *Torpedo {
	for _, tp := range torpedoes {
		last := tp.Runs[len(tp.Runs)-1]
		if last.Boundaries.StartEmptyBuffer <= newStart {
			return tp
		}
	}
	return nil
}

func buildRun(inst *instance.Instance, matrix adjacency.Matrix, bfID, converterID int) *Run {
	if converterID < 0 {
		return buildEmergencyRun(inst, bfID)
	}

	s := matrix[converterID].SparseList[bfID]
	b := pipeline.Boundaries(inst, s)
	return &Run{
		BFID:        bfID,
		ConverterID: converterID,
		Start:       s.StartTime,
		Boundaries:  b,
	}
}

func buildEmergencyRun(inst *instance.Instance, bfID int) *Run {
	start, end := inst.EmergencyInterval(bfID)
	endBF := start + inst.TTEmptyToBF + inst.DurBF

	return &Run{
		BFID:        bfID,
		ConverterID: -1,
		Start:       start,
		Boundaries: pipeline.StageBoundaries{
			StartBF:          start + inst.TTEmptyToBF,
			EndBF:            endBF,
			StartEmptyBuffer: endBF,
			EndEmptyBuffer:   end,
		},
	}
}
