package optimize

import (
	"github.com/ferrotap/torpedosched/pipeline"
	"github.com/ferrotap/torpedosched/schedule"
)

// interval is a half-open slot range an accept/reject check measures
// conflicts over.
type interval struct {
	start, end int
}

// measure snapshots conflict counts and max_torpedoes over every
// interval, in order.
func (e *engine) measure(ivs []interval) ([][pipeline.StateCount]int, []int) {
	conflicts := make([][pipeline.StateCount]int, len(ivs))
	maxT := make([]int, len(ivs))
	for i, iv := range ivs {
		conflicts[i], maxT[i] = e.tl.CountConflicts(iv.start, iv.end)
	}
	return conflicts, maxT
}

// notWorse reports whether after is an acceptable outcome relative to
// before: no interval's max_torpedoes increased, and no interval's
// per-state conflict count increased, per spec.md §4.4.
func notWorse(beforeConflicts, afterConflicts [][pipeline.StateCount]int, beforeMax, afterMax []int) bool {
	for i := range beforeConflicts {
		if afterMax[i] > beforeMax[i] {
			return false
		}
		for s := 0; s < pipeline.StateCount; s++ {
			if afterConflicts[i][s] > beforeConflicts[i][s] {
				return false
			}
		}
	}
	return true
}

// tryRegularSwap attempts swapping c1 from serving a to serving b,
// handing a off to b's current converter c2 in exchange, per spec.md
// §4.4's regular-swap case. Returns whether the move was accepted; the
// solution and timeline are mutated iff it was.
func (e *engine) tryRegularSwap(c1, a, b, c2 int, curr1, new1 *schedule.Schedule) bool {
	mk2 := e.matrix[c2]
	curr2 := mk2.SparseList[b]
	new2 := mk2.SparseList[a]
	if curr2 == nil || new2 == nil || !new2.IsPullable {
		return false
	}

	gain := (curr1.DesulfDuration - new1.DesulfDuration) + (curr2.DesulfDuration - new2.DesulfDuration)
	if gain <= 0 {
		return false
	}

	oldSegs1 := pipeline.ScheduleSegments(e.inst, curr1)
	newSegs1 := pipeline.ScheduleSegments(e.inst, new1)
	oldSegs2 := pipeline.ScheduleSegments(e.inst, curr2)
	newSegs2 := pipeline.ScheduleSegments(e.inst, new2)

	ivs := []interval{
		{curr1.StartTime, curr1.StartTime + pipeline.TotalDuration(oldSegs1)},
		{new1.StartTime, new1.StartTime + pipeline.TotalDuration(newSegs1)},
		{curr2.StartTime, curr2.StartTime + pipeline.TotalDuration(oldSegs2)},
		{new2.StartTime, new2.StartTime + pipeline.TotalDuration(newSegs2)},
	}

	beforeConflicts, beforeMax := e.measure(ivs)

	e.tl.Subtract(curr1.StartTime, oldSegs1)
	e.tl.Subtract(curr2.StartTime, oldSegs2)
	e.tl.Add(new1.StartTime, newSegs1)
	e.tl.Add(new2.StartTime, newSegs2)

	afterConflicts, afterMax := e.measure(ivs)

	if !notWorse(beforeConflicts, afterConflicts, beforeMax, afterMax) {
		e.tl.Subtract(new1.StartTime, newSegs1)
		e.tl.Subtract(new2.StartTime, newSegs2)
		e.tl.Add(curr1.StartTime, oldSegs1)
		e.tl.Add(curr2.StartTime, oldSegs2)
		return false
	}

	e.solution[a] = c2
	e.solution[b] = c1
	mk2.CurrentIndex = new2.Index
	return true
}

// tryEmergencySwap attempts pulling b off the emergency route onto c1,
// pushing a (c1's current BF) onto the emergency route instead, per
// spec.md §4.4's emergency-swap case.
func (e *engine) tryEmergencySwap(c1, a, b int, curr1, new1 *schedule.Schedule) bool {
	gain := curr1.DesulfDuration - new1.DesulfDuration
	if gain <= 0 {
		return false
	}

	startB, _ := e.inst.EmergencyInterval(b)
	startA, _ := e.inst.EmergencyInterval(a)
	emergSegs := pipeline.EmergencySegments(e.inst)

	oldSegs1 := pipeline.ScheduleSegments(e.inst, curr1)
	newSegs1 := pipeline.ScheduleSegments(e.inst, new1)

	ivs := []interval{
		{curr1.StartTime, curr1.StartTime + pipeline.TotalDuration(oldSegs1)},
		{new1.StartTime, new1.StartTime + pipeline.TotalDuration(newSegs1)},
		{startB, startB + pipeline.TotalDuration(emergSegs)},
		{startA, startA + pipeline.TotalDuration(emergSegs)},
	}

	beforeConflicts, beforeMax := e.measure(ivs)

	e.tl.Subtract(curr1.StartTime, oldSegs1)
	e.tl.Subtract(startB, emergSegs)
	e.tl.Add(new1.StartTime, newSegs1)
	e.tl.Add(startA, emergSegs)

	afterConflicts, afterMax := e.measure(ivs)

	if !notWorse(beforeConflicts, afterConflicts, beforeMax, afterMax) {
		e.tl.Subtract(new1.StartTime, newSegs1)
		e.tl.Subtract(startA, emergSegs)
		e.tl.Add(curr1.StartTime, oldSegs1)
		e.tl.Add(startB, emergSegs)
		return false
	}

	e.solution[a] = -1
	e.solution[b] = c1
	return true
}
