// Package conflicttimeline implements the compact capacity-vector view
// of spec.md §4.3: a length-(L+1) array of StateCount-wide occupancy
// counters, with reversible add/subtract mutation and conflict/fleet-size
// counting over a slot range. It is the optimizer's scratch structure —
// owned exclusively by whichever pass is in progress and discarded at
// pass boundaries, per spec.md §5.
package conflicttimeline

import (
	"github.com/ferrotap/torpedosched/instance"
	"github.com/ferrotap/torpedosched/pipeline"
)

// Caps holds the per-state capacity ceiling. Emergency has no cap —
// it is excluded from conflict checks, per spec.md §4.3.
type Caps [pipeline.StateCount]int

// CapsFor derives the capacity vector from an instance's station
// capacities, per spec.md §4.3.
func CapsFor(inst *instance.Instance) Caps {
	var c Caps
	c[pipeline.TEmptyToBF] = 1
	c[pipeline.AtBF] = 1
	c[pipeline.TBFToFullBuffer] = 1
	c[pipeline.AtFullBuffer] = inst.NbSlotsFullBuffer
	c[pipeline.TFullToDesulf] = 1
	c[pipeline.AtDesulf] = inst.NbSlotsDesulf
	c[pipeline.TDesulfToConverter] = 1
	c[pipeline.AtConverter] = inst.NbSlotsConverter
	c[pipeline.TConverterToEmpty] = 1
	c[pipeline.Emergency] = 0 // unused: Emergency is excluded from conflict checks
	return c
}

// Counter is one slot's occupancy vector, indexed by pipeline.State.
type Counter [pipeline.StateCount]int

// Timeline is the compact conflict-vector timeline.
type Timeline struct {
	Caps   Caps
	Counts []Counter
}

// New allocates an empty Timeline sized to the instance's latest
// relevant slot.
func New(inst *instance.Instance) *Timeline {
	return &Timeline{
		Caps:   CapsFor(inst),
		Counts: make([]Counter, inst.LatestSlot()+1),
	}
}

// Add increments the occupancy counters for a segment sequence starting
// at startTime. Slots outside [0, len(Counts)) are silently skipped —
// this mirrors Python's list-comprehension timeline, which is always
// sized to cover every assignment derived from the same instance.
func (t *Timeline) Add(startTime int, segments []pipeline.Segment) {
	t.mutate(startTime, segments, 1)
}

// Subtract reverses an Add call with the same arguments. Paired
// Add/Subtract calls are the sole reversibility discipline this
// structure provides, per spec.md §5.
func (t *Timeline) Subtract(startTime int, segments []pipeline.Segment) {
	t.mutate(startTime, segments, -1)
}

func (t *Timeline) mutate(startTime int, segments []pipeline.Segment, delta int) {
	slot := startTime
	for _, seg := range segments {
		for i := 0; i < seg.Duration; i++ {
			if slot >= 0 && slot < len(t.Counts) {
				t.Counts[slot][seg.State] += delta
			}
			slot++
		}
	}
}

// CountConflicts reports, over the half-open slot range [start, end):
// the number of conflicting slots per state, and the maximum total
// torpedo occupancy (max_torpedoes) observed across the range.
func (t *Timeline) CountConflicts(start, end int) (conflicts [pipeline.StateCount]int, maxTorpedoes int) {
	if start < 0 {
		start = 0
	}
	if end > len(t.Counts) {
		end = len(t.Counts)
	}
	for slot := start; slot < end; slot++ {
		counter := t.Counts[slot]
		total := 0
		for s := 0; s < pipeline.StateCount; s++ {
			total += counter[s]
			if pipeline.State(s) == pipeline.Emergency {
				continue
			}
			if counter[s] > t.Caps[s] {
				conflicts[s]++
			}
		}
		if total > maxTorpedoes {
			maxTorpedoes = total
		}
	}
	return conflicts, maxTorpedoes
}
