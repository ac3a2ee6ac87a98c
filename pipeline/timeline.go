package pipeline

import (
	"github.com/ferrotap/torpedosched/instance"
	"github.com/ferrotap/torpedosched/schedule"
)

// Entry is one torpedo's occupancy of one time slot.
type Entry struct {
	BFID  int
	State State
}

// DetailedTimeline is the per-slot list of (bf_id, state) pairs, per
// spec.md §3 "Timeline", representation (i). It is rebuilt on demand
// from a solution; nothing in the engine mutates it in place.
type DetailedTimeline struct {
	Slots [][]Entry
}

// NewDetailedTimeline allocates an empty timeline sized to the
// instance's latest relevant slot.
func NewDetailedTimeline(inst *instance.Instance) *DetailedTimeline {
	return &DetailedTimeline{Slots: make([][]Entry, inst.LatestSlot()+1)}
}

// Place records bfID as occupying the given segment sequence starting
// at startTime.
func (t *DetailedTimeline) Place(bfID, startTime int, segments []Segment) {
	slot := startTime
	for _, seg := range segments {
		for i := 0; i < seg.Duration; i++ {
			if slot >= 0 && slot < len(t.Slots) {
				t.Slots[slot] = append(t.Slots[slot], Entry{BFID: bfID, State: seg.State})
			}
			slot++
		}
	}
}

// Occupants returns the BF ids occupying the given state at slot t.
func (t *DetailedTimeline) Occupants(slot int, state State) []int {
	if slot < 0 || slot >= len(t.Slots) {
		return nil
	}
	var ids []int
	for _, e := range t.Slots[slot] {
		if e.State == state {
			ids = append(ids, e.BFID)
		}
	}
	return ids
}

// StageBoundaries are the ten stage-boundary timestamps spec.md §6
// requires print_solution to emit for a single (non-emergency) run.
type StageBoundaries struct {
	StartBF, EndBF                     int
	StartFullBuffer, EndFullBuffer     int
	StartDesulf, EndDesulf             int
	StartConverter, EndConverter       int
	StartEmptyBuffer, EndEmptyBuffer   int
}

// Boundaries computes the ten stage boundaries for a Schedule by
// walking its segment sequence cumulatively from s.StartTime.
func Boundaries(inst *instance.Instance, s *schedule.Schedule) StageBoundaries {
	segs := ScheduleSegments(inst, s)
	t := s.StartTime

	var b StageBoundaries
	// segs order: TEmptyToBF, AtBF, TBFToFullBuffer, AtFullBuffer,
	// TFullToDesulf, AtDesulf, TDesulfToConverter, AtConverter, TConverterToEmpty
	t += segs[0].Duration // past T_EMPTY_TO_BF
	b.StartBF = t
	t += segs[1].Duration
	b.EndBF = t

	t += segs[2].Duration // past T_BF_TO_FULL_BUFFER
	b.StartFullBuffer = t
	t += segs[3].Duration
	b.EndFullBuffer = t

	t += segs[4].Duration // past T_FULL_TO_DESULF
	b.StartDesulf = t
	t += segs[5].Duration
	b.EndDesulf = t

	t += segs[6].Duration // past T_DESULF_TO_CONVERTER
	b.StartConverter = t
	t += segs[7].Duration
	b.EndConverter = t

	b.StartEmptyBuffer = t
	t += segs[8].Duration
	b.EndEmptyBuffer = t

	return b
}
