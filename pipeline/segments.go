package pipeline

import (
	"github.com/ferrotap/torpedosched/instance"
	"github.com/ferrotap/torpedosched/schedule"
)

// Segment is a contiguous run of one State for Duration slots.
type Segment struct {
	State    State
	Duration int
}

// ScheduleSegments builds the nine-segment occupancy sequence for a
// Schedule, per spec.md §4.3. The sequence starts at s.StartTime.
func ScheduleSegments(inst *instance.Instance, s *schedule.Schedule) []Segment {
	return []Segment{
		{TEmptyToBF, inst.TTEmptyToBF},
		{AtBF, inst.DurBF},
		{TBFToFullBuffer, inst.TTBFToFullBuffer},
		{AtFullBuffer, s.BufferDuration},
		{TFullToDesulf, inst.TTFullBufferToDesulf},
		{AtDesulf, s.DesulfDuration},
		{TDesulfToConverter, inst.TTDesulfToConverter},
		{AtConverter, s.ConverterEarlyArrival + inst.DurConverter + s.ConverterDepartDelay},
		{TConverterToEmpty, inst.TTConverterToEmptyBuffer},
	}
}

// EmergencySegments builds the three-segment occupancy sequence for a
// BF routed via the emergency pit, per spec.md §4.3. The sequence
// starts at bf.Time - inst.TTEmptyToBF (instance.EmergencyInterval's start).
func EmergencySegments(inst *instance.Instance) []Segment {
	return []Segment{
		{TEmptyToBF, inst.TTEmptyToBF},
		{AtBF, inst.DurBF},
		{Emergency, inst.TTBFEmergencyPitToEmptyBuffer},
	}
}

// TotalDuration sums a segment sequence's slot count.
func TotalDuration(segments []Segment) int {
	total := 0
	for _, seg := range segments {
		total += seg.Duration
	}
	return total
}
