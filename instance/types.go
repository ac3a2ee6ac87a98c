// Package instance models an immutable steelmaking scheduling problem:
// a dated list of blast-furnace (BF) taps, a dated list of converter (C)
// charge windows, fixed stage durations, transit times, and station
// capacities. See doc.go for the full package overview.
package instance

import "sort"

// PropertyNames lists the twelve required scalar properties in the
// order they are echoed back by the "parse" and "echo_ins" commands.
var PropertyNames = []string{
	"durBF",
	"durDesulf",
	"durConverter",
	"nbSlotsFullBuffer",
	"nbSlotsDesulf",
	"nbSlotsConverter",
	"ttBFToFullBuffer",
	"ttFullBufferToDesulf",
	"ttDesulfToConverter",
	"ttConverterToEmptyBuffer",
	"ttEmptyBufferToBF",
	"ttBFEmergencyPitEmptyBuffer",
}

// BFEvent is a single scheduled blast-furnace tap.
type BFEvent struct {
	ID          int
	Time        int
	SulfurLevel int
}

// ConverterEvent is a single scheduled converter charge window, plus the
// two timing corrections derived across the whole converter sequence
// (see deriveConverterTiming).
type ConverterEvent struct {
	ID             int
	Time           int
	MaxSulfurLevel int

	// DepartDelay enforces serialized converter departures through the
	// single-capacity converter-to-empty-buffer transit corridor.
	DepartDelay int

	// MinEarlyArrival enforces the desulf-to-converter transit corridor
	// against the next converter in time order; EffectiveTime subtracts it.
	MinEarlyArrival int
}

// EffectiveTime is Time shifted earlier by MinEarlyArrival, the value
// downstream feasibility computations (schedule.Compute) must use.
func (c ConverterEvent) EffectiveTime() int {
	return c.Time - c.MinEarlyArrival
}

// Instance is a validated problem description. Construct with New;
// fields are read-only after construction, except the converter events'
// MinEarlyArrival, which search.Run's cluster widening rewrites.
type Instance struct {
	DurBF         int
	DurDesulf     int
	DurConverter  int

	NbSlotsFullBuffer int
	NbSlotsDesulf     int
	NbSlotsConverter  int

	TTEmptyToBF                  int
	TTBFToFullBuffer             int
	TTFullBufferToDesulf         int
	TTDesulfToConverter          int
	TTConverterToEmptyBuffer     int
	TTBFEmergencyPitToEmptyBuffer int

	// DurEmergency = TTEmptyToBF + DurBF + TTBFEmergencyPitToEmptyBuffer.
	DurEmergency int

	BFSchedules        []BFEvent
	ConverterSchedules []ConverterEvent

	properties map[string]int
}

// Properties returns the raw twelve-entry scalar property map, suitable
// for round-tripping through the "parse" command's structured output.
func (inst *Instance) Properties() map[string]int {
	out := make(map[string]int, len(inst.properties))
	for k, v := range inst.properties {
		out[k] = v
	}
	return out
}

// New validates properties and the two event lists and constructs an
// Instance, deriving DurEmergency and per-converter DepartDelay /
// MinEarlyArrival. Both event lists are copied but not re-sorted:
// callers must supply them already time-ascending, per spec; New
// rejects out-of-order input instead of silently fixing it.
func New(properties map[string]int, bf []BFEvent, converters []ConverterEvent) (*Instance, error) {
	for _, name := range PropertyNames {
		if _, ok := properties[name]; !ok {
			return nil, ErrMissingProperty
		}
	}

	if !sort.SliceIsSorted(bf, func(i, j int) bool { return bf[i].Time < bf[j].Time }) {
		return nil, ErrUnorderedSchedules
	}
	if !sort.SliceIsSorted(converters, func(i, j int) bool { return converters[i].Time < converters[j].Time }) {
		return nil, ErrUnorderedSchedules
	}
	for _, e := range bf {
		if e.Time < 0 {
			return nil, ErrNegativeTime
		}
		if e.SulfurLevel < 0 {
			return nil, ErrNegativeSulfur
		}
	}
	for _, e := range converters {
		if e.Time < 0 {
			return nil, ErrNegativeTime
		}
		if e.MaxSulfurLevel < 0 {
			return nil, ErrNegativeCapacity
		}
	}

	inst := &Instance{
		DurBF:        properties["durBF"],
		DurDesulf:    properties["durDesulf"],
		DurConverter: properties["durConverter"],

		NbSlotsFullBuffer: properties["nbSlotsFullBuffer"],
		NbSlotsDesulf:     properties["nbSlotsDesulf"],
		NbSlotsConverter:  properties["nbSlotsConverter"],

		TTEmptyToBF:                   properties["ttEmptyBufferToBF"],
		TTBFToFullBuffer:              properties["ttBFToFullBuffer"],
		TTFullBufferToDesulf:          properties["ttFullBufferToDesulf"],
		TTDesulfToConverter:           properties["ttDesulfToConverter"],
		TTConverterToEmptyBuffer:      properties["ttConverterToEmptyBuffer"],
		TTBFEmergencyPitToEmptyBuffer: properties["ttBFEmergencyPitEmptyBuffer"],

		BFSchedules:        append([]BFEvent(nil), bf...),
		ConverterSchedules: append([]ConverterEvent(nil), converters...),

		properties: copyProps(properties),
	}
	inst.DurEmergency = inst.TTEmptyToBF + inst.DurBF + inst.TTBFEmergencyPitToEmptyBuffer

	deriveConverterTiming(inst.ConverterSchedules, inst.DurConverter, inst.TTConverterToEmptyBuffer, inst.TTDesulfToConverter)

	return inst, nil
}

func copyProps(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// EmergencyInterval returns the half-open [start, end) slot range a BF
// event occupies when routed via the emergency pit: empty-to-bf transit,
// the BF tap itself, then the emergency-pit-to-empty-buffer transit.
func (inst *Instance) EmergencyInterval(bfID int) (start, end int) {
	bf := inst.BFSchedules[bfID]
	start = bf.Time - inst.TTEmptyToBF
	end = start + inst.DurEmergency
	return start, end
}

// LatestSlot returns the latest relevant time slot L such that the
// timeline has length L+1: the later of the last converter's
// empty-buffer return and the last BF's emergency-pit return, per
// spec.md §3.
func (inst *Instance) LatestSlot() int {
	latest := 0
	if n := len(inst.ConverterSchedules); n > 0 {
		last := inst.ConverterSchedules[n-1]
		v := last.Time + inst.DurConverter + inst.TTConverterToEmptyBuffer
		if v > latest {
			latest = v
		}
	}
	if n := len(inst.BFSchedules); n > 0 {
		last := inst.BFSchedules[n-1]
		v := last.Time + inst.TTBFEmergencyPitToEmptyBuffer
		if v > latest {
			latest = v
		}
	}
	return latest
}
