// Package instance models the immutable problem description for the
// torpedo scheduling engine.
//
// An Instance carries three scalar groups — stage durations, station
// capacities, and transit times — plus two time-ordered event lists:
// BFSchedules (blast-furnace taps, each with a sulfur level) and
// ConverterSchedules (converter charge windows, each with a maximum
// tolerated sulfur level). New derives two values the rest of the
// engine depends on:
//
//   - DurEmergency, the fixed duration of the emergency-pit bypass route.
//   - Per-converter DepartDelay and MinEarlyArrival, which serialize
//     departures and upstream transit through the engine's two
//     single-capacity transit corridors (see deriveConverterTiming).
//
// An Instance is read-only once constructed, and New copies both input
// slices so later caller mutation cannot reach the instance. This
// mirrors the "construct once, read-only thereafter" lifecycle in
// spec.md §3. The one exception is search.Run: when its cluster
// widening fires, it rewrites MinEarlyArrival on ConverterSchedules.
package instance

import "fmt"

// String renders the instance the way the "echo_ins" command does: the
// twelve properties in PropertyNames order, followed by the BF and
// converter event lists in file order.
func (inst *Instance) String() string {
	s := ""
	for _, name := range PropertyNames {
		s += fmt.Sprintf("%s=%d\n", name, inst.properties[name])
	}
	for _, bf := range inst.BFSchedules {
		s += fmt.Sprintf("BF %d %d %d\n", bf.ID, bf.Time, bf.SulfurLevel)
	}
	for _, c := range inst.ConverterSchedules {
		s += fmt.Sprintf("C %d %d %d\n", c.ID, c.Time, c.MaxSulfurLevel)
	}
	return s
}
