// Package schedule implements spec.md §3-4.1: the feasibility-and-cost
// model that turns a (BF, converter) pair into a Schedule, and the
// per-converter ScheduleMap that the search and optimizer consume.
//
// Compute is pure: called twice with the same inputs it returns
// structurally identical Schedules (spec.md §8 invariant 7, exercised
// at the adjacency.Build layer). The only mutable state here is
// ScheduleMap.DomainSize / CurrentIndex, owned exclusively by whichever
// search or optimizer pass is in progress, and Schedule.BufferDuration /
// ConverterEarlyArrival, owned exclusively by the conflict resolver.
package schedule
