// Package pipeline implements the Timeline model of spec.md §3-4.3:
// the nine numbered occupancy states a torpedo passes through (plus the
// Emergency sentinel), the per-trip Segment sequences derived from a
// Schedule or a bare emergency route, the detailed per-slot occupant
// list the conflict resolver walks, and the stage-boundary timestamps
// print_solution reports.
package pipeline
