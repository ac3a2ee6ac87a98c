// Package optimize reduces total desulfurization time through repeated
// pairwise swaps, subject to spec.md §4.4's conflict-safety guarantees:
// every accepted move strictly decreases total desulf duration and never
// raises any per-state conflict count or the fleet-size estimate. See
// optimize.go for the doubling-lookahead search schedule and swap.go for
// the per-move feasibility gate.
package optimize
