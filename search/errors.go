package search

import "errors"

var (
	// ErrNoFeasibleSolution is returned when backtracking exhausts level 0
	// without placing every converter.
	ErrNoFeasibleSolution = errors.New("search: no feasible solution")

	// ErrClusterTooLong is returned when cluster widening finds the next
	// converter already widened, or already committed to an earlier
	// search level — the heuristic only serializes two-element clusters.
	ErrClusterTooLong = errors.New("search: cannot serialize clusters longer than 2")
)
