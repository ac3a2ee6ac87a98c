package resolve

import "errors"

var (
	// ErrIrreparableConflict is returned when neither schedule sharing a
	// T_FULL_TO_DESULF overlap holds enough buffer slack to absorb it.
	ErrIrreparableConflict = errors.New("resolve: cannot resolve transit conflicts")

	// ErrInvariantViolation is returned when three or more torpedoes
	// occupy T_FULL_TO_DESULF in the same slot — the resolver only
	// handles two-way overlaps, per spec.md §4.5.
	ErrInvariantViolation = errors.New("resolve: three simultaneous transit-to-desulf entries")
)
