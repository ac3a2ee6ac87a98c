package torpedo

import "github.com/ferrotap/torpedosched/pipeline"

// Run is one torpedo's single trip, carrying the ten stage-boundary
// timestamps spec.md §6 requires print_solution to emit, in
// Boundaries. For an emergency assignment (ConverterID == -1) only
// StartBF, EndBF, StartEmptyBuffer, and EndEmptyBuffer are meaningful;
// the others are zero. Boundaries.EndEmptyBuffer is mutated by Build
// as runs are threaded onto torpedoes and finally closed out.
type Run struct {
	BFID        int
	ConverterID int

	// Start is the slot this run's T_EMPTY_TO_BF transit (or, for an
	// emergency run, its empty-buffer departure) begins.
	Start int

	Boundaries pipeline.StageBoundaries
}

// Torpedo is one fleet unit: the ordered sequence of runs it served.
type Torpedo struct {
	ID   int
	Runs []*Run
}
