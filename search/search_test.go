package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ferrotap/torpedosched/adjacency"
	"github.com/ferrotap/torpedosched/instance"
	"github.com/ferrotap/torpedosched/search"
)

func baseProps() map[string]int {
	return map[string]int{
		"durBF": 1, "durDesulf": 1, "durConverter": 1,
		"nbSlotsFullBuffer": 5, "nbSlotsDesulf": 5, "nbSlotsConverter": 5,
		"ttBFToFullBuffer": 1, "ttFullBufferToDesulf": 1, "ttDesulfToConverter": 1,
		"ttConverterToEmptyBuffer": 1, "ttEmptyBufferToBF": 1, "ttBFEmergencyPitEmptyBuffer": 5,
	}
}

func TestRun_TwoByTwoDisjoint_AssignsEveryBF(t *testing.T) {
	bf := []instance.BFEvent{{ID: 0, Time: 0}, {ID: 1, Time: 10}}
	c := []instance.ConverterEvent{{ID: 0, Time: 20}, {ID: 1, Time: 40}}
	inst, err := instance.New(baseProps(), bf, c)
	require.NoError(t, err)

	matrix := adjacency.Build(inst)
	solution, err := search.Run(inst, matrix)
	require.NoError(t, err)

	require.Equal(t, []int{1, 0}, solution)
}

func TestRun_UnreachableBF_FallsBackToEmergencySentinel(t *testing.T) {
	bf := []instance.BFEvent{{ID: 0, Time: 0}, {ID: 1, Time: 9}}
	c := []instance.ConverterEvent{{ID: 0, Time: 10}}
	inst, err := instance.New(baseProps(), bf, c)
	require.NoError(t, err)

	matrix := adjacency.Build(inst)
	solution, err := search.Run(inst, matrix)
	require.NoError(t, err)

	require.Equal(t, []int{0, -1}, solution)
}

func TestRun_NoFeasiblePair_ReturnsErrNoFeasibleSolution(t *testing.T) {
	bf := []instance.BFEvent{{ID: 0, Time: 100}}
	c := []instance.ConverterEvent{{ID: 0, Time: 0}}
	inst, err := instance.New(baseProps(), bf, c)
	require.NoError(t, err)

	matrix := adjacency.Build(inst)
	_, err = search.Run(inst, matrix)
	require.ErrorIs(t, err, search.ErrNoFeasibleSolution)
}

func TestRun_SingleNonPullableConverterWithNoNext_FailsAsClusterTooLong(t *testing.T) {
	// bufferDuration = c.Time - minEarly - bf.Time - 4 - desulf; zero
	// exactly when c.Time == 4 here, which is feasible but not pullable.
	bf := []instance.BFEvent{{ID: 0, Time: 0}}
	c := []instance.ConverterEvent{{ID: 0, Time: 4}}
	inst, err := instance.New(baseProps(), bf, c)
	require.NoError(t, err)

	matrix := adjacency.Build(inst)
	_, err = search.Run(inst, matrix)
	require.ErrorIs(t, err, search.ErrClusterTooLong)
}
