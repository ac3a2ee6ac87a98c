package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ferrotap/torpedosched/adjacency"
	"github.com/ferrotap/torpedosched/instance"
	"github.com/ferrotap/torpedosched/optimize"
	"github.com/ferrotap/torpedosched/search"
)

func optimizeProps() map[string]int {
	return map[string]int{
		"durBF": 1, "durDesulf": 1, "durConverter": 1,
		"nbSlotsFullBuffer": 5, "nbSlotsDesulf": 5, "nbSlotsConverter": 5,
		"ttBFToFullBuffer": 1, "ttFullBufferToDesulf": 1, "ttDesulfToConverter": 1,
		"ttConverterToEmptyBuffer": 1, "ttEmptyBufferToBF": 1, "ttBFEmergencyPitEmptyBuffer": 5,
	}
}

func totalDesulf(inst *instance.Instance, matrix adjacency.Matrix, solution []int) int {
	total := 0
	for bfID, converterID := range solution {
		if converterID < 0 {
			continue
		}
		total += matrix[converterID].SparseList[bfID].DesulfDuration
	}
	return total
}

// The greedy duration-first initial search picks bf1 (time 10, sulf 3)
// for converter0 (maxSulf 0, desulf cost 3) over the far cheaper
// converter1 (maxSulf 2, desulf cost 1), leaving bf0 (time 0, sulf 0,
// desulf cost 0 anywhere) on converter1. A regular swap trading the two
// assignments cuts total desulf from 3 to 1.
func TestRun_AcceptsBeneficialRegularSwap(t *testing.T) {
	bf := []instance.BFEvent{{ID: 0, Time: 0, SulfurLevel: 0}, {ID: 1, Time: 10, SulfurLevel: 3}}
	c := []instance.ConverterEvent{{ID: 0, Time: 20, MaxSulfurLevel: 0}, {ID: 1, Time: 40, MaxSulfurLevel: 2}}
	inst, err := instance.New(optimizeProps(), bf, c)
	require.NoError(t, err)

	matrix := adjacency.Build(inst)
	solution, err := search.Run(inst, matrix)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, solution)
	require.Equal(t, 3, totalDesulf(inst, matrix, solution))

	result := optimize.Run(inst, matrix, solution)

	require.Equal(t, 1, result.Updates)
	require.Equal(t, []int{0, 1}, result.Solution)
	require.Equal(t, 1, totalDesulf(inst, matrix, result.Solution))
}

// Here the initial search already puts bf1 (sulf 0) on converter0
// (desulf cost 0) and bf0 (sulf 3) on converter1, whose higher max_sulf
// 2 costs only 1, so the only candidate swap would raise total desulf
// from 1 to 3: the optimizer must leave the solution untouched.
func TestRun_NoMoveWhenAlreadyOptimal(t *testing.T) {
	bf := []instance.BFEvent{{ID: 0, Time: 0, SulfurLevel: 3}, {ID: 1, Time: 10, SulfurLevel: 0}}
	c := []instance.ConverterEvent{{ID: 0, Time: 20, MaxSulfurLevel: 0}, {ID: 1, Time: 40, MaxSulfurLevel: 2}}
	inst, err := instance.New(optimizeProps(), bf, c)
	require.NoError(t, err)

	matrix := adjacency.Build(inst)
	solution, err := search.Run(inst, matrix)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, solution)
	require.Equal(t, 1, totalDesulf(inst, matrix, solution))

	result := optimize.Run(inst, matrix, solution)

	require.Equal(t, 0, result.Updates)
	require.Equal(t, []int{1, 0}, result.Solution)
}
