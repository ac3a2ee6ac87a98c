package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ferrotap/torpedosched/adjacency"
	"github.com/ferrotap/torpedosched/instance"
)

func twoByTwoInstance(t *testing.T) *instance.Instance {
	t.Helper()
	props := map[string]int{
		"durBF": 1, "durDesulf": 1, "durConverter": 1,
		"nbSlotsFullBuffer": 2, "nbSlotsDesulf": 2, "nbSlotsConverter": 2,
		"ttBFToFullBuffer": 1, "ttFullBufferToDesulf": 1, "ttDesulfToConverter": 1,
		"ttConverterToEmptyBuffer": 1, "ttEmptyBufferToBF": 1, "ttBFEmergencyPitEmptyBuffer": 5,
	}
	bf := []instance.BFEvent{
		{ID: 0, Time: 0, SulfurLevel: 1},
		{ID: 1, Time: 1, SulfurLevel: 1},
	}
	converters := []instance.ConverterEvent{
		{ID: 0, Time: 20, MaxSulfurLevel: 1},
		{ID: 1, Time: 30, MaxSulfurLevel: 1},
	}
	inst, err := instance.New(props, bf, converters)
	require.NoError(t, err)
	return inst
}

func TestBuild_ProducesOneMapPerConverter(t *testing.T) {
	inst := twoByTwoInstance(t)
	m := adjacency.Build(inst)
	require.Len(t, m, 2)
	for ci, sm := range m {
		require.Equal(t, inst.ConverterSchedules[ci].ID, sm.ConverterID)
		require.Len(t, sm.SparseList, 2)
	}
}

func TestBuild_IsPure(t *testing.T) {
	inst := twoByTwoInstance(t)
	a := adjacency.Build(inst)
	b := adjacency.Build(inst)
	require.Len(t, a, len(b))
	for i := range a {
		require.Equal(t, len(a[i].SortedList), len(b[i].SortedList))
		for j := range a[i].SortedList {
			require.Equal(t, *a[i].SortedList[j], *b[i].SortedList[j])
		}
	}
}
