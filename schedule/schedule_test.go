package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ferrotap/torpedosched/instance"
	"github.com/ferrotap/torpedosched/schedule"
)

func baseInstance(t *testing.T) *instance.Instance {
	t.Helper()
	props := map[string]int{
		"durBF": 2, "durDesulf": 3, "durConverter": 4,
		"nbSlotsFullBuffer": 2, "nbSlotsDesulf": 1, "nbSlotsConverter": 1,
		"ttBFToFullBuffer": 1, "ttFullBufferToDesulf": 1, "ttDesulfToConverter": 1,
		"ttConverterToEmptyBuffer": 1, "ttEmptyBufferToBF": 1, "ttBFEmergencyPitEmptyBuffer": 5,
	}
	inst, err := instance.New(props, nil, nil)
	require.NoError(t, err)
	return inst
}

func TestCompute_RejectsConverterBeforeBF(t *testing.T) {
	inst := baseInstance(t)
	bf := instance.BFEvent{ID: 0, Time: 10, SulfurLevel: 2}
	c := instance.ConverterEvent{ID: 0, Time: 5, MaxSulfurLevel: 0}
	require.Nil(t, schedule.Compute(inst, bf, c))
}

func TestCompute_RejectsNegativeBufferDuration(t *testing.T) {
	inst := baseInstance(t)
	bf := instance.BFEvent{ID: 0, Time: 0, SulfurLevel: 0}
	c := instance.ConverterEvent{ID: 0, Time: 1, MaxSulfurLevel: 0}
	require.Nil(t, schedule.Compute(inst, bf, c))
}

func TestCompute_FeasiblePair(t *testing.T) {
	inst := baseInstance(t)
	bf := instance.BFEvent{ID: 0, Time: 0, SulfurLevel: 5}
	c := instance.ConverterEvent{ID: 0, Time: 20, MaxSulfurLevel: 2}
	s := schedule.Compute(inst, bf, c)
	require.NotNil(t, s)
	require.GreaterOrEqual(t, s.BufferDuration, 0)
	require.Greater(t, s.EndTime, s.StartTime)
	require.Equal(t, (5-2)*inst.DurDesulf, s.DesulfDuration)
	require.Equal(t, -3, s.DesulfEfficiency)
	require.True(t, s.IsPullable == (s.BufferDuration > 0))
}

func TestCompute_DesulfEfficiencyBoundedAboveByZero(t *testing.T) {
	inst := baseInstance(t)
	bf := instance.BFEvent{ID: 0, Time: 0, SulfurLevel: 1}
	c := instance.ConverterEvent{ID: 0, Time: 20, MaxSulfurLevel: 9}
	s := schedule.Compute(inst, bf, c)
	require.NotNil(t, s)
	require.Equal(t, 0, s.DesulfDuration)
	require.LessOrEqual(t, s.DesulfEfficiency, 0)
}

func TestNewScheduleMap_SortsByDurationThenEfficiency(t *testing.T) {
	inst := baseInstance(t)
	bf := []instance.BFEvent{
		{ID: 0, Time: 0, SulfurLevel: 5},
		{ID: 1, Time: 0, SulfurLevel: 1},
	}
	c := instance.ConverterEvent{ID: 0, Time: 30, MaxSulfurLevel: 0}
	sparse := make([]*schedule.Schedule, 2)
	sparse[0] = schedule.Compute(inst, bf[0], c)
	sparse[1] = schedule.Compute(inst, bf[1], c)
	require.NotNil(t, sparse[0])
	require.NotNil(t, sparse[1])

	m := schedule.NewScheduleMap(0, sparse)
	require.Equal(t, 2, m.DomainSize)
	require.Len(t, m.SortedList, 2)
	for i, s := range m.SortedList {
		require.Equal(t, i, s.Index)
	}
	require.True(t, m.SortedList[0].Duration <= m.SortedList[1].Duration)
}

func TestConstrainAndUndoDomain_RoundTrips(t *testing.T) {
	inst := baseInstance(t)
	bf := instance.BFEvent{ID: 0, Time: 0, SulfurLevel: 0}
	c := instance.ConverterEvent{ID: 0, Time: 30, MaxSulfurLevel: 0}
	sparse := []*schedule.Schedule{schedule.Compute(inst, bf, c), nil}
	m := schedule.NewScheduleMap(0, sparse)

	before := m.DomainSize
	m.ConstrainDomain(0)
	m.UndoDomainConstraint(0)
	require.Equal(t, before, m.DomainSize)
}

func TestConstrainDomain_NoopForInfeasibleBF(t *testing.T) {
	inst := baseInstance(t)
	bf := instance.BFEvent{ID: 0, Time: 0, SulfurLevel: 0}
	c := instance.ConverterEvent{ID: 0, Time: 30, MaxSulfurLevel: 0}
	sparse := []*schedule.Schedule{schedule.Compute(inst, bf, c), nil}
	m := schedule.NewScheduleMap(0, sparse)

	before := m.DomainSize
	m.ConstrainDomain(1) // bf id 1 is infeasible (nil)
	require.Equal(t, before, m.DomainSize)
	m.UndoDomainConstraint(1)
	require.Equal(t, before, m.DomainSize)
}
