package instance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ferrotap/torpedosched/instance"
)

func validProperties() map[string]int {
	return map[string]int{
		"durBF":                       2,
		"durDesulf":                   3,
		"durConverter":                4,
		"nbSlotsFullBuffer":           2,
		"nbSlotsDesulf":               1,
		"nbSlotsConverter":            1,
		"ttBFToFullBuffer":            1,
		"ttFullBufferToDesulf":        1,
		"ttDesulfToConverter":         1,
		"ttConverterToEmptyBuffer":    1,
		"ttEmptyBufferToBF":           1,
		"ttBFEmergencyPitEmptyBuffer": 5,
	}
}

func TestNew_MissingProperty(t *testing.T) {
	props := validProperties()
	delete(props, "durBF")
	_, err := instance.New(props, nil, nil)
	require.ErrorIs(t, err, instance.ErrMissingProperty)
}

func TestNew_UnorderedSchedulesRejected(t *testing.T) {
	bf := []instance.BFEvent{{ID: 0, Time: 10}, {ID: 1, Time: 5}}
	_, err := instance.New(validProperties(), bf, nil)
	require.ErrorIs(t, err, instance.ErrUnorderedSchedules)
}

func TestNew_NegativeFieldsRejected(t *testing.T) {
	tests := []struct {
		name    string
		bf      []instance.BFEvent
		c       []instance.ConverterEvent
		wantErr error
	}{
		{"negative bf time", []instance.BFEvent{{Time: -1}}, nil, instance.ErrNegativeTime},
		{"negative sulfur", []instance.BFEvent{{Time: 0, SulfurLevel: -1}}, nil, instance.ErrNegativeSulfur},
		{"negative converter time", nil, []instance.ConverterEvent{{Time: -1}}, instance.ErrNegativeTime},
		{"negative capacity", nil, []instance.ConverterEvent{{Time: 0, MaxSulfurLevel: -1}}, instance.ErrNegativeCapacity},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := instance.New(validProperties(), tc.bf, tc.c)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNew_DerivesEmergencyDuration(t *testing.T) {
	inst, err := instance.New(validProperties(), nil, nil)
	require.NoError(t, err)
	require.Equal(t, 1+2+5, inst.DurEmergency)
}

// TestDeriveConverterTiming_DepartDelaySerializesDepartures exercises the
// forward pass: two converters scheduled close together must serialize
// through the single-capacity converter-to-empty-buffer corridor.
func TestDeriveConverterTiming_DepartDelaySerializesDepartures(t *testing.T) {
	props := validProperties()
	props["durConverter"] = 4
	props["ttConverterToEmptyBuffer"] = 3
	converters := []instance.ConverterEvent{
		{ID: 0, Time: 0, MaxSulfurLevel: 1},
		{ID: 1, Time: 1, MaxSulfurLevel: 1}, // candidate departure 5; prev empty-buffer arrival 0+4+0+3=7
	}
	inst, err := instance.New(props, nil, converters)
	require.NoError(t, err)
	require.Equal(t, 0, inst.ConverterSchedules[0].DepartDelay)
	require.Equal(t, 7-5, inst.ConverterSchedules[1].DepartDelay)
}

// TestDeriveConverterTiming_MinEarlyArrivalStaggersCluster exercises the
// backward pass: two converters whose times leave less than
// ttDesulfToConverter of slack must stagger via MinEarlyArrival.
func TestDeriveConverterTiming_MinEarlyArrivalStaggersCluster(t *testing.T) {
	props := validProperties()
	props["ttDesulfToConverter"] = 5
	converters := []instance.ConverterEvent{
		{ID: 0, Time: 0, MaxSulfurLevel: 1},
		{ID: 1, Time: 2, MaxSulfurLevel: 1}, // gap 2 < ttDesulfToConverter 5
	}
	inst, err := instance.New(props, nil, converters)
	require.NoError(t, err)
	require.Equal(t, 0, inst.ConverterSchedules[1].MinEarlyArrival)
	require.Equal(t, 5-2, inst.ConverterSchedules[0].MinEarlyArrival)
	require.Equal(t, -3, inst.ConverterSchedules[0].EffectiveTime())
}

func TestEmergencyInterval(t *testing.T) {
	props := validProperties()
	bf := []instance.BFEvent{{ID: 0, Time: 10, SulfurLevel: 2}}
	inst, err := instance.New(props, bf, nil)
	require.NoError(t, err)
	start, end := inst.EmergencyInterval(0)
	require.Equal(t, 10-props["ttEmptyBufferToBF"], start)
	require.Equal(t, start+inst.DurEmergency, end)
}

func TestString_RoundTripsProperties(t *testing.T) {
	props := validProperties()
	bf := []instance.BFEvent{{ID: 0, Time: 1, SulfurLevel: 2}}
	c := []instance.ConverterEvent{{ID: 0, Time: 5, MaxSulfurLevel: 1}}
	inst, err := instance.New(props, bf, c)
	require.NoError(t, err)

	out := inst.String()
	require.Contains(t, out, "durBF=2")
	require.Contains(t, out, "BF 0 1 2")
	require.Contains(t, out, "C 0 5 1")
}

func TestNew_PropertiesCopyIsIndependent(t *testing.T) {
	props := validProperties()
	inst, err := instance.New(props, nil, nil)
	require.NoError(t, err)
	props["durBF"] = 999
	require.NotEqual(t, 999, inst.Properties()["durBF"])
}
