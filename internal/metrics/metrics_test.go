package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/ferrotap/torpedosched/pipeline"
)

func TestRecord_SetsGaugesAndAddsCounters(t *testing.T) {
	beforeUpdates := testutil.ToFloat64(optimizerUpdatesTotal)

	var conflicts [pipeline.StateCount]int
	conflicts[pipeline.AtDesulf] = 3

	Record(Snapshot{
		TorpedoCount:     2,
		DesulfTime:       10,
		TotalTime:        40,
		Cost:             2.5,
		Gain:             1.5,
		Conflicts:        conflicts,
		OptimizerUpdates: 4,
	})

	require.Equal(t, 2.0, testutil.ToFloat64(torpedoCount))
	require.Equal(t, 10.0, testutil.ToFloat64(desulfTime))
	require.Equal(t, 40.0, testutil.ToFloat64(totalTime))
	require.Equal(t, 2.5, testutil.ToFloat64(costGauge))
	require.Equal(t, 1.5, testutil.ToFloat64(gainGauge))
	require.Equal(t, 3.0, testutil.ToFloat64(conflictsByState.WithLabelValues(pipeline.AtDesulf.String())))
	require.Equal(t, 0.0, testutil.ToFloat64(conflictsByState.WithLabelValues(pipeline.TEmptyToBF.String())))

	afterUpdates := testutil.ToFloat64(optimizerUpdatesTotal)
	require.Equal(t, 4.0, afterUpdates-beforeUpdates)
}

func TestRecordResolverFailure_IncrementsCounter(t *testing.T) {
	before := testutil.ToFloat64(resolverFailuresTotal)
	RecordResolverFailure()
	after := testutil.ToFloat64(resolverFailuresTotal)
	require.Equal(t, 1.0, after-before)
}
