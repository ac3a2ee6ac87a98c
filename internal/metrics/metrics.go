package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ferrotap/torpedosched/pipeline"
)

var (
	torpedoCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "torpedosched_torpedo_count",
		Help: "Fleet size inferred from the most recent solve (max_torpedoes).",
	})
	desulfTime = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "torpedosched_desulf_time_total",
		Help: "Total desulfurization time across all BF assignments in the most recent solve.",
	})
	totalTime = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "torpedosched_total_time",
		Help: "Total torpedo busy time across all BF assignments in the most recent solve.",
	})
	costGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "torpedosched_cost",
		Help: "Cost evaluation of the most recent solve (torpedo_count + desulf_time / (4 * C * dur_desulf)).",
	})
	gainGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "torpedosched_gain",
		Help: "Gain evaluation of the most recent solve (B + 1 - cost).",
	})
	conflictsByState = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "torpedosched_conflicts",
		Help: "Conflicting-slot count per pipeline state in the most recent solve.",
	}, []string{"state"})
	optimizerUpdatesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "torpedosched_optimizer_updates_total",
		Help: "Cumulative count of accepted hill-climbing swaps across all solves.",
	})
	resolverFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "torpedosched_resolver_failures_total",
		Help: "Cumulative count of solves where the conflict resolver could not converge.",
	})
)

func init() {
	prometheus.MustRegister(
		torpedoCount, desulfTime, totalTime, costGauge, gainGauge,
		conflictsByState, optimizerUpdatesTotal, resolverFailuresTotal,
	)
}

// Snapshot is one solve's worth of metrics output, per spec.md §6.
type Snapshot struct {
	TorpedoCount     int
	DesulfTime       int
	TotalTime        int
	Cost             float64
	Gain             float64
	Conflicts        [pipeline.StateCount]int
	OptimizerUpdates int
}

// Record publishes one Snapshot to the registered collectors. It
// overwrites the gauges (they describe "most recent solve", not a
// cumulative series) and adds to the counters.
func Record(s Snapshot) {
	torpedoCount.Set(float64(s.TorpedoCount))
	desulfTime.Set(float64(s.DesulfTime))
	totalTime.Set(float64(s.TotalTime))
	costGauge.Set(s.Cost)
	gainGauge.Set(s.Gain)
	for state := pipeline.State(0); int(state) < pipeline.StateCount; state++ {
		conflictsByState.WithLabelValues(state.String()).Set(float64(s.Conflicts[state]))
	}
	optimizerUpdatesTotal.Add(float64(s.OptimizerUpdates))
}

// RecordResolverFailure increments the resolver-failure counter.
func RecordResolverFailure() {
	resolverFailuresTotal.Inc()
}

// Serve starts a background HTTP server exposing /metrics on addr. It
// never blocks the caller and never returns an error; a failed listen
// is discarded and nothing is logged: the serving goroutine simply
// exits, matching churn.startMetricsEndpoint's best-effort contract.
func Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		_ = server.ListenAndServe()
	}()
}
