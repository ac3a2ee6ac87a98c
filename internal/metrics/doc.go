// Package metrics exposes the spec.md §6 "Metrics output" numbers
// (torpedo count, desulf time, total time, per-state conflict
// distribution, cost, gain) plus the optimizer's accepted-move count
// as Prometheus collectors, registered once at import time. Grounded
// on etalazz-vsa/internal/ratelimiter/telemetry/churn/prom_counters.go:
// global gauge/counter vars, an opt-in HTTP endpoint, no-op when never
// served.
package metrics
