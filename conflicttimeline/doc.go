// Package conflicttimeline is the compact conflict-timeline component of
// spec.md §4.3, grounded on matrix.Dense's fixed-width numeric backing
// store (here a counter vector per slot instead of a single float) and
// on the add/subtract reversibility discipline flow.Dinic's residual
// graph uses when pushing and later cancelling flow along an
// augmenting path.
package conflicttimeline
