// Package instanceio is the text-format boundary for instance.Instance:
// it turns the line-oriented format described in spec.md §6 into the
// maps and slices instance.New validates, and nothing more. It holds
// no domain invariants of its own — those all live in package instance.
package instanceio
