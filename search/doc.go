// Package search builds one initial BF-to-converter assignment over an
// adjacency.Matrix by forward-checking greedy backtracking, per
// spec.md §4.2. It is grounded on the iterative explicit-frontier shape
// of tsp.bbEngine: a dedicated engine struct holding path/visited-style
// state (here the solution array and backtracking stack) stepped by a
// loop rather than by native recursion, so the forward-checking undo
// points stay explicit and cheap.
package search
