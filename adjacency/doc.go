// Package adjacency is the AdjacencyMatrix builder of spec.md §4.1,
// grounded on matrix.NewDense's dense-construction shape in the
// teacher: a single pure function from validated input to a fully
// populated matrix, with no partial or lazily constructed state.
package adjacency
