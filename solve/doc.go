// Package solve orchestrates the full pipeline spec.md §4 describes —
// initial assignment, hill-climbing, and conditional conflict
// resolution — into the three entry points original_source/main.py's
// initial_solution, solve, and print_solution commands each call.
// Grounded on tsp.SolveWithMatrix's build-matrix-then-search shape and
// on original_source/main.py's exact "only resolve if conflicts > 0,
// then recount" control flow for the solve command.
package solve
