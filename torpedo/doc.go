// Package torpedo reconstructs the physical fleet behind a solution,
// per spec.md §4.6: it threads each BF's run onto the first torpedo
// already free (one whose current run has begun its return to the
// empty buffer) and opens a new torpedo otherwise. Grounded on
// builder.RandomSparse's deterministic ascending-index walk and on
// original_source/evaluator.py's torpedo-count accounting, made
// explicit here as a run-by-run allocation rather than a peak-occupancy
// count.
package torpedo
