// Package resolve is the slack-trading repair pass of spec.md §4.5: it
// walks the assigned schedules' T_FULL_TO_DESULF occupancy in slot order
// and, on finding two torpedoes transiting the single-capacity corridor
// at once, redistributes buffer slack so one of them clears early. It is
// grounded on flow.edmondsKarp's residual-capacity adjustment walked
// along a path, each step mutating two linked quantities together,
// generalized here from flow units to buffer/early-arrival slack.
package resolve
