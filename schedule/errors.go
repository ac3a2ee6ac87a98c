// Package schedule: sentinel error set.
package schedule

import "errors"

var (
	// ErrBFOutOfRange indicates a BF id outside a ScheduleMap's sparse list.
	ErrBFOutOfRange = errors.New("schedule: bf id out of range")
)
