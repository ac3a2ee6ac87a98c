// Package instance: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// instance package. Constructors MUST return these sentinels; tests MUST
// check them via errors.Is. Panics are reserved for programmer errors in
// private helpers (none currently exist).
package instance

import "errors"

var (
	// ErrMissingProperty indicates one of the twelve required scalar
	// properties was absent from the parsed property set.
	ErrMissingProperty = errors.New("instance: missing required property")

	// ErrUnorderedSchedules indicates a BF or converter event list is not
	// sorted ascending by time.
	ErrUnorderedSchedules = errors.New("instance: schedule list not time-ordered")

	// ErrNegativeTime indicates an event carries a negative time.
	ErrNegativeTime = errors.New("instance: negative event time")

	// ErrNegativeSulfur indicates a BF event carries negative sulfur.
	ErrNegativeSulfur = errors.New("instance: negative sulfur level")

	// ErrNegativeCapacity indicates a converter event carries a negative
	// max sulfur capacity.
	ErrNegativeCapacity = errors.New("instance: negative converter capacity")
)
