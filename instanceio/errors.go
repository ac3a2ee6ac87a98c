// Package instanceio: sentinel error set.
package instanceio

import "errors"

var (
	// ErrMalformedLine indicates a line matched none of the three
	// recognized kinds (BF, C, prop=value).
	ErrMalformedLine = errors.New("instanceio: malformed line")

	// ErrBadInteger indicates a numeric field could not be parsed.
	ErrBadInteger = errors.New("instanceio: bad integer field")
)
