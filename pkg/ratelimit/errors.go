package ratelimit

import "errors"

var (
	// ErrInvalidLimit is returned when the limit is not positive.
	ErrInvalidLimit = errors.New("invalid limit")

	// ErrInvalidWindow is returned when the window duration is not positive.
	ErrInvalidWindow = errors.New("invalid window")

	// ErrKeyRequired is returned when an empty key is supplied.
	ErrKeyRequired = errors.New("key is required")
)
