package secure

import "errors"

var (
	// ErrLimiterRequired is returned when a pipeline is constructed without
	// a rate limiter.
	ErrLimiterRequired = errors.New("rate limiter is required")

	// ErrAuditorRequired is returned when a pipeline is constructed without
	// an audit logger.
	ErrAuditorRequired = errors.New("audit logger is required")
)
