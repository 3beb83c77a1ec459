// Package ratelimit implements a sliding-window rate limiter keyed by an
// arbitrary string, typically an operation category.
//
// The limiter stores the timestamps of admitted events per key and counts
// only those within the trailing window. Expired entries are pruned lazily
// on each check rather than by a background sweeper, so an idle limiter
// costs nothing and holds no goroutines.
//
//	limiter, err := ratelimit.New(10, time.Minute)
//	res, err := limiter.Allow("item.create")
//	if !res.Allowed {
//	    // deny, retry after res.RetryAfter()
//	}
//
// The time source is injectable via WithClock so tests can simulate window
// expiry deterministically. State lives in process memory only; nothing
// survives a restart.
package ratelimit
