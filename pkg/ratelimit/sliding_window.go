package ratelimit

import (
	"sync"
	"time"
)

// Default limits match the list manager's mutation budget: ten operations
// per category per minute.
const (
	DefaultLimit  = 10
	DefaultWindow = time.Minute
)

// SlidingWindow is a rate limiter that tracks individual event timestamps
// per key within a trailing time window. Entries older than the window are
// pruned lazily on each check; there is no background sweeper.
type SlidingWindow struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	limit   int
	window  time.Duration
	now     func() time.Time
}

// Option configures a SlidingWindow.
type Option func(*SlidingWindow)

// WithClock overrides the time source. Intended for tests that need to
// advance time past the window without sleeping.
func WithClock(now func() time.Time) Option {
	return func(sw *SlidingWindow) {
		if now != nil {
			sw.now = now
		}
	}
}

// New creates a sliding window limiter.
func New(limit int, window time.Duration, opts ...Option) (*SlidingWindow, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	sw := &SlidingWindow{
		windows: make(map[string][]time.Time),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(sw)
	}

	return sw, nil
}

// Result contains the outcome of a rate limit check.
type Result struct {
	// Allowed indicates whether the event was admitted and recorded.
	Allowed bool

	// Limit is the maximum number of events allowed in the window.
	Limit int

	// Remaining is the number of events left in the current window.
	Remaining int

	// ResetAt is when the oldest recorded event leaves the window.
	ResetAt time.Time
}

// RetryAfter returns how long to wait before the next event is allowed.
// Returns 0 if the event was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Allow checks whether one more event is allowed for key. If so, the event
// is recorded; a denied call records nothing. The check-then-record sequence
// holds the lock, so concurrent callers cannot overshoot the limit.
func (sw *SlidingWindow) Allow(key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	sw.mu.Lock()
	defer sw.mu.Unlock()

	now := sw.now()
	kept := sw.prune(key, now)

	if len(kept) >= sw.limit {
		return &Result{
			Allowed:   false,
			Limit:     sw.limit,
			Remaining: 0,
			ResetAt:   kept[0].Add(sw.window),
		}, nil
	}

	kept = append(kept, now)
	sw.windows[key] = kept

	return &Result{
		Allowed:   true,
		Limit:     sw.limit,
		Remaining: sw.limit - len(kept),
		ResetAt:   kept[0].Add(sw.window),
	}, nil
}

// Status reports the current window state for key without recording an event.
func (sw *SlidingWindow) Status(key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	sw.mu.Lock()
	defer sw.mu.Unlock()

	now := sw.now()
	kept := sw.prune(key, now)

	resetAt := now.Add(sw.window)
	if len(kept) > 0 {
		resetAt = kept[0].Add(sw.window)
	}

	return &Result{
		Allowed:   len(kept) < sw.limit,
		Limit:     sw.limit,
		Remaining: max(0, sw.limit-len(kept)),
		ResetAt:   resetAt,
	}, nil
}

// Reset clears the window for key.
func (sw *SlidingWindow) Reset(key string) error {
	if key == "" {
		return ErrKeyRequired
	}

	sw.mu.Lock()
	defer sw.mu.Unlock()

	delete(sw.windows, key)
	return nil
}

// prune drops timestamps that have left the trailing window and returns the
// surviving entries. Callers must hold sw.mu. Emptied keys are removed so an
// idle limiter holds no state.
func (sw *SlidingWindow) prune(key string, now time.Time) []time.Time {
	timestamps := sw.windows[key]
	cutoff := now.Add(-sw.window)

	i := 0
	for i < len(timestamps) && !timestamps[i].After(cutoff) {
		i++
	}
	kept := timestamps[i:]

	if len(kept) == 0 {
		delete(sw.windows, key)
		return nil
	}

	sw.windows[key] = kept
	return kept
}
