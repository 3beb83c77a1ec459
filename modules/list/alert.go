package list

import (
	"sync"
	"time"
)

// DefaultAlertClearDelay is how long a raised alert stays visible before it
// clears itself.
const DefaultAlertClearDelay = 5 * time.Second

// AlertState is the transient, UI-facing security alert. It is reset after a
// fixed delay or by the next successful operation, and is never persisted.
type AlertState struct {
	Blocked      bool   `json:"blocked"`
	Message      string `json:"message"`
	AttemptCount int    `json:"attempt_count"`
}

// Alerter owns the alert state. Each state transition bumps a generation
// counter; the deferred clear scheduled by Raise only fires if the state it
// would clear is still current, so a stale timer never clobbers a newer
// alert or a success.
type Alerter struct {
	mu         sync.Mutex
	state      AlertState
	generation uint64
	clearDelay time.Duration
	schedule   func(time.Duration, func())
}

// AlerterOption configures an Alerter.
type AlerterOption func(*Alerter)

// WithClearDelay overrides how long alerts stay before auto-clearing.
func WithClearDelay(d time.Duration) AlerterOption {
	return func(a *Alerter) {
		if d > 0 {
			a.clearDelay = d
		}
	}
}

// WithScheduler overrides how the deferred clear is scheduled. Tests inject
// a synchronous or captured scheduler to avoid sleeping.
func WithScheduler(schedule func(time.Duration, func())) AlerterOption {
	return func(a *Alerter) {
		if schedule != nil {
			a.schedule = schedule
		}
	}
}

// NewAlerter creates an Alerter with the default clear delay.
func NewAlerter(opts ...AlerterOption) *Alerter {
	a := &Alerter{
		clearDelay: DefaultAlertClearDelay,
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Raise records a blocked attempt with a user-visible message and schedules
// the auto-clear. The attempt count accumulates across consecutive
// rejections.
func (a *Alerter) Raise(message string) {
	a.mu.Lock()
	a.generation++
	gen := a.generation
	a.state.Blocked = true
	a.state.Message = message
	a.state.AttemptCount++
	a.mu.Unlock()

	a.schedule(a.clearDelay, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		// Only clear the state this timer was scheduled for. A newer
		// raise or a successful operation supersedes it.
		if a.generation == gen {
			a.state = AlertState{}
		}
	})
}

// Clear resets the alert immediately. Called on every successful operation.
func (a *Alerter) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.generation++
	a.state = AlertState{}
}

// State returns a snapshot of the current alert.
func (a *Alerter) State() AlertState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}
