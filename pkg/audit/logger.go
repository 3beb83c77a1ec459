package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/listkit/pkg/sanitizer"
)

// excerptLimit bounds the slice of offending input carried on an event.
// Keeping it small bounds log growth and avoids re-persisting attack
// payloads verbatim beyond a diagnostic snippet.
const excerptLimit = 64

// Excerpt returns a bounded snippet of input suitable for audit records.
func Excerpt(input string) string {
	return sanitizer.Truncate(sanitizer.CollapseWhitespace(input), excerptLimit)
}

// Logger records security-relevant events. Delivery is fire-and-forget from
// the caller's perspective; the returned error exists for storages that want
// it surfaced, and callers are free to ignore it.
type Logger interface {
	// Log records a successful action.
	Log(ctx context.Context, action string, opts ...EventOption) error

	// LogRejection records a blocked action with its rejection reason and a
	// bounded excerpt of the offending input.
	LogRejection(ctx context.Context, action, reason, input string, opts ...EventOption) error
}

// Storage persists audit events.
type Storage interface {
	Store(ctx context.Context, event Event) error
}

type logger struct {
	storage Storage
	now     func() time.Time
}

// Option configures a logger.
type Option func(*logger)

// WithClock overrides the event timestamp source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(l *logger) {
		if now != nil {
			l.now = now
		}
	}
}

// NewLogger creates an audit logger writing to storage.
func NewLogger(storage Storage, opts ...Option) (Logger, error) {
	if storage == nil {
		return nil, ErrStorageRequired
	}

	l := &logger{
		storage: storage,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

func (l *logger) Log(ctx context.Context, action string, opts ...EventOption) error {
	return l.store(ctx, action, ResultSuccess, opts)
}

func (l *logger) LogRejection(ctx context.Context, action, reason, input string, opts ...EventOption) error {
	opts = append([]EventOption{WithExcerpt(input)}, opts...)
	event, err := l.build(action, ResultBlocked, opts)
	if err != nil {
		return err
	}
	event.Reason = reason
	return l.storage.Store(ctx, event)
}

func (l *logger) store(ctx context.Context, action string, result Result, opts []EventOption) error {
	event, err := l.build(action, result, opts)
	if err != nil {
		return err
	}
	return l.storage.Store(ctx, event)
}

func (l *logger) build(action string, result Result, opts []EventOption) (Event, error) {
	event := Event{
		ID:        uuid.New().String(),
		Action:    action,
		Result:    result,
		CreatedAt: l.now(),
	}

	for _, opt := range opts {
		opt(&event)
	}

	if err := event.Validate(); err != nil {
		return Event{}, err
	}

	return event, nil
}
