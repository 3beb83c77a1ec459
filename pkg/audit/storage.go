package audit

import (
	"context"
	"log/slog"
	"sync"
)

// SlogStorage writes audit events as structured log records. It is the
// default sink for a list manager that keeps no database: operators get the
// full security trail from the process logs.
type SlogStorage struct {
	log *slog.Logger
}

// NewSlogStorage creates a storage writing through log. A nil logger falls
// back to slog.Default.
func NewSlogStorage(log *slog.Logger) *SlogStorage {
	if log == nil {
		log = slog.Default()
	}
	return &SlogStorage{log: log}
}

func (s *SlogStorage) Store(ctx context.Context, event Event) error {
	attrs := []any{
		slog.String("audit_id", event.ID),
		slog.String("action", event.Action),
		slog.String("result", string(event.Result)),
		slog.Time("created_at", event.CreatedAt),
	}
	if event.Reason != "" {
		attrs = append(attrs, slog.String("reason", event.Reason))
	}
	if event.Excerpt != "" {
		attrs = append(attrs, slog.String("excerpt", event.Excerpt))
	}
	for k, v := range event.Metadata {
		attrs = append(attrs, slog.Any(k, v))
	}

	if event.Result == ResultBlocked {
		s.log.WarnContext(ctx, "security event", attrs...)
	} else {
		s.log.InfoContext(ctx, "security event", attrs...)
	}
	return nil
}

// MemoryStorage keeps events in memory. Intended for tests.
type MemoryStorage struct {
	mu     sync.Mutex
	events []Event
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Store(ctx context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of the stored events in insertion order.
func (s *MemoryStorage) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Last returns the most recently stored event, or false when empty.
func (s *MemoryStorage) Last() (Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == 0 {
		return Event{}, false
	}
	return s.events[len(s.events)-1], true
}
