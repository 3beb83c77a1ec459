package audit

import (
	"fmt"
	"time"
)

// Result represents the outcome of an audited action.
type Result string

const (
	ResultSuccess Result = "success"
	ResultBlocked Result = "blocked"
)

// Event represents a single audit log entry.
type Event struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Result    Result         `json:"result"`
	Reason    string         `json:"reason,omitempty"`
	Excerpt   string         `json:"excerpt,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Validate checks that the event carries the required fields.
func (e *Event) Validate() error {
	if e.Action == "" {
		return fmt.Errorf("%w: action is required", ErrEventValidation)
	}
	return nil
}

// EventOption applies configuration to an Event during creation.
type EventOption func(*Event)

// WithMetadata adds a metadata entry to the event.
func WithMetadata(key string, value any) EventOption {
	return func(e *Event) {
		if e.Metadata == nil {
			e.Metadata = make(map[string]any)
		}
		e.Metadata[key] = value
	}
}

// WithExcerpt attaches a bounded excerpt of the offending input. The value
// is truncated to the excerpt limit regardless of its length; the full
// payload is never stored.
func WithExcerpt(input string) EventOption {
	return func(e *Event) {
		e.Excerpt = Excerpt(input)
	}
}
