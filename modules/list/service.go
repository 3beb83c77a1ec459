package list

import (
	"context"
	"time"

	"github.com/dmitrymomot/listkit/pkg/audit"
	"github.com/dmitrymomot/listkit/pkg/ident"
	"github.com/dmitrymomot/listkit/pkg/ratelimit"
	"github.com/dmitrymomot/listkit/pkg/secure"
)

// Operation categories key the rate limiter and name audited actions.
const (
	CategoryCreate = "item.create"
	CategoryUpdate = "item.update"
	CategoryDelete = "item.delete"
)

// Lifecycle audit actions.
const (
	actionCreated       = "item.created"
	actionUpdated       = "item.updated"
	actionDeleted       = "item.deleted"
	actionEditStarted   = "item.edit_started"
	actionEditCancelled = "item.edit_cancelled"
)

// Config holds the tunables of the list service.
type Config struct {
	RateLimit       int           `env:"LISTKIT_RATE_LIMIT" envDefault:"10"`
	RateWindow      time.Duration `env:"LISTKIT_RATE_WINDOW" envDefault:"60s"`
	MaxInputLength  int           `env:"LISTKIT_MAX_INPUT_LENGTH" envDefault:"500"`
	AlertClearDelay time.Duration `env:"LISTKIT_ALERT_CLEAR_DELAY" envDefault:"5s"`
}

// Service owns the item list and routes every mutation through the
// validation pipeline. It is the single owner of all shared state: items,
// rate-limiter windows and the alert.
type Service struct {
	store    *Store
	limiter  *ratelimit.SlidingWindow
	pipeline *secure.Pipeline
	ids      *ident.Generator
	alerts   *Alerter
	auditor  audit.Logger
	now      func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock overrides the timestamp source for item timestamps. Intended
// for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIdentGenerator overrides the identifier generator.
func WithIdentGenerator(g *ident.Generator) ServiceOption {
	return func(s *Service) {
		if g != nil {
			s.ids = g
		}
	}
}

// WithAlerter overrides the alerter, letting callers control the clear
// delay and scheduling.
func WithAlerter(a *Alerter) ServiceOption {
	return func(s *Service) {
		if a != nil {
			s.alerts = a
		}
	}
}

// NewService wires the limiter, pipeline, store and alerter from cfg.
func NewService(cfg Config, auditor audit.Logger, opts ...ServiceOption) (*Service, error) {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = ratelimit.DefaultLimit
	}
	if cfg.RateWindow <= 0 {
		cfg.RateWindow = ratelimit.DefaultWindow
	}
	if cfg.MaxInputLength <= 0 {
		cfg.MaxInputLength = secure.DefaultMaxInputLength
	}
	if cfg.AlertClearDelay <= 0 {
		cfg.AlertClearDelay = DefaultAlertClearDelay
	}

	limiter, err := ratelimit.New(cfg.RateLimit, cfg.RateWindow)
	if err != nil {
		return nil, err
	}

	pipeline, err := secure.NewPipeline(limiter, auditor, secure.WithMaxInputLength(cfg.MaxInputLength))
	if err != nil {
		return nil, err
	}

	s := &Service{
		store:    NewStore(),
		limiter:  limiter,
		pipeline: pipeline,
		ids:      ident.NewGenerator(),
		alerts:   NewAlerter(WithClearDelay(cfg.AlertClearDelay)),
		auditor:  auditor,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Add validates raw and appends a new item. On rejection the alert is
// raised and the sentinel error for the rejection reason is returned.
func (s *Service) Add(ctx context.Context, raw string) (Item, error) {
	res := s.pipeline.ValidateAndSanitize(ctx, raw, CategoryCreate)
	if !res.OK {
		s.alerts.Raise(MessageFor(res.Reason))
		return Item{}, res.Err()
	}

	now := s.now()
	item := Item{
		ID:           s.ids.New(),
		Text:         res.Value,
		CreatedAt:    now,
		LastModified: now,
	}
	s.store.Add(item)
	s.alerts.Clear()

	_ = s.auditor.Log(ctx, actionCreated, audit.WithMetadata("item_id", item.ID))

	return item, nil
}

// Update validates raw and replaces the text of an existing item. The
// stored item is untouched when validation fails.
func (s *Service) Update(ctx context.Context, id, raw string) (Item, error) {
	if _, ok := s.store.Get(id); !ok {
		return Item{}, ErrItemNotFound
	}

	res := s.pipeline.ValidateAndSanitize(ctx, raw, CategoryUpdate)
	if !res.OK {
		s.alerts.Raise(MessageFor(res.Reason))
		return Item{}, res.Err()
	}

	item, ok := s.store.Update(id, res.Value, s.now())
	if !ok {
		return Item{}, ErrItemNotFound
	}
	s.alerts.Clear()

	_ = s.auditor.Log(ctx, actionUpdated, audit.WithMetadata("item_id", item.ID))

	return item, nil
}

// Delete removes an item. The identifier is validated against the generator
// shape before any store lookup: an id that could not have been produced by
// the generator never indexes into storage.
func (s *Service) Delete(ctx context.Context, id string) error {
	limit, err := s.limiter.Allow(CategoryDelete)
	if err != nil || !limit.Allowed {
		s.alerts.Raise(MessageFor(secure.ReasonRateLimited))
		_ = s.auditor.LogRejection(ctx, CategoryDelete, string(secure.ReasonRateLimited), id)
		return secure.ErrRateLimited
	}

	res := s.pipeline.ValidateID(ctx, id, CategoryDelete)
	if !res.OK {
		s.alerts.Raise(MessageFor(res.Reason))
		return res.Err()
	}

	if !s.store.Delete(id) {
		return ErrItemNotFound
	}
	s.alerts.Clear()

	_ = s.auditor.Log(ctx, actionDeleted, audit.WithMetadata("item_id", id))

	return nil
}

// StartEdit marks the beginning of an edit session for auditing and
// returns the current item.
func (s *Service) StartEdit(ctx context.Context, id string) (Item, error) {
	item, ok := s.store.Get(id)
	if !ok {
		return Item{}, ErrItemNotFound
	}

	_ = s.auditor.Log(ctx, actionEditStarted, audit.WithMetadata("item_id", id))

	return item, nil
}

// CancelEdit records that an edit session was abandoned.
func (s *Service) CancelEdit(ctx context.Context, id string) error {
	if _, ok := s.store.Get(id); !ok {
		return ErrItemNotFound
	}

	_ = s.auditor.Log(ctx, actionEditCancelled, audit.WithMetadata("item_id", id))

	return nil
}

// Items returns the current list in insertion order.
func (s *Service) Items() []Item {
	return s.store.All()
}

// Alert returns the current alert state for rendering.
func (s *Service) Alert() AlertState {
	return s.alerts.State()
}
