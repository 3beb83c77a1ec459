package secure

import (
	"context"
	"strings"

	"github.com/dmitrymomot/listkit/pkg/audit"
	"github.com/dmitrymomot/listkit/pkg/ident"
	"github.com/dmitrymomot/listkit/pkg/patterns"
	"github.com/dmitrymomot/listkit/pkg/ratelimit"
	"github.com/dmitrymomot/listkit/pkg/sanitizer"
	"github.com/dmitrymomot/listkit/pkg/validator"
)

// DefaultMaxInputLength bounds raw input accepted by the pipeline.
const DefaultMaxInputLength = 500

// Result is the pipeline outcome. Exactly one of Value and Reason is
// populated: Value when the input was accepted and sanitized, Reason when it
// was rejected.
type Result struct {
	OK     bool
	Value  string
	Reason Reason
}

// Err returns the sentinel error for a rejected result, nil for an accepted
// one. Useful for callers that propagate rejections as errors.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	return r.Reason.Err()
}

// Pipeline gates every mutation of the item list: a rate limit check
// followed by length, emptiness, pattern and context validation, ending in
// HTML escaping. The first failing stage wins and every outcome is reported
// to the audit sink.
type Pipeline struct {
	limiter *ratelimit.SlidingWindow
	auditor audit.Logger
	maxLen  int
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithMaxInputLength overrides the maximum accepted raw input length.
func WithMaxInputLength(n int) PipelineOption {
	return func(p *Pipeline) {
		if n > 0 {
			p.maxLen = n
		}
	}
}

// NewPipeline creates a validation pipeline. Both the limiter and the audit
// logger are required collaborators.
func NewPipeline(limiter *ratelimit.SlidingWindow, auditor audit.Logger, opts ...PipelineOption) (*Pipeline, error) {
	if limiter == nil {
		return nil, ErrLimiterRequired
	}
	if auditor == nil {
		return nil, ErrAuditorRequired
	}

	p := &Pipeline{
		limiter: limiter,
		auditor: auditor,
		maxLen:  DefaultMaxInputLength,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// ValidateAndSanitize runs raw through every stage in order and returns the
// sanitized value or the first rejection. category keys the rate limiter and
// names the audited action (for example "item.create").
//
// Stage order: rate limit, length, emptiness, malicious patterns, injection
// patterns, text-context validation, HTML escaping. The stages are pure
// predicates; nothing here blocks or performs I/O beyond the audit write.
func (p *Pipeline) ValidateAndSanitize(ctx context.Context, raw, category string) Result {
	res, err := p.limiter.Allow(category)
	if err != nil || !res.Allowed {
		return p.reject(ctx, category, ReasonRateLimited, raw)
	}

	if len(raw) > p.maxLen {
		return p.reject(ctx, category, ReasonTooLong, raw)
	}

	// The caller suppresses empty submissions, but the pipeline still
	// handles them defensively.
	if strings.TrimSpace(raw) == "" {
		return p.reject(ctx, category, ReasonEmpty, raw)
	}

	if patterns.ContainsMalicious(raw) {
		return p.reject(ctx, category, ReasonMaliciousPattern, raw)
	}

	if patterns.ContainsInjection(raw) {
		return p.reject(ctx, category, ReasonSuspiciousContent, raw)
	}

	if !validator.ValidForContext(raw, validator.ContextText) {
		return p.reject(ctx, category, ReasonContextValidation, raw)
	}

	value := sanitizer.EscapeHTML(raw)

	_ = p.auditor.Log(ctx, category, audit.WithExcerpt(value))

	return Result{OK: true, Value: value}
}

// ValidateID gates delete operations: an identifier that does not match the
// generator's shape is rejected before it is ever used to index storage.
func (p *Pipeline) ValidateID(ctx context.Context, id, category string) Result {
	if !ident.Valid(id) {
		return p.reject(ctx, category, ReasonInvalidID, id)
	}
	return Result{OK: true, Value: id}
}

func (p *Pipeline) reject(ctx context.Context, category string, reason Reason, input string) Result {
	_ = p.auditor.LogRejection(ctx, category, string(reason), input)
	return Result{OK: false, Reason: reason}
}
