// Package secure orchestrates the input validation and rate-limiting
// pipeline that gates every mutation of the item list.
//
// ValidateAndSanitize runs raw input through a fixed stage order - rate
// limit, length, emptiness, malicious-pattern scan, injection scan,
// text-context validation, HTML escaping - and returns either a sanitized
// value or a typed rejection at the first failing stage. ValidateID gates
// delete operations on the identifier shape so attacker-supplied ids never
// reach storage.
//
//	pipeline, err := secure.NewPipeline(limiter, auditor)
//	res := pipeline.ValidateAndSanitize(ctx, raw, "item.create")
//	if !res.OK {
//	    // res.Reason, res.Err()
//	}
//
// Every stage is a pure predicate; nothing raises. Rejections form a small
// taxonomy (Reason) with matching sentinel errors for callers that
// propagate them through error chains.
//
// The filtering here is best-effort client-side defense, not an
// authoritative boundary: it narrows the input surface but is no substitute
// for context-aware escaping at render time, which the pipeline performs as
// its final stage.
//
// Headers exposes the fixed security policy header set (CSP, nosniff,
// frame-deny, referrer and permissions policies) for the hosting transport;
// HeadersMiddleware attaches it to every response.
package secure
