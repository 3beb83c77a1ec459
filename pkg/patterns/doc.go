// Package patterns provides pure predicate functions that detect malicious
// markup and injection attempts in untrusted text.
//
// Two fixed, ordered pattern sets are maintained: a malicious-markup set
// (script tags, javascript:/vbscript: protocols, inline event handlers,
// iframe/object/embed/link/meta/style tags, CSS expression()/url()/@import)
// and an injection set (SQL keywords, statement-terminator and comment
// punctuation, common XSS call names). All matching is case-insensitive and
// short-circuits on the first hit.
//
// Pattern matching is a heuristic pre-filter, not a sanitizer: callers that
// accept input must still escape it for the rendering context. The predicates
// have no side effects and never fail.
//
// Usage:
//
//	if patterns.ContainsMalicious(input) || patterns.ContainsInjection(input) {
//	    // reject
//	}
package patterns
