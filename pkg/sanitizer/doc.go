// Package sanitizer provides small, pure helpers for preparing untrusted text
// for safe rendering and logging.
//
// EscapeHTML is the core operation: it escapes the six HTML-significant
// characters (& < > " ' /) with the ampersand handled first so the entities
// introduced by the other substitutions are never double-escaped. It is
// deliberately not idempotent - escape exactly once per logical input.
//
// The remaining helpers (Trim, CollapseWhitespace, Truncate) normalise text
// before validation or bound excerpts before logging. None of the functions
// returns an error; they always produce a safe result.
package sanitizer
