// Package audit provides a write-only sink for security-relevant events.
//
// Every validation outcome and item lifecycle transition is recorded as an
// Event with a uuid identifier, an action name, a success/blocked result and
// an optional rejection reason. Rejections carry a bounded excerpt of the
// offending input - never the full payload.
//
// The Logger writes through a pluggable Storage. SlogStorage emits events as
// structured log records for deployments without a database; MemoryStorage
// collects them for assertions in tests.
//
//	store := audit.NewSlogStorage(logger)
//	auditor, err := audit.NewLogger(store)
//	_ = auditor.LogRejection(ctx, "item.create", "malicious_pattern", raw)
//
// Delivery is fire-and-forget: callers may ignore the returned error.
package audit
