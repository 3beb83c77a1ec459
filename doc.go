// Package listkit is a security-first, in-memory list manager: a small set
// of composable packages that gate every create, update and delete behind an
// input validation and rate-limiting pipeline.
//
// The building blocks live under pkg/ and are usable on their own:
//
//   - pkg/patterns: malicious-markup and injection predicates
//   - pkg/sanitizer: HTML escaping and text normalisation
//   - pkg/validator: rule core and context-aware content policies
//   - pkg/ratelimit: sliding-window rate limiter
//   - pkg/ident: opaque identifier generation and shape validation
//   - pkg/audit: write-only security event sink
//   - pkg/secure: the validation pipeline and security policy headers
//   - pkg/config, pkg/logger: environment configuration and slog setup
//
// modules/list wires everything into a complete list manager behind a chi
// HTTP router:
//
//	log := logger.New(logger.WithFormat(logger.FormatJSON))
//	auditor, _ := audit.NewLogger(audit.NewSlogStorage(log))
//	svc, _ := list.NewService(config.MustLoad[list.Config](), auditor)
//
//	r := chi.NewRouter()
//	r.Mount("/items", list.Router(svc))
//
// Items live only in process memory and vanish on restart. The filtering is
// best-effort input hygiene, explicitly non-authoritative: it narrows the
// attack surface but does not replace server-side enforcement.
package listkit
