package secure

import "net/http"

// headerSet is the fixed security policy attached to every response. The
// core never enforces these itself; they are configuration for the hosting
// transport layer.
var headerSet = map[string]string{
	"Content-Security-Policy": "default-src 'self'; script-src 'self'; style-src 'self'; img-src 'self' data:; object-src 'none'; base-uri 'self'; frame-ancestors 'none'",
	"X-Content-Type-Options":  "nosniff",
	"X-Frame-Options":         "DENY",
	"Referrer-Policy":         "no-referrer",
	"Permissions-Policy":      "camera=(), microphone=(), geolocation=()",
}

// Headers returns the security policy header set as a fresh copy, so callers
// cannot mutate the canonical configuration.
func Headers() map[string]string {
	out := make(map[string]string, len(headerSet))
	for k, v := range headerSet {
		out[k] = v
	}
	return out
}

// HeadersMiddleware attaches the security policy header set to every
// response.
func HeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range headerSet {
			w.Header().Set(k, v)
		}
		next.ServeHTTP(w, r)
	})
}
