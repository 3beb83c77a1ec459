package patterns

import "regexp"

// maliciousPatterns covers markup and protocol constructs that must never
// appear in user-supplied list content. Order matters only for which pattern
// reports first; matching short-circuits on the first hit.
var maliciousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<\s*script\b`),
	regexp.MustCompile(`(?i)<\s*/\s*script\s*>`),
	regexp.MustCompile(`(?i)javascript\s*:`),
	regexp.MustCompile(`(?i)vbscript\s*:`),
	regexp.MustCompile(`(?i)\bon\w+\s*=`),
	regexp.MustCompile(`(?i)<\s*(iframe|object|embed|link|meta|style)\b`),
	regexp.MustCompile(`(?i)expression\s*\(`),
	regexp.MustCompile(`(?i)url\s*\(`),
	regexp.MustCompile(`(?i)@import\b`),
}

// injectionPatterns covers SQL and script-call fragments that indicate an
// injection attempt rather than plain list text.
var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(select|insert|update|delete|drop|create|alter|truncate|union|exec|execute)\b`),
	regexp.MustCompile(`(--|;|/\*|\*/)`),
	regexp.MustCompile(`(?i)\b(eval|alert|confirm|prompt)\s*\(`),
}

// ContainsMalicious reports whether s matches any of the known malicious
// markup patterns (script tags, dangerous protocols, inline event handlers,
// embedding tags, CSS injection vectors). Matching is case-insensitive and
// stops at the first match.
func ContainsMalicious(s string) bool {
	for _, re := range maliciousPatterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// ContainsInjection reports whether s matches any of the known SQL or
// script-injection patterns. Matching is case-insensitive and stops at the
// first match.
func ContainsInjection(s string) bool {
	for _, re := range injectionPatterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

var scriptTagRe = regexp.MustCompile(`(?i)<script\b[^>]*>.*?</script>`)

// StripScriptTags removes all <script> tags and their content.
func StripScriptTags(s string) string {
	return scriptTagRe.ReplaceAllString(s, "")
}

var (
	eventHandlerRe = regexp.MustCompile(`(?i)\s*on\w+\s*=\s*("[^"]*"|'[^']*')`)
	jsProtocolRe   = regexp.MustCompile(`(?i)javascript\s*:`)
)

// RemoveJavaScriptEvents removes inline event-handler attributes and
// javascript: protocol prefixes from HTML-ish input.
func RemoveJavaScriptEvents(s string) string {
	result := eventHandlerRe.ReplaceAllString(s, "")
	return jsProtocolRe.ReplaceAllString(result, "")
}
