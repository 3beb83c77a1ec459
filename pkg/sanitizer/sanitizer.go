package sanitizer

import (
	"regexp"
	"strings"
)

// htmlReplacer escapes the six HTML-significant characters. The ampersand
// pair must stay first: escaping it later would double-escape the entities
// the other replacements introduce.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// EscapeHTML escapes the characters & < > " ' / to their entity equivalents
// so the result cannot be interpreted as markup when rendered into HTML.
//
// The function is pure and total but NOT idempotent: escaping an already
// escaped string double-escapes its ampersands. Callers must escape exactly
// once per logical input.
func EscapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// CollapseWhitespace trims the string and collapses internal whitespace runs
// to a single space.
func CollapseWhitespace(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// Truncate returns at most max runes of s. Non-positive max yields an empty
// string. Truncation happens on rune boundaries so multi-byte characters are
// never split.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
