package validator

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrymomot/listkit/pkg/patterns"
)

// Context identifies the rendering context a value is destined for. Each
// context applies its own policy on top of the shared non-empty and length
// prechecks.
type Context string

const (
	// ContextText is plain text rendered as element content.
	ContextText Context = "text"
	// ContextAttribute is a value interpolated into an HTML attribute.
	ContextAttribute Context = "attribute"
	// ContextURL is a value used as a link target.
	ContextURL Context = "url"
)

// MaxContextLength bounds values accepted by any context policy.
const MaxContextLength = 500

// attributeBreakers are characters that terminate or escape an HTML
// attribute; attributes must be fully escaped, never pattern-filtered.
const attributeBreakers = `<>"'&`

// ValidForContext reports whether s is acceptable for the given rendering
// context:
//
//   - ContextText: both pattern predicates must be clean.
//   - ContextAttribute: any literal < > " ' & is rejected outright.
//   - ContextURL: s must parse as an absolute http or https URL with a host;
//     every other scheme (javascript:, data:, ...) is rejected. No network
//     access occurs.
//
// Unknown contexts are rejected.
func ValidForContext(s string, c Context) bool {
	if strings.TrimSpace(s) == "" || len(s) > MaxContextLength {
		return false
	}

	switch c {
	case ContextText:
		return !patterns.ContainsMalicious(s) && !patterns.ContainsInjection(s)
	case ContextAttribute:
		return !strings.ContainsAny(s, attributeBreakers)
	case ContextURL:
		u, err := url.Parse(s)
		if err != nil {
			return false
		}
		return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	default:
		return false
	}
}

// SafeText validates that value is acceptable as plain text content.
func SafeText(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ValidForContext(value, ContextText)
		},
		Error: ValidationError{
			Field:   field,
			Message: "contains disallowed content",
		},
	}
}

// SafeAttribute validates that value is acceptable inside an HTML attribute.
func SafeAttribute(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ValidForContext(value, ContextAttribute)
		},
		Error: ValidationError{
			Field:   field,
			Message: "contains characters not allowed in attributes",
		},
	}
}

// SafeURL validates that value is an absolute http or https URL.
func SafeURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ValidForContext(value, ContextURL)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid http or https URL",
		},
	}
}

// RequiredString validates that a string is not empty after trimming.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// MaxLenString validates that a string does not exceed max bytes.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}
