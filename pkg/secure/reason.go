package secure

import "errors"

// Reason classifies why the pipeline rejected an input. Every reason is
// non-fatal: the caller recovers by re-submitting corrected input.
type Reason string

const (
	ReasonEmpty             Reason = "empty"
	ReasonTooLong           Reason = "too_long"
	ReasonRateLimited       Reason = "rate_limited"
	ReasonMaliciousPattern  Reason = "malicious_pattern"
	ReasonSuspiciousContent Reason = "suspicious_content"
	ReasonContextValidation Reason = "context_validation_failed"
	ReasonInvalidID         Reason = "invalid_id"
)

var (
	ErrEmpty             = errors.New("input is empty")
	ErrTooLong           = errors.New("input exceeds maximum length")
	ErrRateLimited       = errors.New("too many requests")
	ErrMaliciousPattern  = errors.New("input contains malicious content")
	ErrSuspiciousContent = errors.New("input contains suspicious content")
	ErrContextValidation = errors.New("input failed context validation")
	ErrInvalidID         = errors.New("invalid item identifier")
)

var reasonErrs = map[Reason]error{
	ReasonEmpty:             ErrEmpty,
	ReasonTooLong:           ErrTooLong,
	ReasonRateLimited:       ErrRateLimited,
	ReasonMaliciousPattern:  ErrMaliciousPattern,
	ReasonSuspiciousContent: ErrSuspiciousContent,
	ReasonContextValidation: ErrContextValidation,
	ReasonInvalidID:         ErrInvalidID,
}

// Err returns the sentinel error for the reason, or nil for the zero value.
func (r Reason) Err() error {
	return reasonErrs[r]
}

// ReasonFromErr maps a sentinel error back to its Reason. The second return
// is false when err is not part of the rejection taxonomy.
func ReasonFromErr(err error) (Reason, bool) {
	for reason, sentinel := range reasonErrs {
		if errors.Is(err, sentinel) {
			return reason, true
		}
	}
	return "", false
}
