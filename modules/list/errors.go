package list

import (
	"errors"

	"github.com/dmitrymomot/listkit/pkg/secure"
)

// ErrItemNotFound is returned when an operation targets an item that does
// not exist.
var ErrItemNotFound = errors.New("item not found")

// rejection messages shown to the user. The pipeline reports reasons; this
// layer alone translates them into text.
var reasonMessages = map[secure.Reason]string{
	secure.ReasonEmpty:             "Please enter some text.",
	secure.ReasonTooLong:           "Input is too long. Keep it under 500 characters.",
	secure.ReasonRateLimited:       "Too many requests. Please slow down.",
	secure.ReasonMaliciousPattern:  "Input contains content that is not allowed.",
	secure.ReasonSuspiciousContent: "Input looks suspicious and was blocked.",
	secure.ReasonContextValidation: "Input could not be accepted.",
	secure.ReasonInvalidID:         "Unknown item identifier.",
}

// MessageFor returns the user-visible message for a rejection reason.
func MessageFor(reason secure.Reason) string {
	if msg, ok := reasonMessages[reason]; ok {
		return msg
	}
	return "Input could not be accepted."
}
