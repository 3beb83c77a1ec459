// Package validator provides a small rule-based validation core and
// context-aware content policies for untrusted list input.
//
// The core follows a simple model: a Rule bundles a boolean check with the
// ValidationError reported when it fails, and Apply runs rules in order,
// collecting every failure into a ValidationErrors value that implements
// error.
//
//	err := validator.Apply(
//	    validator.RequiredString("text", input),
//	    validator.MaxLenString("text", input, 500),
//	    validator.SafeText("text", input),
//	)
//
// ValidForContext is the policy dispatch used by the validation pipeline:
// plain text is screened through the pattern predicates, attribute values
// reject any literal attribute-breaking character, and URLs must parse as
// absolute http/https. The URL policy is the protocol-injection control;
// it never performs network access.
package validator
