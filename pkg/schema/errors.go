package schema

import (
	"errors"
	"fmt"
)

// ValidationError reports a single field that failed validation.
type ValidationError struct {
	Key    string // Field name
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %T)", e.Key, e.Reason, e.Value)
}

// AggregateError bundles every validation failure found in one pass, so the
// caller can re-prompt for all of them at once instead of one per round trip.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// ValidationErrors returns the individual failures inside err. It unwraps an
// *AggregateError into its parts, passes a bare *ValidationError through as a
// single-element slice, and returns nil for anything else.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	var single *ValidationError
	if errors.As(err, &single) {
		return []error{single}
	}
	return nil
}

// IsValidation reports whether err is a construction-time validation failure.
func IsValidation(err error) bool {
	return ValidationErrors(err) != nil
}
