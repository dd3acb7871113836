// Package schema provides the validation layer for intake records.
//
// It defines a small type system (non-empty strings, non-negative integers,
// string lists) and a Validate function that checks a raw answer map against
// a Schema before a record is constructed. Validation failures are reported
// as *ValidationError values, aggregated into a single *AggregateError so a
// dialogue driver can re-prompt for every missing field at once.
//
// Basic usage:
//
//	s := schema.Schema{
//	    "problem_domain":  schema.NonEmptyString(),
//	    "samples_per_day": schema.NonNegativeInt(),
//	    "chemical_types":  schema.StringList(),
//	}
//
//	if err := schema.Validate(s, answers); err != nil {
//	    // Re-prompt; schema.ValidationErrors(err) lists each failed field.
//	}
//
// This package has zero dependencies beyond the Go standard library so it can
// sit underneath the domain package without dragging adapters in.
package schema
