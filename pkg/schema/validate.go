package schema

// Schema is a map of field names to their expected types.
// Example: {"problem_domain": NonEmptyString(), "samples_per_day": NonNegativeInt()}
type Schema map[string]Type

// Validate checks if data conforms to the schema.
// Returns an error with all validation failures found.
func Validate(schema Schema, data map[string]any) error {
	if len(schema) == 0 {
		// No schema = no validation
		return nil
	}

	var errs []error

	for fieldName, fieldType := range schema {
		value, exists := data[fieldName]
		if !exists {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: "required",
				Value:  nil,
			})
			continue
		}

		if err := fieldType.Validate(value); err != nil {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}

	return nil
}

// ValidateField checks a single field value against its entry in the schema.
// Fields absent from the schema are rejected, so a driver cannot accrete
// answers the record constructors will never look at.
func ValidateField(schema Schema, field string, value any) error {
	fieldType, exists := schema[field]
	if !exists {
		return &ValidationError{Key: field, Reason: "not defined in schema", Value: value}
	}
	if err := fieldType.Validate(value); err != nil {
		return &ValidationError{Key: field, Reason: err.Error(), Value: value}
	}
	return nil
}
