package schema

import (
	"fmt"
	"strings"
)

// Type defines the contract for field validation.
// Implementations determine how values are validated against a type.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "int").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// --- Built-in Type Implementations ---

// StringType validates string values. When Required is set, strings that are
// empty after trimming whitespace are rejected.
type StringType struct {
	Required bool
}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if t.Required && strings.TrimSpace(s) == "" {
		return fmt.Errorf("must not be empty")
	}
	return nil
}

// IntType validates integer values. When Min is set, values below it are
// rejected.
type IntType struct {
	Min *int
}

func (t *IntType) Name() string { return "int" }

func (t *IntType) Validate(value any) error {
	var n int64
	switch v := value.(type) {
	case int:
		n = int64(v)
	case int8:
		n = int64(v)
	case int16:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case float64:
		// JSON decoding yields float64; accept whole numbers only.
		if v != float64(int64(v)) {
			return fmt.Errorf("expected whole number, got %v", v)
		}
		n = int64(v)
	default:
		return fmt.Errorf("expected int, got %T", value)
	}
	if t.Min != nil && n < int64(*t.Min) {
		return fmt.Errorf("must be >= %d, got %d", *t.Min, n)
	}
	return nil
}

// StringListType validates ordered lists of strings. The list must carry at
// least one element, and no element may be blank.
type StringListType struct{}

func (t *StringListType) Name() string { return "[string]" }

func (t *StringListType) Validate(value any) error {
	items, err := coerceStringList(value)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("must contain at least one entry")
	}
	for i, item := range items {
		if strings.TrimSpace(item) == "" {
			return fmt.Errorf("entry %d must not be blank", i+1)
		}
	}
	return nil
}

func coerceStringList(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []any:
		// JSON decoding yields []any; every element must be a string.
		items := make([]string, 0, len(v))
		for i, raw := range v {
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("entry %d: expected string, got %T", i+1, raw)
			}
			items = append(items, s)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("expected list of strings, got %T", value)
	}
}

// --- Constructors ---

// String returns a type accepting any string, including the empty one.
func String() Type { return &StringType{} }

// NonEmptyString returns a type rejecting strings that are blank after
// trimming.
func NonEmptyString() Type { return &StringType{Required: true} }

// Int returns a type accepting any integer.
func Int() Type { return &IntType{} }

// NonNegativeInt returns a type rejecting integers below zero.
func NonNegativeInt() Type {
	zero := 0
	return &IntType{Min: &zero}
}

// StringList returns a type accepting a non-empty list of non-blank strings.
func StringList() Type { return &StringListType{} }
