package schema

import (
	"testing"
)

func TestValidate_Success(t *testing.T) {
	s := Schema{
		"problem_domain":  NonEmptyString(),
		"samples_per_day": NonNegativeInt(),
		"budget":          String(),
		"chemical_types":  StringList(),
	}

	data := map[string]any{
		"problem_domain":  "weighing",
		"samples_per_day": 84,
		"budget":          "",
		"chemical_types":  []string{"Powder", "Flakes"},
	}

	if err := Validate(s, data); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_MissingField(t *testing.T) {
	s := Schema{
		"problem_domain":  NonEmptyString(),
		"current_process": NonEmptyString(),
	}

	data := map[string]any{
		"problem_domain": "weighing",
		// missing current_process
	}

	err := Validate(s, data)
	if err == nil {
		t.Fatal("Validate() should return error for missing field")
	}

	errs := ValidationErrors(err)
	if len(errs) != 1 {
		t.Fatalf("Validate() = %d errors, want 1", len(errs))
	}

	validErr, ok := errs[0].(*ValidationError)
	if !ok {
		t.Fatalf("error should be *ValidationError, got %T", errs[0])
	}
	if validErr.Key != "current_process" {
		t.Errorf("error Key = %q, want current_process", validErr.Key)
	}
}

func TestValidate_BlankRequiredString(t *testing.T) {
	s := Schema{"problem_domain": NonEmptyString()}

	err := Validate(s, map[string]any{"problem_domain": "   "})
	if err == nil {
		t.Fatal("Validate() should reject blank required string")
	}
	if !IsValidation(err) {
		t.Errorf("IsValidation() = false, want true for %v", err)
	}
}

func TestValidate_NegativeInt(t *testing.T) {
	s := Schema{"samples_per_day": NonNegativeInt()}

	if err := Validate(s, map[string]any{"samples_per_day": -5}); err == nil {
		t.Fatal("Validate() should reject -5 for a non-negative int")
	}
	if err := Validate(s, map[string]any{"samples_per_day": 0}); err != nil {
		t.Errorf("Validate() rejected 0: %v", err)
	}
}

func TestValidate_JSONNumbers(t *testing.T) {
	// JSON decoding hands us float64; whole numbers pass, fractions do not.
	s := Schema{"samples_per_day": NonNegativeInt()}

	if err := Validate(s, map[string]any{"samples_per_day": float64(84)}); err != nil {
		t.Errorf("whole float64 rejected: %v", err)
	}
	if err := Validate(s, map[string]any{"samples_per_day": 84.5}); err == nil {
		t.Error("fractional float64 accepted, want error")
	}
}

func TestValidate_StringList(t *testing.T) {
	s := Schema{"chemical_types": StringList()}

	cases := []struct {
		name  string
		value any
		ok    bool
	}{
		{"typed slice", []string{"Powder"}, true},
		{"json slice", []any{"Powder", "Flakes"}, true},
		{"empty", []string{}, false},
		{"blank entry", []string{"Powder", " "}, false},
		{"mixed types", []any{"Powder", 7}, false},
		{"not a list", "Powder", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(s, map[string]any{"chemical_types": tc.value})
			if tc.ok && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestValidateField_UnknownField(t *testing.T) {
	s := Schema{"problem_domain": NonEmptyString()}

	if err := ValidateField(s, "favourite_color", "blue"); err == nil {
		t.Fatal("ValidateField() should reject fields outside the schema")
	}
	if err := ValidateField(s, "problem_domain", "weighing"); err != nil {
		t.Errorf("ValidateField() error = %v, want nil", err)
	}
}
