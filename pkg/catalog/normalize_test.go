package catalog

import "testing"

func TestNormalizeDomain(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Weighing", "weighing"},
		{"  weighing  ", "weighing"},
		{"WEIGHING", "weighing"},
		{"Sample Handling Logistics", "sample_handling_logistics"},
		{"data_analysis", "data_analysis"},
		{"", ""},
		// Near misses stay near misses: no synonym resolution.
		{"Weighing station", "weighing_station"},
		{"weighing_stations", "weighing_stations"},
	}

	for _, tc := range cases {
		if got := NormalizeDomain(tc.raw); got != tc.want {
			t.Errorf("NormalizeDomain(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeDomain_Idempotent(t *testing.T) {
	inputs := []string{"Weighing", "  Sample Handling  Logistics ", "data_analysis", "A B C"}
	for _, raw := range inputs {
		once := NormalizeDomain(raw)
		if twice := NormalizeDomain(once); twice != once {
			t.Errorf("NormalizeDomain not idempotent for %q: %q -> %q", raw, once, twice)
		}
	}
}

func TestNormalizeDomain_CaseAndSpaceInvariant(t *testing.T) {
	variants := []string{"weighing", "Weighing", "WEIGHING", " weighing ", "\tWeighing\n"}
	want := "weighing"
	for _, raw := range variants {
		if got := NormalizeDomain(raw); got != want {
			t.Errorf("NormalizeDomain(%q) = %q, want %q", raw, got, want)
		}
	}
}
