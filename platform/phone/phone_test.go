package phone

import (
	"testing"

	"ringly_backend/platform/apperr"
)

func TestCleanNational(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"(555) 123-4567", "5551234567"},
		{"555.123.4567", "5551234567"},
		{"555 123 4567", "5551234567"},
		{"5551234567", "5551234567"},
		{"020 7946 0958", "02079460958"},
	}

	for _, tc := range cases {
		got, err := CleanNational(tc.input)
		if err != nil {
			t.Fatalf("CleanNational(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("CleanNational(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestCleanNational_Invalid(t *testing.T) {
	cases := []string{
		"",
		"123456",          // too short
		"555-CALL-NOW",    // letters survive cleaning
		"+1 555 123 4567", // plus is not stripped
	}

	for _, input := range cases {
		if _, err := CleanNational(input); !apperr.Is(err, apperr.KindValidation) {
			t.Fatalf("CleanNational(%q): expected validation error, got %v", input, err)
		}
	}
}

func TestCallingCode(t *testing.T) {
	cases := []struct {
		region string
		want   string
	}{
		{"US", "1"},
		{"us", "1"},
		{"GB", "44"},
		{"NL", "31"},
		{"", "1"},   // empty falls back to default region
		{"XX", "1"}, // unknown falls back to default region
	}

	for _, tc := range cases {
		if got := CallingCode(tc.region); got != tc.want {
			t.Fatalf("CallingCode(%q) = %q, want %q", tc.region, got, tc.want)
		}
	}
}

func TestDialNumber(t *testing.T) {
	got, err := DialNumber("(555) 123-4567", "US")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "15551234567" {
		t.Fatalf("DialNumber = %q, want 15551234567", got)
	}

	got, err = DialNumber("20 7946 0958", "GB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "442079460958" {
		t.Fatalf("DialNumber = %q, want 442079460958", got)
	}
}
