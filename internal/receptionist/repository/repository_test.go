package repository

import (
	"testing"

	"ringly_backend/platform/apperr"
)

func validNew() NewConfiguration {
	return NewConfiguration{
		Plan:          "growth",
		VoiceID:       "maya",
		Style:         "friendly",
		BusinessName:  "Bright Smile Dental",
		Industry:      "dental",
		Services:      "cleaning, whitening",
		CustomerEmail: "owner@brightsmile.example",
	}
}

func TestValidateNew_AcceptsCompleteConfiguration(t *testing.T) {
	if err := validateNew(validNew()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateNew_RequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*NewConfiguration)
	}{
		{"plan", func(c *NewConfiguration) { c.Plan = "" }},
		{"voice", func(c *NewConfiguration) { c.VoiceID = "" }},
		{"style", func(c *NewConfiguration) { c.Style = "" }},
		{"business name", func(c *NewConfiguration) { c.BusinessName = "" }},
		{"industry", func(c *NewConfiguration) { c.Industry = "" }},
		{"industry whitespace", func(c *NewConfiguration) { c.Industry = "   " }},
		{"services", func(c *NewConfiguration) { c.Services = "" }},
		{"customer email", func(c *NewConfiguration) { c.CustomerEmail = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validNew()
			tc.mutate(&cfg)
			if err := validateNew(cfg); !apperr.Is(err, apperr.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
