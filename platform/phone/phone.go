// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strconv"
	"strings"

	"ringly_backend/platform/apperr"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is the ISO region assumed when the caller does not pick one.
const DefaultRegion = "US"

const minDigits = 7

// CleanNational strips whitespace, hyphens, parentheses, and periods from
// a user-entered phone number. It returns a validation error when fewer
// than seven digits remain or any non-digit character survives cleaning.
func CleanNational(input string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '(', ')', '.':
			return -1
		}
		return r
	}, input)

	if len(cleaned) < minDigits {
		return "", apperr.Validation("phone number is too short")
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", apperr.Validation("phone number contains invalid characters")
		}
	}

	return cleaned, nil
}

// CallingCode resolves an ISO region (e.g. "US", "GB") to its country
// calling code as a string. Unknown regions fall back to DefaultRegion.
func CallingCode(region string) string {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = DefaultRegion
	}

	code := phonenumbers.GetCountryCodeForRegion(region)
	if code == 0 {
		code = phonenumbers.GetCountryCodeForRegion(DefaultRegion)
	}

	return strconv.Itoa(code)
}

// DialNumber cleans a national number and prepends the calling code for
// the given ISO region.
func DialNumber(input, region string) (string, error) {
	national, err := CleanNational(input)
	if err != nil {
		return "", err
	}
	return CallingCode(region) + national, nil
}
