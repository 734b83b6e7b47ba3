package utils

import (
	"regexp"
	"strings"
)

var phoneCleanRegex = regexp.MustCompile(`[^\d+]`)

// FormatPhoneE164 normalizes a raw phone string into international format.
// This is a best-effort syntactic rewrite, not a phone-number parser: no
// digit-count or region validation happens, and malformed input yields
// malformed output.
func FormatPhoneE164(phone, countryCode string) string {
	cleaned := phoneCleanRegex.ReplaceAllString(phone, "")

	// Already international, trust the caller.
	if strings.HasPrefix(cleaned, "+") {
		return cleaned
	}

	// Local trunk prefix: swap the leading 0 for the country code.
	if strings.HasPrefix(cleaned, "0") {
		return countryCode + cleaned[1:]
	}

	if !strings.HasPrefix(cleaned, strings.TrimPrefix(countryCode, "+")) {
		return countryCode + cleaned
	}

	return "+" + cleaned
}
