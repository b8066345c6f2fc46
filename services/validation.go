package services

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// NANP-style: optional parens/separators, 10 digits
	phonePattern = regexp.MustCompile(`^\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// FormatPhoneNumber normalizes a phone number to "(NNN) NNN-NNNN". Inputs
// with fewer than 10 digits are returned partially formatted, matching the
// as-you-type behavior of the intake form.
func FormatPhoneNumber(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) > 10 {
		digits = digits[:10]
	}
	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return "(" + digits[:3] + ") " + digits[3:]
	default:
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	}
}

func trimmed(s string) string { return strings.TrimSpace(s) }
