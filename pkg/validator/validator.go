// Package validator provides format checks for the identifiers a user can give
// to locate a package. All checks are pure and operate on the untrimmed string.
package validator

import "regexp"

var (
	trackingNumber = regexp.MustCompile(`^[A-Za-z]{2}[0-9]{9}[A-Za-z]{2}$`)
	email          = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	orderNumber    = regexp.MustCompile(`^[0-9]{6,12}$`)
)

// IsValidTrackingNumber accepts exactly 2 letters, 9 digits and 2 letters, in any case.
func IsValidTrackingNumber(s string) bool {
	return trackingNumber.MatchString(s)
}

// TrackingDigits returns the 9-digit run of a valid tracking number, or "".
func TrackingDigits(s string) string {
	if !IsValidTrackingNumber(s) {
		return ""
	}
	return s[2:11]
}

// IsValidEmail accepts a single '@' with no whitespace on either side and a '.'
// in the domain part.
func IsValidEmail(s string) bool {
	return email.MatchString(s)
}

// IsValidOrderNumber accepts 6 to 12 ASCII digits.
func IsValidOrderNumber(s string) bool {
	return orderNumber.MatchString(s)
}
