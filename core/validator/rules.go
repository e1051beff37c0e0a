package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10,15}$`)
)

// Rule checks a single field and reports the violation, if any.
type Rule func() (field, message string, ok bool)

// Apply evaluates all rules and returns the collected ValidationErrors,
// or nil when every rule passes.
func Apply(rules ...Rule) error {
	errs := ValidationErrors{}
	for _, rule := range rules {
		if field, message, ok := rule(); !ok {
			errs.Add(field, message)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Required fails on empty values.
func Required(field, value string) Rule {
	return func() (string, string, bool) {
		return field, "is required", value != ""
	}
}

// Email fails on values that are not well-formed email addresses.
// Empty values pass; compose with Required.
func Email(field, value string) Rule {
	return func() (string, string, bool) {
		return field, "must be a valid email address", value == "" || IsEmail(value)
	}
}

// Phone fails on values that are not 10-15 digit phone numbers.
// Empty values pass; compose with Required.
func Phone(field, value string) Rule {
	return func() (string, string, bool) {
		return field, "must be a valid phone number (10-15 digits)", value == "" || IsPhone(value)
	}
}

// MinRunes fails on non-empty values shorter than n characters.
func MinRunes(field, value string, n int) Rule {
	return func() (string, string, bool) {
		return field, fmt.Sprintf("must be at least %d characters", n),
			value == "" || utf8.RuneCountInString(value) >= n
	}
}

// EqualTo fails when value differs from other.
func EqualTo(field, value, other, message string) Rule {
	return func() (string, string, bool) {
		return field, message, value == other
	}
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsPhone reports whether s is a 10-15 digit phone number.
func IsPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// IsNumeric reports whether s consists solely of ASCII digits.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
