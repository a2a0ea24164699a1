package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultRegister is stored when a usage sentence has no register.
const DefaultRegister = "neutral"

// TrimToNil trims s and maps the empty result to nil.
func TrimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// IsBlank reports whether s is empty after trimming.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// NormalizeRegister lowercases a register value and falls back to
// DefaultRegister when it is absent or blank.
func NormalizeRegister(s *string) string {
	r := TrimToNil(s)
	if r == nil {
		return DefaultRegister
	}
	return strings.ToLower(*r)
}

// NormalizeNative trims native-script text and converts it to Unicode NFC,
// so canonically equivalent spellings compare equal in uniqueness checks.
func NormalizeNative(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
