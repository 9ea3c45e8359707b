package geo

import "strings"

// NormalizeISO2 trims and uppercases an ASCII ISO2-like code.
//
// Validation here is format-only (two ASCII letters) and does not check
// whether the code is an officially assigned ISO 3166-1 alpha-2 value.
func NormalizeISO2(code string) (string, bool) {
	c := strings.TrimSpace(code)
	if len(c) != 2 {
		return "", false
	}
	return upperPair(c[0], c[1])
}

// IsValidISO2 validates whether a value can be normalized as a two-letter
// ASCII ISO2-like code.
func IsValidISO2(code string) bool {
	_, ok := NormalizeISO2(code)
	return ok
}

// CountryPrefix returns the uppercased leading two bytes of s when both are
// ASCII letters. Unlike NormalizeISO2 it ignores the rest of the value and
// does not trim, so it can be applied to account identifiers that embed a
// country code.
func CountryPrefix(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	return upperPair(s[0], s[1])
}

func upperPair(b0, b1 byte) (string, bool) {
	if !IsASCIILetter(b0) || !IsASCIILetter(b1) {
		return "", false
	}
	return string([]byte{ToUpperASCII(b0), ToUpperASCII(b1)}), true
}

func IsASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func IsASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func ToUpperASCII(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
