package piiutil

import (
	"strings"
	"unicode"
)

const (
	ibanKeepHead = 4
	ibanKeepTail = 4
)

// MaskIBAN masks an account number for logs. The country code, check digits
// and the last four significant characters stay visible, separators are
// preserved. Values too short to carry a BBAN keep only the last character.
//
// Examples:
//
//	"NL28RABO3154172025"     -> "NL28**********2025"
//	"NL28 RABO 3154 1720 25" -> "NL28 **** **** **20 25"
//	"NL28RABO"               -> "*******O"
//	"X"                      -> "X"
func MaskIBAN(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	runes := []rune(s)

	total := 0
	for _, r := range runes {
		if isSignificant(r) {
			total++
		}
	}
	if total <= ibanKeepHead+ibanKeepTail {
		return maskLettersAndDigitsKeepLast(runes, 1)
	}

	seen := 0
	for i, r := range runes {
		if !isSignificant(r) {
			continue
		}
		seen++
		if seen > ibanKeepHead && seen <= total-ibanKeepTail {
			runes[i] = '*'
		}
	}
	return string(runes)
}

func isSignificant(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// maskLettersAndDigitsKeepLast masks all letters/digits except last keep significant ones.
func maskLettersAndDigitsKeepLast(runes []rune, keep int) string {
	if len(runes) == 0 {
		return ""
	}
	if keep < 1 {
		keep = 1
	}

	total := 0
	for _, r := range runes {
		if isSignificant(r) {
			total++
		}
	}
	if total == 0 {
		return string(runes)
	}
	if keep > total {
		keep = total
	}

	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if isSignificant(runes[i]) {
			seen++
			if seen > keep {
				runes[i] = '*'
			}
		}
	}
	return string(runes)
}
