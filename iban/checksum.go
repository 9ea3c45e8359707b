package iban

import "github.com/vortex-fintech/go-iban/geo"

// ValidChecksum reports whether an already normalized IBAN passes
// ISO 7064 MOD 97-10: the first four characters move to the end, letters
// expand to 10..35 and the resulting decimal number mod 97 must equal 1.
//
// The remainder is folded per character, so no big integer is built.
// Inputs shorter than four characters or holding anything outside
// [0-9A-Za-z] are rejected.
func ValidChecksum(normalized string) bool {
	if len(normalized) < 4 {
		return false
	}
	rem, ok := mod97(normalized[4:], 0)
	if !ok {
		return false
	}
	rem, ok = mod97(normalized[:4], rem)
	return ok && rem == 1
}

// mod97 continues a MOD 97 reduction from acc over s.
func mod97(s string, acc int) (int, bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case geo.IsASCIIDigit(c):
			acc = (acc*10 + int(c-'0')) % 97
		case geo.IsASCIILetter(c):
			acc = (acc*100 + int(geo.ToUpperASCII(c)-'A') + 10) % 97
		default:
			return 0, false
		}
	}
	return acc, true
}
