package iban

import (
	"strings"

	"github.com/vortex-fintech/go-iban/geo"
	"golang.org/x/text/unicode/norm"
)

// Normalize drops every byte that is not an ASCII letter or digit and keeps
// the remaining characters in order. Case is preserved.
//
// Multi-byte UTF-8 sequences never contain ASCII bytes, so a byte scan is
// enough to remove non-ASCII runes entirely.
func Normalize(raw string) string {
	n := 0
	for i := 0; i < len(raw); i++ {
		if isAlnum(raw[i]) {
			n++
		}
	}
	if n == len(raw) {
		return raw
	}

	var b strings.Builder
	b.Grow(n)
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; isAlnum(c) {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// foldCompat maps compatibility forms such as full-width letters and digits
// to ASCII before Normalize strips them.
func foldCompat(raw string) string {
	return norm.NFKC.String(raw)
}

func isAlnum(c byte) bool {
	return geo.IsASCIILetter(c) || geo.IsASCIIDigit(c)
}
