package geo

import "testing"

func TestNormalizeISO2(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{name: "trim and uppercase", in: "  nl  ", want: "NL", ok: true},
		{name: "already normalized", in: "DE", want: "DE", ok: true},
		{name: "mixed case", in: "gB", want: "GB", ok: true},
		{name: "trim newline and tab", in: "\nch\t", want: "CH", ok: true},
		{name: "contains digit", in: "A1", want: "", ok: false},
		{name: "too short", in: "N", want: "", ok: false},
		{name: "too long", in: "NLD", want: "", ok: false},
		{name: "internal space", in: "N L", want: "", ok: false},
		{name: "unicode sharp s", in: "ß", want: "", ok: false},
		{name: "non ascii letters", in: "éé", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeISO2(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("NormalizeISO2(%q) = (%q, %t), want (%q, %t)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestIsValidISO2(t *testing.T) {
	if !IsValidISO2("zz") {
		t.Fatal("IsValidISO2(zz) should be true for format-only validation")
	}
	if IsValidISO2("z1") {
		t.Fatal("IsValidISO2(z1) should be false")
	}
}

func TestCountryPrefix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{name: "iban", in: "nl28RABO3154172025", want: "NL", ok: true},
		{name: "exactly two", in: "De", want: "DE", ok: true},
		{name: "leading space is not trimmed", in: " NL28", want: "", ok: false},
		{name: "digit prefix", in: "28NL", want: "", ok: false},
		{name: "one byte", in: "N", want: "", ok: false},
		{name: "empty", in: "", want: "", ok: false},
		{name: "utf8 lead byte", in: "ÉE12", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CountryPrefix(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("CountryPrefix(%q) = (%q, %t), want (%q, %t)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestASCIIHelpers(t *testing.T) {
	if !IsASCIIDigit('0') || !IsASCIIDigit('9') || IsASCIIDigit('a') {
		t.Fatal("IsASCIIDigit mismatch")
	}
	if ToUpperASCII('q') != 'Q' || ToUpperASCII('Q') != 'Q' || ToUpperASCII('5') != '5' {
		t.Fatal("ToUpperASCII mismatch")
	}
}
