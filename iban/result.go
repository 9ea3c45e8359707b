package iban

import errs "github.com/vortex-fintech/go-iban/errors"

// Result classifies the outcome of Check. The zero value is not a valid
// outcome.
type Result uint8

const (
	Valid Result = iota + 1
	TooShort
	UnknownCountry
	WrongLength
	ChecksumFailed
)

const (
	errorDomain = "iban"
	errorField  = "iban"
)

// String returns a stable snake_case reason code.
func (r Result) String() string {
	switch r {
	case Valid:
		return "valid"
	case TooShort:
		return "too_short"
	case UnknownCountry:
		return "unknown_country"
	case WrongLength:
		return "wrong_length"
	case ChecksumFailed:
		return "checksum_failed"
	default:
		return "unknown"
	}
}

func (r Result) description() string {
	switch r {
	case TooShort:
		return "value is too short to hold a country code"
	case UnknownCountry:
		return "country code does not issue IBANs"
	case WrongLength:
		return "length does not match the country format"
	case ChecksumFailed:
		return "check digits do not match"
	default:
		return "unrecognized validation result"
	}
}

// Err returns nil for Valid and an InvalidArgument errors.ErrorResponse
// with a single "iban" field violation otherwise.
func (r Result) Err() error {
	if r == Valid {
		return nil
	}
	return errs.InvalidField(errorDomain, errorField, r.String(), r.description())
}
