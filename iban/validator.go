package iban

import (
	"errors"
	"fmt"

	"github.com/vortex-fintech/go-iban/geo"
	"github.com/vortex-fintech/go-iban/logger"
	"github.com/vortex-fintech/go-iban/piiutil"
)

var ErrInvalidCountryTable = errors.New("iban: invalid country table")

// unknownCountryLabel bounds Reporter label cardinality for unlisted prefixes.
const unknownCountryLabel = "unknown"

// Reporter receives one observation per Check.
type Reporter interface {
	ObserveValidation(country, result string)
}

type Option func(*options)

type options struct {
	lengths    map[string]int
	lengthsSet bool
	log        logger.LoggerInterface
	reporter   Reporter
	fold       bool
}

// WithCountryLengths replaces the compiled-in table. Keys are normalized as
// ISO2 codes; the map is copied.
func WithCountryLengths(m map[string]int) Option {
	return func(o *options) {
		o.lengths = m
		o.lengthsSet = true
	}
}

// WithLogger logs every rejected candidate at debug level. The candidate is
// masked before logging.
func WithLogger(l logger.LoggerInterface) Option {
	return func(o *options) { o.log = l }
}

func WithReporter(r Reporter) Option {
	return func(o *options) { o.reporter = r }
}

// WithUnicodeFolding applies NFKC before normalization so full-width
// letters and digits are kept as their ASCII forms instead of being dropped.
func WithUnicodeFolding() Option {
	return func(o *options) { o.fold = true }
}

type Validator struct {
	lengths  map[string]int
	log      logger.LoggerInterface
	reporter Reporter
	fold     bool
}

var defaultValidator = &Validator{lengths: countryLengths}

func NewValidator(opts ...Option) (*Validator, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	v := &Validator{
		lengths:  countryLengths,
		log:      o.log,
		reporter: o.reporter,
		fold:     o.fold,
	}
	if o.lengthsSet {
		table, err := buildTable(o.lengths)
		if err != nil {
			return nil, err
		}
		v.lengths = table
	}
	if v.log != nil {
		v.log = v.log.With("component", "iban")
	}
	return v, nil
}

func buildTable(in map[string]int) (map[string]int, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidCountryTable)
	}
	out := make(map[string]int, len(in))
	for key, length := range in {
		code, ok := geo.NormalizeISO2(key)
		if !ok {
			return nil, fmt.Errorf("%w: bad country code %q", ErrInvalidCountryTable, key)
		}
		if length < minIBANLength || length > maxIBANLength {
			return nil, fmt.Errorf("%w: %s length %d out of range [%d, %d]",
				ErrInvalidCountryTable, code, length, minIBANLength, maxIBANLength)
		}
		if _, dup := out[code]; dup {
			return nil, fmt.Errorf("%w: duplicate country code %s", ErrInvalidCountryTable, code)
		}
		out[code] = length
	}
	return out, nil
}

// Validate reports whether raw is a valid IBAN after normalization.
func (v *Validator) Validate(raw string) bool {
	return v.Check(raw) == Valid
}

// Check classifies raw. The checksum is computed only when the length
// matches the country format.
func (v *Validator) Check(raw string) Result {
	if v.fold {
		raw = foldCompat(raw)
	}
	s := Normalize(raw)

	country, res := v.classify(s)
	v.observe(s, country, res)
	return res
}

// ValidLength reports whether a normalized candidate has the exact length
// listed for its country prefix.
func (v *Validator) ValidLength(normalized string) bool {
	_, want, ok := v.lookup(normalized)
	return ok && len(normalized) == want
}

// CountryLength returns the IBAN length for a country code, case-insensitive.
func (v *Validator) CountryLength(code string) (int, bool) {
	c, ok := geo.NormalizeISO2(code)
	if !ok {
		return 0, false
	}
	n, ok := v.lengths[c]
	return n, ok
}

// Countries returns the supported country codes in ascending order.
func (v *Validator) Countries() []string {
	return sortedCodes(v.lengths)
}

func (v *Validator) lookup(normalized string) (string, int, bool) {
	code, ok := geo.CountryPrefix(normalized)
	if !ok {
		return "", 0, false
	}
	n, ok := v.lengths[code]
	return code, n, ok
}

func (v *Validator) classify(s string) (string, Result) {
	if len(s) < 2 {
		return unknownCountryLabel, TooShort
	}
	code, want, ok := v.lookup(s)
	if !ok {
		return unknownCountryLabel, UnknownCountry
	}
	if len(s) != want {
		return code, WrongLength
	}
	if !ValidChecksum(s) {
		return code, ChecksumFailed
	}
	return code, Valid
}

func (v *Validator) observe(s, country string, res Result) {
	if v.reporter != nil {
		v.reporter.ObserveValidation(country, res.String())
	}
	if v.log != nil && res != Valid {
		v.log.Debugw("iban rejected",
			"iban", piiutil.MaskIBAN(s),
			"country", country,
			"result", res.String(),
		)
	}
}

// Validate reports whether raw is a valid IBAN using the built-in table.
func Validate(raw string) bool { return defaultValidator.Validate(raw) }

// Check classifies raw using the built-in table.
func Check(raw string) Result { return defaultValidator.Check(raw) }

// ValidLength checks a normalized candidate against the built-in table.
func ValidLength(normalized string) bool { return defaultValidator.ValidLength(normalized) }

func CountryLength(code string) (int, bool) { return defaultValidator.CountryLength(code) }

func Countries() []string { return defaultValidator.Countries() }
