// Package iban validates International Bank Account Numbers.
//
// A candidate is normalized (everything except ASCII letters and digits is
// dropped), its country prefix is looked up in a fixed table of IBAN
// lengths, and the ISO 7064 MOD 97-10 checksum is verified:
//
//	iban.Validate("NL28 RABO 3154 1720 25") // true
//	iban.Check("NL28RABO315417202433")      // WrongLength
//
// Package-level functions share one immutable Validator built over the
// compiled-in table. NewValidator accepts options for a custom table,
// logging of rejections and outcome reporting. A Validator is safe for
// concurrent use.
package iban
