package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"

	errs "github.com/vortex-fintech/go-iban/errors"
	"github.com/vortex-fintech/go-iban/geo"
	"github.com/vortex-fintech/go-iban/iban"
)

var v *validator.Validate

func init() {
	v = validator.New()
	mustRegister("iban", func(fl validator.FieldLevel) bool {
		return iban.Validate(fl.Field().String())
	})
	mustRegister("iso2", func(fl validator.FieldLevel) bool {
		return geo.IsValidISO2(fl.Field().String())
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func Instance() *validator.Validate {
	return v
}

// Validate returns field -> reason code, or nil when the struct is valid.
func Validate(i any) map[string]string {
	if err := v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			out := make(map[string]string, len(ve))
			for _, e := range ve {
				out[e.Field()] = mapTagToCode(e.Tag())
			}
			return out
		}
		return map[string]string{"_error": "validation_failed"}
	}
	return nil
}

// ValidateErr is Validate shaped as an errors.ErrorResponse with field
// violations, ready for ToGRPC.
func ValidateErr(i any) error {
	err := v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return errs.FromPlayground(ve, tagMap)
	}
	return errs.InvalidArgument().WithReason("validation_failed")
}
