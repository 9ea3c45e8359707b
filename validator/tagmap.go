package validator

var tagMap = map[string]string{
	"required":  "required",
	"omitempty": "optional",
	"iban":      "invalid_iban",
	"iso2":      "invalid_country",
	"email":     "invalid_email",
	"max":       "too_long",
	"min":       "too_short",
	"len":       "invalid_length",
	"oneof":     "invalid_choice",
	"alpha":     "only_letters_allowed",
	"alphanum":  "only_letters_and_digits_allowed",
	"numeric":   "only_numbers_allowed",
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}
