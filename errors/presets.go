package errors

import "google.golang.org/grpc/codes"

// Неизменяемые пресеты.
func Unknown() ErrorResponse {
	return New("Unknown error occurred", codes.Unknown, nil).WithReason("unknown")
}

func InvalidArgument() ErrorResponse {
	return New("Invalid argument", codes.InvalidArgument, nil).WithReason("invalid_argument")
}

func ValidationViolations(v []FieldViolation) ErrorResponse {
	return InvalidArgument().WithReason("validation_failed").WithViolations(v...)
}

// InvalidField reports a single rejected field, e.g. an account number that
// failed its checksum.
func InvalidField(domain, field, reason, description string) ErrorResponse {
	return InvalidArgument().
		WithReason("invalid_"+field).
		WithDomain(domain).
		WithViolations(FieldViolation{Field: field, Reason: reason, Description: description})
}
