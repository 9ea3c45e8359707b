package errors

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestWithDetail_CopyOnWrite(t *testing.T) {
	base := InvalidArgument().WithDetail("country", "NL")
	next := base.WithDetail("country", "DE")

	assert.Equal(t, "NL", base.Details["country"])
	assert.Equal(t, "DE", next.Details["country"])
}

func TestWithDetails_EmptyIsNoop(t *testing.T) {
	e := InvalidArgument()
	assert.Nil(t, e.WithDetails(nil).Details)
	assert.Equal(t, map[string]string{"a": "1"}, e.WithDetails(map[string]string{"a": "1"}).Details)
}

func TestWithViolations_DoesNotAlias(t *testing.T) {
	base := InvalidArgument().WithViolations(FieldViolation{Field: "iban", Reason: "too_short"})
	a := base.WithViolations(FieldViolation{Field: "bic", Reason: "invalid"})
	b := base.WithViolations(FieldViolation{Field: "name", Reason: "required"})

	require.Len(t, base.Violations, 1)
	require.Len(t, a.Violations, 2)
	require.Len(t, b.Violations, 2)
	assert.Equal(t, "bic", a.Violations[1].Field)
	assert.Equal(t, "name", b.Violations[1].Field)
}

func TestError_JSON(t *testing.T) {
	e := InvalidField("iban", "iban", "checksum_failed", "checksum mismatch")

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(e.Error()), &got))
	assert.Equal(t, "InvalidArgument", got["code"])
	assert.Equal(t, "invalid_iban", got["reason"])
	assert.Equal(t, "iban", got["domain"])
	assert.Equal(t, "Invalid argument", got["message"])
}

func TestInvalidField(t *testing.T) {
	e := InvalidField("payments", "iban", "wrong_length", "")
	assert.Equal(t, codes.InvalidArgument, e.Code)
	assert.Equal(t, Reason("invalid_iban"), e.Reason)
	assert.Equal(t, "payments", e.Domain)
	assert.Equal(t, []FieldViolation{{Field: "iban", Reason: "wrong_length"}}, e.Violations)
}
