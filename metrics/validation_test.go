package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vortex-fintech/go-iban/iban"
)

var _ iban.Reporter = (*ValidationMetrics)(nil)

func TestValidationMetrics_WithValidator(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewValidationMetrics("payments")
	require.NoError(t, m.Register(reg))

	v, err := iban.NewValidator(iban.WithReporter(m))
	require.NoError(t, err)

	v.Validate("NL28 RABO 3154 1720 25")
	v.Validate("NL28RABO3154172025")
	v.Validate("NL28RABO315417312433")
	v.Validate("ZZ28RABO3154172025")
	v.Validate("")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.total.WithLabelValues("NL", "valid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.total.WithLabelValues("NL", "wrong_length")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.total.WithLabelValues("unknown", "unknown_country")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.total.WithLabelValues("unknown", "too_short")))

	const want = `
# HELP payments_iban_validations_total IBAN validations by country code and result.
# TYPE payments_iban_validations_total counter
payments_iban_validations_total{country="NL",result="valid"} 2
payments_iban_validations_total{country="NL",result="wrong_length"} 1
payments_iban_validations_total{country="unknown",result="too_short"} 1
payments_iban_validations_total{country="unknown",result="unknown_country"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "payments_iban_validations_total"))
}

func TestValidationMetrics_RegisterTwiceSharesSeries(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	a := NewValidationMetrics("x")
	b := NewValidationMetrics("x")
	require.NoError(t, a.Register(reg))
	require.NoError(t, b.Register(reg))

	a.ObserveValidation("DE", "valid")
	b.ObserveValidation("DE", "valid")

	assert.Equal(t, 2.0, testutil.ToFloat64(a.total.WithLabelValues("DE", "valid")))
}

func TestValidationMetrics_RegisterConflict(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	clash := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "y",
		Subsystem: "iban",
		Name:      "validations_total",
		Help:      "different help",
	})
	require.NoError(t, reg.Register(clash))

	assert.Error(t, NewValidationMetrics("y").Register(reg))
}

func TestValidationMetrics_NilSafe(t *testing.T) {
	t.Parallel()

	var m *ValidationMetrics
	m.ObserveValidation("NL", "valid")
}
