package metrics

import (
	"errors"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// ValidationMetrics counts IBAN validation outcomes by country and result.
// It satisfies iban.Reporter.
type ValidationMetrics struct {
	total *prometheus.CounterVec
}

func NewValidationMetrics(namespace string) *ValidationMetrics {
	return &ValidationMetrics{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: strings.TrimSpace(namespace),
			Subsystem: "iban",
			Name:      "validations_total",
			Help:      "IBAN validations by country code and result.",
		}, []string{"country", "result"}),
	}
}

// Register adds the collector to reg. When an identical collector is
// already registered, that one is reused so several validators can share
// one series set.
func (m *ValidationMetrics) Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if err := reg.Register(m.total); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				m.total = existing
				return nil
			}
		}
		return err
	}
	return nil
}

func (m *ValidationMetrics) ObserveValidation(country, result string) {
	if m == nil || m.total == nil {
		return
	}
	m.total.WithLabelValues(country, result).Inc()
}
