package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the adjustment API.
type Metrics struct {
	// AdjustmentsCreated counts persisted adjustments by reason code.
	AdjustmentsCreated *prometheus.CounterVec

	// WarningsEmitted counts advisory warnings returned, by warning code and endpoint.
	WarningsEmitted *prometheus.CounterVec

	// LoginAttempts counts sign-in attempts by result.
	LoginAttempts *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AdjustmentsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "adjustments_created_total",
				Help:      "Total number of adjustments saved",
			},
			[]string{"reason"},
		),
		WarningsEmitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "adjustment_warnings_total",
				Help:      "Total number of advisory warnings returned",
			},
			[]string{"code", "source"},
		),
		LoginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_attempts_total",
				Help:      "Total number of manager sign-in attempts",
			},
			[]string{"result"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.AdjustmentsCreated, m.WarningsEmitted, m.LoginAttempts)
	}
	return m
}

// IncAdjustment is safe on a nil receiver.
func (m *Metrics) IncAdjustment(reason string) {
	if m == nil {
		return
	}
	m.AdjustmentsCreated.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncWarning(code, source string) {
	if m == nil {
		return
	}
	m.WarningsEmitted.WithLabelValues(code, source).Inc()
}

func (m *Metrics) IncLogin(result string) {
	if m == nil {
		return
	}
	m.LoginAttempts.WithLabelValues(result).Inc()
}
