package sysctld

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sysctld"

// Outcome label values of the operation counter
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
)

// Metrics the collectors updated by the service and the dispatcher
type Metrics struct {
	operations   *prometheus.CounterVec
	unrecognized prometheus.Counter
}

// NewMetrics creates the collectors and registers them to reg when it is
// not nil
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "System control operations by verb and outcome",
		}, []string{"verb", "outcome"}),
		unrecognized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_unrecognized_total",
			Help:      "Commands that matched no trigger",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.operations, m.unrecognized)
	}
	return m
}

func (m *Metrics) observe(verb, outcome string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(verb, outcome).Inc()
}

func (m *Metrics) observeUnrecognized() {
	if m == nil {
		return
	}
	m.unrecognized.Inc()
}
