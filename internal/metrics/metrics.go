// Package metrics holds the Prometheus collectors recorded for engine runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run outcomes used as the "outcome" label.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
)

// Metrics groups the collectors of one registry.
type Metrics struct {
	Runs         *prometheus.CounterVec
	Steps        *prometheus.CounterVec
	StepKinds    *prometheus.CounterVec
	RunDuration  *prometheus.HistogramVec
	LastRunSteps *prometheus.GaugeVec
}

// New registers all collectors with reg. Passing a fresh
// prometheus.NewRegistry() keeps tests isolated from the default registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "algoviz_runs_total",
			Help: "Total number of engine runs, labelled by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),

		Steps: f.NewCounterVec(prometheus.CounterOpts{
			Name: "algoviz_steps_total",
			Help: "Total number of trace steps emitted, labelled by algorithm.",
		}, []string{"algorithm"}),

		StepKinds: f.NewCounterVec(prometheus.CounterOpts{
			Name: "algoviz_step_kinds_total",
			Help: "Trace steps emitted, labelled by algorithm and step kind.",
		}, []string{"algorithm", "kind"}),

		RunDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "algoviz_run_duration_ms",
			Help:    "Engine run latency in milliseconds, validation included.",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 25, 50, 100, 250, 1000},
		}, []string{"algorithm"}),

		LastRunSteps: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "algoviz_last_run_steps",
			Help: "Number of steps in the most recent successful trace.",
		}, []string{"algorithm"}),
	}
}

// ObserveRun records one finished run. kinds maps step kind to count and is
// nil for failed runs.
func (m *Metrics) ObserveRun(algorithm, outcome string, took time.Duration, kinds map[string]int) {
	m.Runs.WithLabelValues(algorithm, outcome).Inc()
	m.RunDuration.WithLabelValues(algorithm).Observe(float64(took.Microseconds()) / 1000)
	if outcome != OutcomeOK {
		return
	}
	total := 0
	for kind, n := range kinds {
		m.StepKinds.WithLabelValues(algorithm, kind).Add(float64(n))
		total += n
	}
	m.Steps.WithLabelValues(algorithm).Add(float64(total))
	m.LastRunSteps.WithLabelValues(algorithm).Set(float64(total))
}
