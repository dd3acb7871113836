// Package observability exposes prometheus instrumentation for the intake
// pipeline: how many records each flow constructs, how often construction
// fails validation, and how catalog lookups resolve.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Match outcome label values.
const (
	OutcomeMatched = "matched"
	OutcomeNoMatch = "no_match"
)

// Metrics bundles the intake counters. A nil *Metrics is valid and records
// nothing, so callers never need to guard instrumentation sites.
type Metrics struct {
	intakes     *prometheus.CounterVec
	validations *prometheus.CounterVec
	matches     *prometheus.CounterVec
}

// New creates the intake metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		intakes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "labscout",
			Name:      "intakes_total",
			Help:      "Records successfully constructed, by intake flow.",
		}, []string{"flow"}),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "labscout",
			Name:      "validation_failures_total",
			Help:      "Record constructions rejected at the validation gate, by intake flow.",
		}, []string{"flow"}),
		matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "labscout",
			Name:      "matches_total",
			Help:      "Catalog lookups by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.intakes, m.validations, m.matches)
	return m
}

// RecordIntake counts a successfully constructed record.
func (m *Metrics) RecordIntake(flow string) {
	if m == nil {
		return
	}
	m.intakes.WithLabelValues(flow).Inc()
}

// RecordValidationFailure counts a rejected construction attempt.
func (m *Metrics) RecordValidationFailure(flow string) {
	if m == nil {
		return
	}
	m.validations.WithLabelValues(flow).Inc()
}

// RecordMatch counts a catalog lookup outcome.
func (m *Metrics) RecordMatch(matched bool) {
	if m == nil {
		return
	}
	outcome := OutcomeNoMatch
	if matched {
		outcome = OutcomeMatched
	}
	m.matches.WithLabelValues(outcome).Inc()
}
