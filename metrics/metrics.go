// Package metrics exposes the engine's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DecisionsTotal counts evaluated applicants by outcome.
	DecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "loan_auditor",
		Name:      "decisions_total",
		Help:      "Loan decisions produced, labeled by outcome.",
	}, []string{"outcome"})

	// BiasFlagsTotal counts bias flags raised across all evaluations.
	BiasFlagsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "loan_auditor",
		Name:      "bias_flags_total",
		Help:      "Bias flags raised across all evaluations.",
	})

	// RiskFactorsTotal counts risk factors identified across all evaluations.
	RiskFactorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "loan_auditor",
		Name:      "risk_factors_total",
		Help:      "Risk factors identified across all evaluations.",
	})

	// EvaluationErrorsTotal counts applicants rejected for invalid input.
	EvaluationErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "loan_auditor",
		Name:      "evaluation_errors_total",
		Help:      "Evaluations that failed validation.",
	})
)
