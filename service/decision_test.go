package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"loan-auditor/domain"
)

func TestMakeDecision_RulePriority(t *testing.T) {
	thresholds := DefaultThresholds()

	// Un solicitante que cumple la regla de aprobación total también
	// cumple ambas reglas condicionales; la primera debe ganar.
	outcome := MakeDecision(thresholds, 0.20, 700)
	assert.Equal(t, domain.DecisionApproved, outcome)
}

func TestMakeDecision_Table(t *testing.T) {
	thresholds := DefaultThresholds()

	cases := []struct {
		name  string
		ratio float64
		score int
		want  domain.DecisionOutcome
	}{
		{"low dti, strong score", 0.29, 650, domain.DecisionApproved},
		{"good score, slightly high dti", 0.34, 650, domain.DecisionConditional},
		{"low dti, fair score", 0.29, 620, domain.DecisionConditional},
		{"low dti, score just under conditional floor", 0.29, 619, domain.DecisionDenied},
		{"dti at approval threshold not approved", 0.30, 700, domain.DecisionConditional},
		{"dti at conditional threshold denied", 0.35, 700, domain.DecisionDenied},
		{"high dti, weak score", 0.50, 600, domain.DecisionDenied},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MakeDecision(thresholds, tc.ratio, tc.score))
		})
	}
}

// Regression: income 62000, debt 22000, score 710. The ratio (~0.3548)
// misses both DTI cutoffs, so a good score alone cannot save it.
func TestMakeDecision_ElevatedDTIGoodScoreDenied(t *testing.T) {
	thresholds := DefaultThresholds()

	ratio, err := DebtToIncomeRatio(62000, 22000)
	assert.NoError(t, err)
	assert.InDelta(t, 0.3548, ratio, 0.0001)

	assert.Equal(t, domain.DecisionDenied, MakeDecision(thresholds, ratio, 710))
}

// Regression: income 45000, debt 18000, score 640. DTI is exactly 0.40
// and the score is under the minimum, so nothing matches.
func TestMakeDecision_BothCriteriaMissedDenied(t *testing.T) {
	thresholds := DefaultThresholds()

	ratio, err := DebtToIncomeRatio(45000, 18000)
	assert.NoError(t, err)
	assert.Equal(t, 0.40, ratio)

	assert.Equal(t, domain.DecisionDenied, MakeDecision(thresholds, ratio, 640))
}

func TestMakeDecision_OverriddenThresholds(t *testing.T) {
	thresholds := DefaultThresholds()
	thresholds.MinCreditScore = 700

	// 650 ya no alcanza el mínimo, pero sí el piso condicional
	assert.Equal(t, domain.DecisionConditional, MakeDecision(thresholds, 0.20, 650))
	assert.Equal(t, domain.DecisionApproved, MakeDecision(thresholds, 0.20, 700))
}
