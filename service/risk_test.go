package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-auditor/domain"
)

func TestAssessRiskFactors_NoneForStrongApplicant(t *testing.T) {
	factors := AssessRiskFactors(DefaultThresholds(), 720, 0.25, domain.BandGood)
	assert.Empty(t, factors)
}

func TestAssessRiskFactors_HighDTIIncludesPercentages(t *testing.T) {
	factors := AssessRiskFactors(DefaultThresholds(), 700, 0.355, domain.BandGood)
	require.Len(t, factors, 1)
	assert.Equal(t, "High debt-to-income ratio: 35.5% exceeds 30% threshold", factors[0])
}

func TestAssessRiskFactors_LowScore(t *testing.T) {
	factors := AssessRiskFactors(DefaultThresholds(), 640, 0.25, domain.BandFair)
	require.Len(t, factors, 1)
	assert.Equal(t, "Credit score 640 below minimum 650", factors[0])
}

func TestAssessRiskFactors_ExtremeDTI(t *testing.T) {
	// Ratio 0.41 dispara tanto el factor de DTI alto como el extremo
	factors := AssessRiskFactors(DefaultThresholds(), 700, 0.41, domain.BandGood)
	require.Len(t, factors, 2)
	assert.Contains(t, factors[1], "Extremely high debt burden")
}

func TestAssessRiskFactors_ExactlyAtExtremeThreshold(t *testing.T) {
	// 0.40 exacto ya cuenta como carga extrema
	factors := AssessRiskFactors(DefaultThresholds(), 640, 0.40, domain.BandFair)
	require.Len(t, factors, 3)
	assert.Contains(t, factors[2], "Extremely high debt burden")
}

func TestAssessRiskFactors_AllFour(t *testing.T) {
	factors := AssessRiskFactors(DefaultThresholds(), 450, 0.66, domain.BandPoor)
	require.Len(t, factors, 4)
	assert.Contains(t, factors[0], "High debt-to-income ratio")
	assert.Contains(t, factors[1], "below minimum")
	assert.Contains(t, factors[2], "Poor credit history")
	assert.Contains(t, factors[3], "Extremely high debt burden")
}
