package service

import (
	"fmt"

	"loan-auditor/domain"
)

// AssessRiskFactors lists the risk factors present in the applicant's
// metrics. Every check runs independently of the decision outcome; the
// factors are informative metadata, never decision inputs.
func AssessRiskFactors(t Thresholds, creditScore int, ratio float64, band domain.CreditScoreBand) []string {
	var factors []string

	if ratio > t.DTIApprovalMax {
		factors = append(factors, fmt.Sprintf(
			"High debt-to-income ratio: %.1f%% exceeds %.0f%% threshold",
			ratio*100, t.DTIApprovalMax*100,
		))
	}

	if creditScore < t.MinCreditScore {
		factors = append(factors, fmt.Sprintf(
			"Credit score %d below minimum %d", creditScore, t.MinCreditScore,
		))
	}

	if band == domain.BandPoor {
		factors = append(factors, "Poor credit history indicates elevated default risk")
	}

	if ratio >= t.ExtremeDTI {
		factors = append(factors, "Extremely high debt burden may impact repayment capacity")
	}

	return factors
}
