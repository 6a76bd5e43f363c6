package service

import "loan-auditor/domain"

// Bias flag messages. Advisory heuristics only: a flag marks a decision
// pattern that warrants human review, it is not proof of discrimination.
const (
	FlagAgeBiasRisk = "AGE_BIAS_RISK: Young applicant denial - verify decision not age-based"

	FlagIncomeBiasRisk = "INCOME_BIAS_RISK: Lower-income denial - ensure decision based on DTI, not absolute income"

	FlagCreditScoreLimitation = "CREDIT_SCORE_LIMITATION: Fair credit score does not equal inability to repay - consider full financial picture"

	FlagMultipleBiasIndicators = "MULTIPLE_BIAS_INDICATORS: Decision requires human oversight for fairness review"
)

// DetectBiasFlags scans an applicant and the tentative decision for
// suspicious patterns. Computed in two phases: first the primary risk
// flags and the score advisory, then the escalation flag derived from how
// many primary risk flags fired. The advisory never counts toward
// escalation.
func DetectBiasFlags(t Thresholds, applicant domain.Applicant, outcome domain.DecisionOutcome) []string {
	denied := outcome == domain.DecisionDenied

	// Fase 1: flags primarios
	riskFlags := 0
	var flags []string

	if denied && applicant.Age < t.YoungApplicantAge {
		flags = append(flags, FlagAgeBiasRisk)
		riskFlags++
	}

	if denied && applicant.Income < t.LowIncomeCutoff {
		flags = append(flags, FlagIncomeBiasRisk)
		riskFlags++
	}

	if applicant.CreditScore >= t.AdvisoryScoreFloor && applicant.CreditScore < t.MinCreditScore {
		flags = append(flags, FlagCreditScoreLimitation)
	}

	// Fase 2: escalamiento derivado de los flags primarios
	if denied && riskFlags >= 2 {
		flags = append(flags, FlagMultipleBiasIndicators)
	}

	return flags
}
