package service

import "loan-auditor/domain"

// MakeDecision maps the computed metrics to an outcome. Rules are checked
// in priority order and the first match wins: the full-approval rule must
// run before either conditional rule, since any applicant who satisfies it
// also satisfies them.
func MakeDecision(t Thresholds, ratio float64, creditScore int) domain.DecisionOutcome {
	meetsDTI := ratio < t.DTIApprovalMax
	meetsScore := creditScore >= t.MinCreditScore

	switch {
	case meetsDTI && meetsScore:
		return domain.DecisionApproved
	case meetsScore && ratio < t.DTIConditionalMax:
		// Buen score con DTI ligeramente elevado
		return domain.DecisionConditional
	case meetsDTI && creditScore >= t.ConditionalScore:
		// Buen DTI con score regular
		return domain.DecisionConditional
	default:
		return domain.DecisionDenied
	}
}
