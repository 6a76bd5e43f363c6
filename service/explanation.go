package service

import (
	"fmt"
	"strings"

	"loan-auditor/domain"
)

// BuildExplanation renders the decision rationale. Keyed only on the
// outcome plus the metrics that produced it, so the same inputs always
// yield the same text; that determinism is what makes the audit log
// replayable.
func BuildExplanation(
	outcome domain.DecisionOutcome,
	ratio float64,
	creditScore int,
	band domain.CreditScoreBand,
	riskFactors []string,
) string {
	baseInfo := fmt.Sprintf("DTI: %.1f%%, Credit Score: %d (%s)", ratio*100, creditScore, band)

	switch outcome {
	case domain.DecisionApproved:
		return fmt.Sprintf("APPROVED - %s. Meets all standard lending criteria.", baseInfo)
	case domain.DecisionConditional:
		return fmt.Sprintf("CONDITIONAL APPROVAL - %s. Requires additional verification or terms adjustment.", baseInfo)
	default:
		riskSummary := "Multiple risk factors identified"
		if len(riskFactors) > 0 {
			riskSummary = strings.Join(riskFactors, "; ")
		}
		return fmt.Sprintf("DENIED - %s. Risk factors: %s", baseInfo, riskSummary)
	}
}
