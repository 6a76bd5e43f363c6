package domain

import "time"

// Applicant is one loan application as received from the caller.
// Age is optional and only feeds the bias heuristics.
type Applicant struct {
	Name        string  `json:"name"`
	Income      float64 `json:"income"`
	Debt        float64 `json:"debt"`
	CreditScore int     `json:"credit_score"`
	Age         int     `json:"age,omitempty"`
}

// DecisionOutcome is the closed set of decisions the engine can produce.
type DecisionOutcome string

const (
	DecisionApproved    DecisionOutcome = "APPROVED"
	DecisionConditional DecisionOutcome = "CONDITIONAL_APPROVAL"
	DecisionDenied      DecisionOutcome = "DENIED"
)

// CreditScoreBand groups a FICO score into ordered quality tiers.
type CreditScoreBand string

const (
	BandPoor      CreditScoreBand = "Poor"
	BandFair      CreditScoreBand = "Fair"
	BandGood      CreditScoreBand = "Good"
	BandVeryGood  CreditScoreBand = "Very Good"
	BandExcellent CreditScoreBand = "Excellent"
)

// LoanDecision is the immutable record appended to the audit log,
// one per evaluated applicant.
type LoanDecision struct {
	ID                string          `json:"id"`
	ApplicantName     string          `json:"applicant_name"`
	Decision          DecisionOutcome `json:"decision"`
	DebtToIncomeRatio float64         `json:"debt_to_income_ratio"`
	CreditScoreBand   CreditScoreBand `json:"credit_score_band"`
	Explanation       string          `json:"explanation"`
	BiasFlags         []string        `json:"bias_flags,omitempty"`
	RiskFactors       []string        `json:"risk_factors,omitempty"`
	EvaluatedAt       time.Time       `json:"evaluated_at"`
}

// BatchItem is the per-applicant result of a batch evaluation: either a
// decision or the error that applicant produced, never neither.
type BatchItem struct {
	ApplicantName string
	Decision      *LoanDecision
	Err           error
}
