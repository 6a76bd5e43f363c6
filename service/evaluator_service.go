package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"loan-auditor/domain"
	"loan-auditor/metrics"
	"loan-auditor/repository"
)

// NoDecisionsSentinel is returned by AuditReport when nothing has been
// evaluated yet.
const NoDecisionsSentinel = "No decisions recorded for audit."

// EvaluatorService runs the full evaluation pipeline per applicant and
// owns the audit log it appends to. Independent instances are fully
// independent audit sessions.
type EvaluatorService struct {
	thresholds Thresholds
	audit      repository.AuditLog
	logger     *zap.Logger
}

// NewEvaluatorService creates an evaluator writing to the given audit log.
func NewEvaluatorService(audit repository.AuditLog, thresholds Thresholds, logger *zap.Logger) *EvaluatorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvaluatorService{
		thresholds: thresholds,
		audit:      audit,
		logger:     logger,
	}
}

// Evaluate runs metrics, decision, risk and bias analysis and the
// explanation for one applicant, appends the resulting record to the
// audit log and returns it. Any upstream failure comes back as an
// *domain.EvaluationError naming the applicant.
func (s *EvaluatorService) Evaluate(applicant domain.Applicant) (domain.LoanDecision, error) {
	ratio, err := DebtToIncomeRatio(applicant.Income, applicant.Debt)
	if err != nil {
		return domain.LoanDecision{}, s.fail(applicant, err)
	}

	band, err := CreditScoreBandFor(applicant.CreditScore)
	if err != nil {
		return domain.LoanDecision{}, s.fail(applicant, err)
	}

	outcome := MakeDecision(s.thresholds, ratio, applicant.CreditScore)

	// Riesgo y sesgo son independientes entre sí
	riskFactors := AssessRiskFactors(s.thresholds, applicant.CreditScore, ratio, band)
	biasFlags := DetectBiasFlags(s.thresholds, applicant, outcome)

	decision := domain.LoanDecision{
		ID:                uuid.NewString(),
		ApplicantName:     applicant.Name,
		Decision:          outcome,
		DebtToIncomeRatio: ratio,
		CreditScoreBand:   band,
		Explanation:       BuildExplanation(outcome, ratio, applicant.CreditScore, band, riskFactors),
		BiasFlags:         biasFlags,
		RiskFactors:       riskFactors,
		EvaluatedAt:       time.Now().UTC(),
	}

	// A decision that never reaches the log never happened, so a failed
	// append fails the evaluation.
	if err := s.audit.Append(decision); err != nil {
		return domain.LoanDecision{}, s.fail(applicant, fmt.Errorf("append to audit log: %w", err))
	}

	metrics.DecisionsTotal.WithLabelValues(string(outcome)).Inc()
	metrics.BiasFlagsTotal.Add(float64(len(biasFlags)))
	metrics.RiskFactorsTotal.Add(float64(len(riskFactors)))

	s.logger.Info("applicant evaluated",
		zap.String("applicant", applicant.Name),
		zap.String("decision", string(outcome)),
		zap.Float64("dti", ratio),
		zap.Int("bias_flags", len(biasFlags)),
	)

	return decision, nil
}

func (s *EvaluatorService) fail(applicant domain.Applicant, err error) error {
	metrics.EvaluationErrorsTotal.Inc()
	s.logger.Warn("evaluation failed",
		zap.String("applicant", applicant.Name),
		zap.Error(err),
	)
	return &domain.EvaluationError{ApplicantName: applicant.Name, Err: err}
}

// EvaluateBatch evaluates every applicant in input order and returns one
// item per applicant, each carrying either a decision or that applicant's
// error. A malformed applicant never aborts the batch and is never
// silently dropped.
func (s *EvaluatorService) EvaluateBatch(applicants []domain.Applicant) []domain.BatchItem {
	items := make([]domain.BatchItem, 0, len(applicants))
	for _, applicant := range applicants {
		item := domain.BatchItem{ApplicantName: applicant.Name}

		decision, err := s.Evaluate(applicant)
		if err != nil {
			item.Err = err
		} else {
			item.Decision = &decision
		}
		items = append(items, item)
	}
	return items
}

// AuditReport renders the audit trail summary: decisions by outcome and
// bias flags by message, each in first-seen order.
func (s *EvaluatorService) AuditReport() (string, error) {
	decisions, err := s.audit.Decisions()
	if err != nil {
		return "", fmt.Errorf("load audit log: %w", err)
	}
	if len(decisions) == 0 {
		return NoDecisionsSentinel, nil
	}

	// Conteos en orden de primera aparición
	outcomeOrder := []domain.DecisionOutcome{}
	outcomeCounts := map[domain.DecisionOutcome]int{}
	flagOrder := []string{}
	flagCounts := map[string]int{}
	totalFlags := 0

	for _, d := range decisions {
		if _, seen := outcomeCounts[d.Decision]; !seen {
			outcomeOrder = append(outcomeOrder, d.Decision)
		}
		outcomeCounts[d.Decision]++

		for _, flag := range d.BiasFlags {
			if _, seen := flagCounts[flag]; !seen {
				flagOrder = append(flagOrder, flag)
			}
			flagCounts[flag]++
			totalFlags++
		}
	}

	var b strings.Builder
	b.WriteString("=== LOAN APPROVAL AUDIT REPORT ===\n\n")
	b.WriteString("Decision Summary:\n")
	for _, outcome := range outcomeOrder {
		fmt.Fprintf(&b, "  %s: %d\n", outcome, outcomeCounts[outcome])
	}

	if totalFlags > 0 {
		fmt.Fprintf(&b, "\nBias Flags Raised: %d\n", totalFlags)
		for _, flag := range flagOrder {
			fmt.Fprintf(&b, "  %s: %d instances\n", flag, flagCounts[flag])
		}
	}

	return b.String(), nil
}

// Decisions exposes the full audit log in insertion order.
func (s *EvaluatorService) Decisions() ([]domain.LoanDecision, error) {
	return s.audit.Decisions()
}
