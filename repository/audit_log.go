package repository

import "loan-auditor/domain"

// AuditLog is the append-only record of every decision one evaluator
// instance has made. Implementations must keep insertion order and never
// mutate a decision after it is appended.
type AuditLog interface {
	Append(decision domain.LoanDecision) error
	Decisions() ([]domain.LoanDecision, error)
}
