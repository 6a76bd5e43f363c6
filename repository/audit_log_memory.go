package repository

import (
	"sync"

	"loan-auditor/domain"
)

// MemoryAuditLog is the default in-memory AuditLog. The log lives for the
// lifetime of the process; persistence is a collaborator's concern.
type MemoryAuditLog struct {
	mu        sync.Mutex
	decisions []domain.LoanDecision
}

// NewMemoryAuditLog creates an empty in-memory audit log.
func NewMemoryAuditLog() *MemoryAuditLog {
	return &MemoryAuditLog{
		decisions: []domain.LoanDecision{},
	}
}

// Append records a decision. Appends are serialized so that concurrent
// evaluations against one evaluator keep a total completion order and no
// decision is lost or duplicated.
func (l *MemoryAuditLog) Append(decision domain.LoanDecision) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.decisions = append(l.decisions, decision)
	return nil
}

// Decisions returns a copy of the log in insertion order. Callers get
// their own slice; the log itself is never exposed for mutation.
func (l *MemoryAuditLog) Decisions() ([]domain.LoanDecision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.LoanDecision, len(l.decisions))
	copy(out, l.decisions)
	return out, nil
}
