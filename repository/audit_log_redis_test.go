package repository

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-auditor/domain"
)

func TestRedisAuditLog_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	auditLog := NewRedisAuditLog(mr.Addr())

	decision := domain.LoanDecision{
		ID:                "dec-1",
		ApplicantName:     "Alice",
		Decision:          domain.DecisionDenied,
		DebtToIncomeRatio: 0.3548,
		CreditScoreBand:   domain.BandGood,
		Explanation:       "DENIED - DTI: 35.5%, Credit Score: 710 (Good). Risk factors: High debt-to-income ratio: 35.5% exceeds 30% threshold",
		BiasFlags:         []string{"AGE_BIAS_RISK: Young applicant denial - verify decision not age-based"},
		RiskFactors:       []string{"High debt-to-income ratio: 35.5% exceeds 30% threshold"},
		EvaluatedAt:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, auditLog.Append(decision))

	decisions, err := auditLog.Decisions()
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	assert.Equal(t, decision, decisions[0])
}

func TestRedisAuditLog_OrderPreserved(t *testing.T) {
	mr := miniredis.RunT(t)
	auditLog := NewRedisAuditLog(mr.Addr())

	require.NoError(t, auditLog.Append(domain.LoanDecision{ID: "a", Decision: domain.DecisionDenied}))
	require.NoError(t, auditLog.Append(domain.LoanDecision{ID: "b", Decision: domain.DecisionApproved}))
	require.NoError(t, auditLog.Append(domain.LoanDecision{ID: "c", Decision: domain.DecisionConditional}))

	decisions, err := auditLog.Decisions()
	require.NoError(t, err)
	require.Len(t, decisions, 3)
	assert.Equal(t, "a", decisions[0].ID)
	assert.Equal(t, "b", decisions[1].ID)
	assert.Equal(t, "c", decisions[2].ID)
}

func TestRedisAuditLog_EmptyLog(t *testing.T) {
	mr := miniredis.RunT(t)
	auditLog := NewRedisAuditLog(mr.Addr())

	decisions, err := auditLog.Decisions()
	require.NoError(t, err)
	assert.Empty(t, decisions)
}

func TestRedisAuditLog_AppendFailsWhenServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	auditLog := NewRedisAuditLog(mr.Addr())
	mr.Close()

	err := auditLog.Append(domain.LoanDecision{ID: "a"})
	assert.Error(t, err)
}
