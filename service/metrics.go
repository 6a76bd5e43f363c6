package service

import (
	"loan-auditor/domain"
)

// DebtToIncomeRatio computes annualized debt over annual gross income.
// No upper bound is enforced; a ratio above 1.0 is a valid (terrible) input.
func DebtToIncomeRatio(income, debt float64) (float64, error) {
	if income <= 0 {
		return 0, &domain.InvalidInputError{
			Field: "income", Value: income, Reason: "income must be positive",
		}
	}
	if debt < 0 {
		return 0, &domain.InvalidInputError{
			Field: "debt", Value: debt, Reason: "debt cannot be negative",
		}
	}
	return debt / income, nil
}

// CreditScoreBandFor classifies a FICO score into its quality band.
// The intervals are contiguous over [300,850], so once the range check
// passes every score lands in exactly one band.
func CreditScoreBandFor(score int) (domain.CreditScoreBand, error) {
	if score < MinValidCreditScore || score > MaxValidCreditScore {
		return "", &domain.InvalidInputError{
			Field: "credit_score", Value: float64(score),
			Reason: "credit score must be between 300 and 850",
		}
	}

	switch {
	case score <= 579:
		return domain.BandPoor, nil
	case score <= 669:
		return domain.BandFair, nil
	case score <= 739:
		return domain.BandGood, nil
	case score <= 799:
		return domain.BandVeryGood, nil
	default:
		return domain.BandExcellent, nil
	}
}
