package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-auditor/domain"
)

func TestDebtToIncomeRatio(t *testing.T) {
	ratio, err := DebtToIncomeRatio(62000, 22000)
	require.NoError(t, err)
	// Sin redondeo ni clamping: exactamente debt/income
	assert.Equal(t, 22000.0/62000.0, ratio)

	ratio, err = DebtToIncomeRatio(45000, 18000)
	require.NoError(t, err)
	assert.Equal(t, 0.40, ratio)

	ratio, err = DebtToIncomeRatio(50000, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, ratio)
}

func TestDebtToIncomeRatio_InvalidIncome(t *testing.T) {
	for _, income := range []float64{0, -1000} {
		_, err := DebtToIncomeRatio(income, 5000)
		require.Error(t, err)

		var invalid *domain.InvalidInputError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, "income", invalid.Field)
		assert.Equal(t, income, invalid.Value)
	}
}

func TestDebtToIncomeRatio_NegativeDebt(t *testing.T) {
	_, err := DebtToIncomeRatio(50000, -1)
	require.Error(t, err)

	var invalid *domain.InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "debt", invalid.Field)
}

func TestCreditScoreBandFor_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		want  domain.CreditScoreBand
	}{
		{300, domain.BandPoor},
		{579, domain.BandPoor},
		{580, domain.BandFair},
		{669, domain.BandFair},
		{670, domain.BandGood},
		{739, domain.BandGood},
		{740, domain.BandVeryGood},
		{799, domain.BandVeryGood},
		{800, domain.BandExcellent},
		{850, domain.BandExcellent},
	}

	for _, tc := range cases {
		band, err := CreditScoreBandFor(tc.score)
		require.NoError(t, err, "score %d", tc.score)
		assert.Equal(t, tc.want, band, "score %d", tc.score)
	}
}

func TestCreditScoreBandFor_TotalOverValidDomain(t *testing.T) {
	// Cada score válido cae exactamente en una banda, sin huecos
	for score := MinValidCreditScore; score <= MaxValidCreditScore; score++ {
		band, err := CreditScoreBandFor(score)
		require.NoError(t, err, "score %d", score)
		assert.Contains(t, []domain.CreditScoreBand{
			domain.BandPoor,
			domain.BandFair,
			domain.BandGood,
			domain.BandVeryGood,
			domain.BandExcellent,
		}, band, "score %d", score)
	}
}

func TestCreditScoreBandFor_OutOfRange(t *testing.T) {
	for _, score := range []int{299, 851, 0, -10, 1000} {
		_, err := CreditScoreBandFor(score)
		require.Error(t, err, "score %d", score)

		var invalid *domain.InvalidInputError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, "credit_score", invalid.Field)
	}
}
