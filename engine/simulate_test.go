package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate_ReferenceScenario(t *testing.T) {
	s := referenceScenario()
	s.MonthlyIncome = 4000

	result := Simulate(s)

	assert.Equal(t, s, result.Scenario)
	require.Len(t, result.Schedule, 240)
	assert.InDelta(t, (s.Loan.MonthlyPayment+64.5)/4000, result.LoanSummary.DebtRatio, tolerance)
	assert.InDelta(t, 0.5530173437387864, float64(result.SelfFinancing.SelfFinancingRatio), 1e-9)
	assert.InDelta(t, -155.43845006804986, result.Taxation.NetResultAfterTax, 1e-6)
	assert.InDelta(t, 11807.150867548822, result.Resale.CapitalGainsTax, 1e-6)
	assert.InDelta(t, 66359.02735921885, result.Resale.RemainingBalance, 1e-6)
	assert.InDelta(t, 0.06362790697674418, result.Yields.GrossYield, 1e-12)
	assert.True(t, result.Yields.PaybackYears.IsInf())
	assert.InDelta(t, 0.010861598836194355, result.IRR.Rate, 1e-9)
	assert.Empty(t, result.Explanation)
}

func TestSimulate_MatchesIndividualCalculations(t *testing.T) {
	s := referenceScenario()
	s.Tax.IncomeTaxRate = 0.41
	s.Rental.MonthlyRent = 2200
	s.SaleCosts = 7000

	result := Simulate(s)

	assert.Equal(t, SelfFinancing(s.Property, s.Loan, s.Rental), result.SelfFinancing)
	assert.Equal(t, Taxation(s.Property, s.Loan, s.Rental, s.Tax, s.HoldingYears), result.Taxation)
	assert.Equal(t, ProjectResale(s.Property, s.Loan, s.HoldingYears, s.AppreciationRate, s.SaleCosts), result.Resale)
	assert.Equal(t, Yields(s.Property, s.Loan, s.Rental, s.Tax, s.AppreciationRate, s.HoldingYears), result.Yields)
}

func TestSimulate_IsIdempotent(t *testing.T) {
	s := referenceScenario()

	first := Simulate(s)
	second := Simulate(s)

	assert.Equal(t, first, second)
}
