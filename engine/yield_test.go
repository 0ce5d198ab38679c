package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYields_ReferenceScenario(t *testing.T) {
	s := referenceScenario()

	result := Yields(s.Property, s.Loan, s.Rental, s.Tax, s.AppreciationRate, s.HoldingYears)

	assert.InDelta(t, 215000, result.TotalInvested, tolerance)
	assert.InDelta(t, 0.06362790697674418, result.GrossYield, 1e-12)
	assert.InDelta(t, 0.01872372093023256, result.NetYield, 1e-12)
	assert.InDelta(t, -0.000722969535200232, result.NetOfTaxYield, 1e-12)
	assert.InDelta(t, -0.7534541517170231, result.ROI, 1e-9)
	assert.True(t, result.PaybackYears.IsInf(), "negative cash flow never pays back")
	assert.InDelta(t, -155.43845006804986*15, result.CumulativeCashFlow, 1e-6)
	assert.InDelta(t, 69173.667664826, result.CapitalGain, 1e-6)
	assert.InDelta(t, 69173.667664826*0.2, result.SimplifiedGainTax, 1e-6)
}

func TestYields_PaybackWhenProfitable(t *testing.T) {
	s := referenceScenario()
	s.Rental.MonthlyRent = 3000

	result := Yields(s.Property, s.Loan, s.Rental, s.Tax, s.AppreciationRate, s.HoldingYears)
	net := Taxation(s.Property, s.Loan, s.Rental, s.Tax, s.HoldingYears).NetResultAfterTax

	require.Greater(t, net, 0.0)
	require.False(t, result.PaybackYears.IsInf())
	assert.InDelta(t, 215000/net, float64(result.PaybackYears), 1e-9)
	assert.Greater(t, result.NetOfTaxYield, 0.0)
}

func TestYields_Ordering(t *testing.T) {
	s := referenceScenario()
	for _, rent := range []float64{800, 1200, 2000, 3500} {
		s.Rental.MonthlyRent = rent

		result := Yields(s.Property, s.Loan, s.Rental, s.Tax, s.AppreciationRate, s.HoldingYears)

		assert.GreaterOrEqual(t, result.GrossYield, result.NetYield, "rent %v", rent)
	}
}

func TestYields_ZeroInvestment(t *testing.T) {
	s := referenceScenario()
	s.Property.PurchasePrice = 0
	s.Property.NotaryFee = 0

	result := Yields(s.Property, s.Loan, s.Rental, s.Tax, 0, 10)

	assert.Zero(t, result.GrossYield)
	assert.Zero(t, result.NetYield)
	assert.Zero(t, result.ROI)
	assert.False(t, math.IsNaN(result.NetOfTaxYield))
}

func TestSimplifiedGainTax(t *testing.T) {
	assert.InDelta(t, 2000, SimplifiedGainTax(10000), 1e-9)
	assert.Zero(t, SimplifiedGainTax(0))
	assert.Zero(t, SimplifiedGainTax(-5000))
}

func TestCumulativeCashFlow(t *testing.T) {
	assert.Equal(t, 12000.0, CumulativeCashFlow(1200, 10))
	assert.Equal(t, -600.0, CumulativeCashFlow(-200, 3))
	assert.Zero(t, CumulativeCashFlow(500, 0))
}

func TestMonthlySavingsEffort(t *testing.T) {
	assert.InDelta(t, 715.348962021762, MonthlySavingsEffort(100000, 10, 0.03), 1e-6)
	assert.InDelta(t, 1000, MonthlySavingsEffort(120000, 10, 0), 1e-9)
	assert.Equal(t, 5000.0, MonthlySavingsEffort(5000, 0, 0.03))
}
