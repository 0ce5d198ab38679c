package engine

import (
	"math"

	"rental-agent/domain"
)

// SimplifiedGainTax is the flat-rate tax on the appreciation used by ROI and
// IRR. It never goes below 0.
func SimplifiedGainTax(capitalGain float64) float64 {
	return math.Max(0, capitalGain*SimplifiedGainTaxRate)
}

// Yields computes gross, net and net-of-tax yields, ROI and payback period
// over the holding period. The payback period is +Inf when the yearly net
// result after tax is not positive.
func Yields(
	property domain.PropertyAsset,
	loan domain.Loan,
	rental domain.RentalData,
	profile domain.TaxProfile,
	appreciationRate float64,
	holdingYears int,
) domain.YieldResult {
	invested := property.AcquisitionCost()
	selfFinancing := SelfFinancing(property, loan, rental)
	taxation := Taxation(property, loan, rental, profile, holdingYears)
	salePrice := EstimateSalePrice(property.PurchasePrice, appreciationRate, holdingYears)

	annualRent := selfFinancing.Inflows.AdjustedRent * monthsPerYear
	annualCharges := selfFinancing.Outflows.OperatingCharges() * monthsPerYear
	annualNetCashFlow := taxation.NetResultAfterTax

	cumulative := CumulativeCashFlow(annualNetCashFlow, holdingYears)
	capitalGain := salePrice - property.PurchasePrice
	gainTax := SimplifiedGainTax(capitalGain)
	totalGain := cumulative + (capitalGain - gainTax)

	payback := domain.Unbounded(math.Inf(1))
	if annualNetCashFlow > 0 {
		payback = domain.Unbounded(invested / annualNetCashFlow)
	}

	return domain.YieldResult{
		TotalInvested:      invested,
		GrossYield:         ratio(annualRent, invested),
		NetYield:           ratio(annualRent-annualCharges, invested),
		NetOfTaxYield:      ratio(annualNetCashFlow, invested),
		ROI:                ratio(totalGain-invested, invested),
		PaybackYears:       payback,
		CumulativeCashFlow: cumulative,
		CapitalGain:        capitalGain,
		SimplifiedGainTax:  gainTax,
	}
}

// CumulativeCashFlow is the yearly cash flow held constant over the period.
func CumulativeCashFlow(annualCashFlow float64, years int) float64 {
	return annualCashFlow * float64(years)
}

// MonthlySavingsEffort returns the monthly deposit needed to accumulate target
// over years, deposits earning annualReturn compounded monthly at the start of
// each month.
func MonthlySavingsEffort(target float64, years int, annualReturn float64) float64 {
	months := float64(years * monthsPerYear)
	if months <= 0 {
		return target
	}
	monthlyRate := math.Pow(1+annualReturn, 1.0/monthsPerYear) - 1
	if monthlyRate == 0 {
		return target / months
	}
	return target / ((math.Pow(1+monthlyRate, months) - 1) / monthlyRate * (1 + monthlyRate))
}
