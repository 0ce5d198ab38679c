package engine

import (
	"math"

	"rental-agent/domain"
)

// IRRCashFlows builds the yearly flows of the investment: the amount invested
// at year 0, the net result after tax for each holding year, and the sale
// proceeds net of the simplified gain tax added to the last year.
func IRRCashFlows(
	property domain.PropertyAsset,
	loan domain.Loan,
	rental domain.RentalData,
	profile domain.TaxProfile,
	appreciationRate float64,
	holdingYears int,
) []float64 {
	invested := property.AcquisitionCost()
	annualCashFlow := Taxation(property, loan, rental, profile, holdingYears).NetResultAfterTax

	salePrice := EstimateSalePrice(property.PurchasePrice, appreciationRate, holdingYears)
	proceeds := salePrice - SimplifiedGainTax(salePrice-property.PurchasePrice)

	flows := make([]float64, 0, max(holdingYears, 1)+1)
	flows = append(flows, -invested)
	for year := 1; year < holdingYears; year++ {
		flows = append(flows, annualCashFlow)
	}
	return append(flows, annualCashFlow+proceeds)
}

// NPV discounts flows[i] by (1+rate)^i.
func NPV(flows []float64, rate float64) float64 {
	total := 0.0
	for i, flow := range flows {
		total += flow / math.Pow(1+rate, float64(i))
	}
	return total
}

// NPVDerivative is dNPV/drate.
func NPVDerivative(flows []float64, rate float64) float64 {
	total := 0.0
	for i := 1; i < len(flows); i++ {
		total -= float64(i) * flows[i] / math.Pow(1+rate, float64(i+1))
	}
	return total
}

// SolveIRR finds the rate cancelling the NPV of flows by Newton-Raphson,
// starting from 10%. It stops once |NPV| is within IRRPrecision, after
// IRRMaxIterations, or when the derivative vanishes; in the last two cases
// the returned rate is the current estimate and Converged is false.
func SolveIRR(flows []float64) domain.IRRSolution {
	rate := IRRInitialGuess
	npv := NPV(flows, rate)

	iterations := 0
	for math.Abs(npv) > IRRPrecision && iterations < IRRMaxIterations {
		derivative := NPVDerivative(flows, rate)
		if math.Abs(derivative) < irrMinDerivative {
			break
		}
		rate -= npv / derivative
		npv = NPV(flows, rate)
		iterations++
	}

	return domain.IRRSolution{
		Rate:       rate,
		NPV:        npv,
		Iterations: iterations,
		Converged:  math.Abs(npv) <= IRRPrecision,
		CashFlows:  flows,
	}
}

// IRR returns the internal rate of return estimate of flows.
func IRR(flows []float64) float64 {
	return SolveIRR(flows).Rate
}

// ComputeIRR is the internal rate of return of the investment.
func ComputeIRR(
	property domain.PropertyAsset,
	loan domain.Loan,
	rental domain.RentalData,
	profile domain.TaxProfile,
	appreciationRate float64,
	holdingYears int,
) domain.IRRSolution {
	return SolveIRR(IRRCashFlows(property, loan, rental, profile, appreciationRate, holdingYears))
}
