package service

import (
	"math"

	"github.com/shopspring/decimal"

	"rental-agent/domain"
)

// roundTo2Decimals rounds money half away from zero to cents.
func roundTo2Decimals(value float64) float64 {
	return roundPlaces(value, moneyPlaces)
}

func roundRate(value float64) float64 {
	return roundPlaces(value, ratePlaces)
}

// roundPlaces leaves infinities and NaN untouched.
func roundPlaces(value float64, places int32) float64 {
	if !isFinite(value) {
		return value
	}
	rounded, _ := decimal.NewFromFloat(value).Round(places).Float64()
	return rounded
}

func roundUnboundedRate(value domain.Unbounded) domain.Unbounded {
	return domain.Unbounded(roundRate(float64(value)))
}

func roundSchedule(rows []domain.AmortizationRow) []domain.AmortizationRow {
	out := make([]domain.AmortizationRow, len(rows))
	for i, row := range rows {
		out[i] = domain.AmortizationRow{
			Period:             row.Period,
			RemainingPrincipal: roundTo2Decimals(row.RemainingPrincipal),
			Interest:           roundTo2Decimals(row.Interest),
			PrincipalPaid:      roundTo2Decimals(row.PrincipalPaid),
			Payment:            roundTo2Decimals(row.Payment),
		}
	}
	return out
}

func roundLoanSummary(s domain.LoanSummary) domain.LoanSummary {
	return domain.LoanSummary{
		TotalCreditCost:      roundTo2Decimals(s.TotalCreditCost),
		MonthlyInsurance:     roundTo2Decimals(s.MonthlyInsurance),
		PaymentWithInsurance: roundTo2Decimals(s.PaymentWithInsurance),
		DebtRatio:            roundRate(s.DebtRatio),
	}
}

func roundSelfFinancing(r domain.SelfFinancingResult) domain.SelfFinancingResult {
	out := r.Outflows
	return domain.SelfFinancingResult{
		Inflow:             roundTo2Decimals(r.Inflow),
		Outflow:            roundTo2Decimals(r.Outflow),
		CashFlowMonthly:    roundTo2Decimals(r.CashFlowMonthly),
		CashFlowAnnual:     roundTo2Decimals(r.CashFlowAnnual),
		SelfFinancingRatio: roundUnboundedRate(r.SelfFinancingRatio),
		Inflows: domain.InflowBreakdown{
			AdjustedRent:       roundTo2Decimals(r.Inflows.AdjustedRent),
			RecoverableCharges: roundTo2Decimals(r.Inflows.RecoverableCharges),
			Total:              roundTo2Decimals(r.Inflows.Total),
		},
		Outflows: domain.OutflowBreakdown{
			LoanPayment:         roundTo2Decimals(out.LoanPayment),
			BorrowerInsurance:   roundTo2Decimals(out.BorrowerInsurance),
			PropertyTax:         roundTo2Decimals(out.PropertyTax),
			LandlordInsurance:   roundTo2Decimals(out.LandlordInsurance),
			CoOwnershipCharges:  roundTo2Decimals(out.CoOwnershipCharges),
			ManagementFee:       roundTo2Decimals(out.ManagementFee),
			VacancyProvision:    roundTo2Decimals(out.VacancyProvision),
			RenovationProvision: roundTo2Decimals(out.RenovationProvision),
			Total:               roundTo2Decimals(out.Total),
		},
	}
}

func roundTaxation(r domain.TaxResult) domain.TaxResult {
	schedule := make([]domain.DepreciationRow, len(r.Schedule))
	for i, row := range r.Schedule {
		schedule[i] = domain.DepreciationRow{
			Year:                   row.Year,
			BuildingDepreciation:   roundTo2Decimals(row.BuildingDepreciation),
			RenovationDepreciation: roundTo2Decimals(row.RenovationDepreciation),
			FurnitureDepreciation:  roundTo2Decimals(row.FurnitureDepreciation),
			Total:                  roundTo2Decimals(row.Total),
		}
	}
	return domain.TaxResult{
		RentalIncome:      roundTo2Decimals(r.RentalIncome),
		TaxableIncome:     roundTo2Decimals(r.TaxableIncome),
		DeductibleCharges: roundTo2Decimals(r.DeductibleCharges),
		FirstYearInterest: roundTo2Decimals(r.FirstYearInterest),
		Depreciation:      roundTo2Decimals(r.Depreciation),
		TaxDue:            roundTo2Decimals(r.TaxDue),
		NetResultAfterTax: roundTo2Decimals(r.NetResultAfterTax),
		Schedule:          schedule,
		DeficitNotCarried: r.DeficitNotCarried,
	}
}

func roundProjection(p domain.ResaleProjection) domain.ResaleProjection {
	timeline := make([]domain.ResaleYear, len(p.Timeline))
	for i, year := range p.Timeline {
		timeline[i] = domain.ResaleYear{
			Year:               year.Year,
			PropertyValue:      roundTo2Decimals(year.PropertyValue),
			RemainingBalance:   roundTo2Decimals(year.RemainingBalance),
			Appreciation:       roundTo2Decimals(year.Appreciation),
			PotentialNetResult: roundTo2Decimals(year.PotentialNetResult),
		}
	}
	return domain.ResaleProjection{
		HoldingYears:        p.HoldingYears,
		SalePrice:           roundTo2Decimals(p.SalePrice),
		SaleCosts:           roundTo2Decimals(p.SaleCosts),
		TotalAppreciation:   roundTo2Decimals(p.TotalAppreciation),
		RemainingBalance:    roundTo2Decimals(p.RemainingBalance),
		InitialInvestment:   roundTo2Decimals(p.InitialInvestment),
		PrincipalRepaid:     roundTo2Decimals(p.PrincipalRepaid),
		InterestPaid:        roundTo2Decimals(p.InterestPaid),
		IncomeTaxAllowance:  roundRate(p.IncomeTaxAllowance),
		SocialLevyAllowance: roundRate(p.SocialLevyAllowance),
		GrossGain:           roundTo2Decimals(p.GrossGain),
		CapitalGainsTax:     roundTo2Decimals(p.CapitalGainsTax),
		NetGain:             roundTo2Decimals(p.NetGain),
		NetResult:           roundTo2Decimals(p.NetResult),
		TotalReturn:         roundRate(p.TotalReturn),
		AnnualizedReturn:    roundRate(p.AnnualizedReturn),
		Timeline:            timeline,
	}
}

func roundYields(y domain.YieldResult) domain.YieldResult {
	return domain.YieldResult{
		TotalInvested:      roundTo2Decimals(y.TotalInvested),
		GrossYield:         roundRate(y.GrossYield),
		NetYield:           roundRate(y.NetYield),
		NetOfTaxYield:      roundRate(y.NetOfTaxYield),
		ROI:                roundRate(y.ROI),
		PaybackYears:       domain.Unbounded(roundTo2Decimals(float64(y.PaybackYears))),
		CumulativeCashFlow: roundTo2Decimals(y.CumulativeCashFlow),
		CapitalGain:        roundTo2Decimals(y.CapitalGain),
		SimplifiedGainTax:  roundTo2Decimals(y.SimplifiedGainTax),
	}
}

// roundIRR also reports a diverged Newton estimate as a non-converged 0, as
// JSON cannot carry NaN or infinities.
func roundIRR(s domain.IRRSolution) domain.IRRSolution {
	flows := make([]float64, len(s.CashFlows))
	for i, flow := range s.CashFlows {
		flows[i] = roundTo2Decimals(flow)
	}
	rate, npv, converged := s.Rate, s.NPV, s.Converged
	if !isFinite(rate) || !isFinite(npv) {
		rate, npv, converged = 0, 0, false
	}
	return domain.IRRSolution{
		Rate:       roundRate(rate),
		NPV:        roundRate(npv),
		Iterations: s.Iterations,
		Converged:  converged,
		CashFlows:  flows,
	}
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
