package engine

import "rental-agent/domain"

// Simulate evaluates every calculation of a scenario in dependency order:
// amortization, self-financing, taxation, then yields and IRR, with the resale
// projection computed from the raw inputs alongside.
func Simulate(scenario domain.Scenario) domain.SimulationResult {
	loan := scenario.Loan
	property := scenario.Property

	return domain.SimulationResult{
		Scenario:      scenario,
		Schedule:      AmortizationSchedule(loan.Principal, loan.AnnualRate, loan.Years, loan.MonthlyPayment),
		LoanSummary:   SummarizeLoan(loan, scenario.MonthlyIncome),
		SelfFinancing: SelfFinancing(property, loan, scenario.Rental),
		Taxation:      Taxation(property, loan, scenario.Rental, scenario.Tax, scenario.HoldingYears),
		Resale:        ProjectResale(property, loan, scenario.HoldingYears, scenario.AppreciationRate, scenario.SaleCosts),
		Yields:        Yields(property, loan, scenario.Rental, scenario.Tax, scenario.AppreciationRate, scenario.HoldingYears),
		IRR:           ComputeIRR(property, loan, scenario.Rental, scenario.Tax, scenario.AppreciationRate, scenario.HoldingYears),
	}
}
