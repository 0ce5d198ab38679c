// Package engine holds the pure calculation functions of a rental investment:
// loan amortization, self-financing, taxation, resale and yields. Every
// function is deterministic and side-effect free; degenerate inputs resolve to
// numeric sentinels (0, +Inf or clamped values) rather than errors.
package engine

import (
	"math"

	"rental-agent/domain"
)

// MonthlyPayment returns the fixed annuity payment of a loan. A zero rate, a
// zero term or a non-positive principal yields 0.
func MonthlyPayment(principal, annualRate float64, years int) float64 {
	if annualRate == 0 || years == 0 || principal <= 0 {
		return 0
	}
	i := annualRate / monthsPerYear
	growth := math.Pow(1+i, float64(years*monthsPerYear))
	return principal * i * growth / (growth - 1)
}

// WithMonthlyPayment returns a copy of the loan with its payment derived from
// principal, rate and term.
func WithMonthlyPayment(loan domain.Loan) domain.Loan {
	loan.MonthlyPayment = MonthlyPayment(loan.Principal, loan.AnnualRate, loan.Years)
	return loan
}

// amortizationStep applies one monthly installment to the outstanding balance.
func amortizationStep(balance, monthlyRate, payment float64) (interest, principalPaid, next float64) {
	interest = balance * monthlyRate
	principalPaid = payment - interest
	next = math.Max(0, balance-principalPaid)
	return interest, principalPaid, next
}

// AmortizationSchedule builds one row per month over the loan term. The
// remaining principal is floored at 0 to absorb drift on the last period.
func AmortizationSchedule(principal, annualRate float64, years int, payment float64) []domain.AmortizationRow {
	n := years * monthsPerYear
	if n <= 0 {
		return []domain.AmortizationRow{}
	}

	monthlyRate := annualRate / monthsPerYear
	rows := make([]domain.AmortizationRow, 0, n)
	balance := principal
	for period := 1; period <= n; period++ {
		var interest, principalPaid float64
		interest, principalPaid, balance = amortizationStep(balance, monthlyRate, payment)
		rows = append(rows, domain.AmortizationRow{
			Period:             period,
			RemainingPrincipal: balance,
			Interest:           interest,
			PrincipalPaid:      principalPaid,
			Payment:            payment,
		})
	}
	return rows
}

// RemainingBalance returns the outstanding principal after yearsElapsed years
// using the closed-form declining balance, floored at 0.
func RemainingBalance(loan domain.Loan, yearsElapsed int) float64 {
	n := float64(loan.Months())
	if n <= 0 {
		return 0
	}
	k := math.Min(float64(yearsElapsed*monthsPerYear), n)
	if k <= 0 {
		return loan.Principal
	}

	if loan.AnnualRate == 0 {
		return math.Max(0, loan.Principal*(1-k/n))
	}

	i := loan.AnnualRate / monthsPerYear
	balance := loan.Principal * (1 - math.Pow(1+i, k-n)) / (1 - math.Pow(1+i, -n))
	return math.Max(0, balance)
}

// FirstYearInterest sums the interest of the first twelve installments using
// the loan's monthly payment. It matches the first twelve schedule rows.
func FirstYearInterest(loan domain.Loan) float64 {
	monthlyRate := loan.AnnualRate / monthsPerYear
	balance := loan.Principal
	total := 0.0
	for month := 1; month <= monthsPerYear; month++ {
		var interest float64
		interest, _, balance = amortizationStep(balance, monthlyRate, loan.MonthlyPayment)
		total += interest
	}
	return total
}

// SummarizeLoan derives the headline loan figures. The debt ratio is 0 when
// no monthly income is given.
func SummarizeLoan(loan domain.Loan, monthlyIncome float64) domain.LoanSummary {
	insurance := loan.Principal * loan.InsuranceRate / monthsPerYear
	withInsurance := loan.MonthlyPayment + insurance

	debtRatio := 0.0
	if monthlyIncome > 0 {
		debtRatio = withInsurance / monthlyIncome
	}

	return domain.LoanSummary{
		TotalCreditCost:      loan.MonthlyPayment*float64(loan.Months()) - loan.Principal,
		MonthlyInsurance:     insurance,
		PaymentWithInsurance: withInsurance,
		DebtRatio:            debtRatio,
	}
}
