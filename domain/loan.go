package domain

// Loan is the mortgage financing the property. MonthlyPayment is derived from
// Principal, AnnualRate and Years and must be recomputed when any of them change.
type Loan struct {
	Principal      float64 `json:"principal"`
	AnnualRate     float64 `json:"annual_rate"`
	Years          int     `json:"years"`
	MonthlyPayment float64 `json:"monthly_payment"`
	OriginationFee float64 `json:"origination_fee"`
	InsuranceRate  float64 `json:"insurance_rate"`
}

// Months is the number of monthly installments.
func (l Loan) Months() int {
	return l.Years * 12
}

type AmortizationRow struct {
	Period             int     `json:"period"`
	RemainingPrincipal float64 `json:"remaining_principal"`
	Interest           float64 `json:"interest"`
	PrincipalPaid      float64 `json:"principal_paid"`
	Payment            float64 `json:"payment"`
}

type LoanSummary struct {
	TotalCreditCost      float64 `json:"total_credit_cost"`
	MonthlyInsurance     float64 `json:"monthly_insurance"`
	PaymentWithInsurance float64 `json:"payment_with_insurance"`
	DebtRatio            float64 `json:"debt_ratio"`
}

// LoanInput is the request of a standalone loan simulation.
type LoanInput struct {
	Amount        float64 `json:"amount" validate:"gt=0"`
	AnnualRate    float64 `json:"annual_rate" validate:"gte=0,lte=1"`
	Years         int     `json:"years" validate:"gte=1,lte=50"`
	InsuranceRate float64 `json:"insurance_rate" validate:"gte=0,lte=1"`
	MonthlyIncome float64 `json:"monthly_income" validate:"gte=0"`
}

type LoanResult struct {
	MonthlyPayment float64           `json:"monthly_payment"`
	TotalPayment   float64           `json:"total_payment"`
	TotalInterest  float64           `json:"total_interest"`
	Summary        LoanSummary       `json:"summary"`
	Schedule       []AmortizationRow `json:"schedule"`
}
