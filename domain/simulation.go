package domain

import "time"

// Scenario is the immutable snapshot every calculation reads from. The loan
// in a scenario already carries its resolved principal and monthly payment.
type Scenario struct {
	Property         PropertyAsset `json:"property"`
	Loan             Loan          `json:"loan"`
	Rental           RentalData    `json:"rental"`
	Tax              TaxProfile    `json:"tax"`
	HoldingYears     int           `json:"holding_years"`
	AppreciationRate float64       `json:"appreciation_rate"`
	SaleCosts        float64       `json:"sale_costs"`
	MonthlyIncome    float64       `json:"monthly_income"`
}

type SimulationResult struct {
	Scenario      Scenario            `json:"scenario"`
	Schedule      []AmortizationRow   `json:"schedule,omitempty"`
	LoanSummary   LoanSummary         `json:"loan_summary"`
	SelfFinancing SelfFinancingResult `json:"self_financing"`
	Taxation      TaxResult           `json:"taxation"`
	Resale        ResaleProjection    `json:"resale"`
	Yields        YieldResult         `json:"yields"`
	IRR           IRRSolution         `json:"irr"`
	Explanation   string              `json:"explanation,omitempty"`
}

// LoanTerms are the financing parameters a caller provides; the principal is
// resolved from the acquisition cost and the down payment.
type LoanTerms struct {
	DownPayment    float64 `json:"down_payment" validate:"gte=0"`
	AnnualRate     float64 `json:"annual_rate" validate:"gte=0,lte=1"`
	Years          int     `json:"years" validate:"gte=1,lte=50"`
	OriginationFee float64 `json:"origination_fee" validate:"gte=0"`
	InsuranceRate  float64 `json:"insurance_rate" validate:"gte=0,lte=1"`
}

// SimulationInput is the request shared by every simulation endpoint.
// Nil HoldingYears and AppreciationRate fall back to the configured assumptions.
type SimulationInput struct {
	Property         PropertyAsset `json:"property"`
	Loan             LoanTerms     `json:"loan"`
	Rental           RentalData    `json:"rental"`
	Tax              TaxProfile    `json:"tax"`
	HoldingYears     *int          `json:"holding_years,omitempty" validate:"omitempty,gte=0,lte=50"`
	AppreciationRate *float64      `json:"appreciation_rate,omitempty" validate:"omitempty,gte=-1,lte=1"`
	SaleCosts        float64       `json:"sale_costs" validate:"gte=0"`
	MonthlyIncome    float64       `json:"monthly_income" validate:"gte=0"`
}

// SimulationRecord is one entry of the calculation history.
type SimulationRecord struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	InputHash string    `json:"input_hash"`
	Input     string    `json:"input"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}
