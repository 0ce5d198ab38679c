package domain

type InflowBreakdown struct {
	AdjustedRent       float64 `json:"adjusted_rent"`
	RecoverableCharges float64 `json:"recoverable_charges"`
	Total              float64 `json:"total"`
}

type OutflowBreakdown struct {
	LoanPayment         float64 `json:"loan_payment"`
	BorrowerInsurance   float64 `json:"borrower_insurance"`
	PropertyTax         float64 `json:"property_tax"`
	LandlordInsurance   float64 `json:"landlord_insurance"`
	CoOwnershipCharges  float64 `json:"co_ownership_charges"`
	ManagementFee       float64 `json:"management_fee"`
	VacancyProvision    float64 `json:"vacancy_provision"`
	RenovationProvision float64 `json:"renovation_provision"`
	Total               float64 `json:"total"`
}

// OperatingCharges is the monthly total of the recurring charges, excluding
// the loan payment and borrower insurance.
func (o OutflowBreakdown) OperatingCharges() float64 {
	return o.PropertyTax + o.LandlordInsurance + o.CoOwnershipCharges +
		o.ManagementFee + o.VacancyProvision + o.RenovationProvision
}

// DeductibleCharges is the monthly total of the charges deductible from rental income.
func (o OutflowBreakdown) DeductibleCharges() float64 {
	return o.PropertyTax + o.LandlordInsurance + o.CoOwnershipCharges + o.ManagementFee
}

type SelfFinancingResult struct {
	Inflow             float64          `json:"inflow"`
	Outflow            float64          `json:"outflow"`
	CashFlowMonthly    float64          `json:"cash_flow_monthly"`
	CashFlowAnnual     float64          `json:"cash_flow_annual"`
	SelfFinancingRatio Unbounded        `json:"self_financing_ratio"`
	Inflows            InflowBreakdown  `json:"inflows"`
	Outflows           OutflowBreakdown `json:"outflows"`
}
