package domain

type ResaleResult struct {
	SalePrice       float64 `json:"sale_price"`
	GrossGain       float64 `json:"gross_gain"`
	CapitalGainsTax float64 `json:"capital_gains_tax"`
	NetGain         float64 `json:"net_gain"`
	GlobalReturn    float64 `json:"global_return"`
}

// EarlyResaleResult accounts for the loan still outstanding at the sale.
type EarlyResaleResult struct {
	NetGain          float64 `json:"net_gain"`
	RemainingBalance float64 `json:"remaining_balance"`
	NetResult        float64 `json:"net_result"`
}

type ResaleYear struct {
	Year               int     `json:"year"`
	PropertyValue      float64 `json:"property_value"`
	RemainingBalance   float64 `json:"remaining_balance"`
	Appreciation       float64 `json:"appreciation"`
	PotentialNetResult float64 `json:"potential_net_result"`
}

// ResaleProjection is the detailed resale view over the holding period.
type ResaleProjection struct {
	HoldingYears        int          `json:"holding_years"`
	SalePrice           float64      `json:"sale_price"`
	SaleCosts           float64      `json:"sale_costs"`
	TotalAppreciation   float64      `json:"total_appreciation"`
	RemainingBalance    float64      `json:"remaining_balance"`
	InitialInvestment   float64      `json:"initial_investment"`
	PrincipalRepaid     float64      `json:"principal_repaid"`
	InterestPaid        float64      `json:"interest_paid"`
	IncomeTaxAllowance  float64      `json:"income_tax_allowance"`
	SocialLevyAllowance float64      `json:"social_levy_allowance"`
	GrossGain           float64      `json:"gross_gain"`
	CapitalGainsTax     float64      `json:"capital_gains_tax"`
	NetGain             float64      `json:"net_gain"`
	NetResult           float64      `json:"net_result"`
	TotalReturn         float64      `json:"total_return"`
	AnnualizedReturn    float64      `json:"annualized_return"`
	Timeline            []ResaleYear `json:"timeline"`
}
