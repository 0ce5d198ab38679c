package domain

type YieldResult struct {
	TotalInvested      float64   `json:"total_invested"`
	GrossYield         float64   `json:"gross_yield"`
	NetYield           float64   `json:"net_yield"`
	NetOfTaxYield      float64   `json:"net_of_tax_yield"`
	ROI                float64   `json:"roi"`
	PaybackYears       Unbounded `json:"payback_years"`
	CumulativeCashFlow float64   `json:"cumulative_cash_flow"`
	CapitalGain        float64   `json:"capital_gain"`
	SimplifiedGainTax  float64   `json:"simplified_gain_tax"`
}

type IRRSolution struct {
	Rate       float64   `json:"rate"`
	NPV        float64   `json:"npv"`
	Iterations int       `json:"iterations"`
	Converged  bool      `json:"converged"`
	CashFlows  []float64 `json:"cash_flows"`
}
