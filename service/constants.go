package service

const (
	MaxLoanAmount     = 1_000_000_000.0
	MaxPropertyAmount = 1_000_000_000.0

	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100

	// Rates and ratios keep more precision than money.
	moneyPlaces = 2
	ratePlaces  = 6
)

// Record kinds stored in the history.
const (
	KindLoan          = "loan"
	KindSimulation    = "simulation"
	KindSelfFinancing = "self_financing"
	KindTaxation      = "taxation"
	KindResale        = "resale"
	KindYield         = "yield"
	KindIRR           = "irr"
)
