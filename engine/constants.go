package engine

const (
	monthsPerYear = 12

	// Recurring charges estimated as yearly fractions of the purchase price.
	PropertyTaxRate       = 0.01
	LandlordInsuranceRate = 0.002
	CoOwnershipRate       = 0.02

	// Monthly provisions as fractions of the rent before occupancy.
	VacancyProvisionRate    = 0.05
	RenovationProvisionRate = 0.10

	// Straight-line depreciation horizons in years.
	BuildingDepreciationYears   = 30
	RenovationDepreciationYears = 10
	FurnitureDepreciationYears  = 5
	FurnitureShareOfPrice       = 0.10

	// Capital gains on resale.
	CapitalGainsIncomeTaxRate  = 0.19
	CapitalGainsSocialLevyRate = 0.17
	allowanceStartYear         = 5
	incomeTaxAllowancePerYear  = 0.06
	socialLevyAllowancePerYear = 0.0165
	socialLevyAllowanceCap     = 0.297
	socialLevyAllowanceYear22  = 0.016
	socialLevyAllowanceLate    = 0.09
	incomeTaxExemptionYear     = 22
	socialLevyExemptionYear    = 30

	// SimplifiedGainTaxRate is the flat rate used by ROI and IRR, distinct from
	// the allowance schedule applied by the resale calculation.
	SimplifiedGainTaxRate = 0.20

	// Newton-Raphson settings for the internal rate of return.
	IRRInitialGuess  = 0.10
	IRRPrecision     = 1e-4
	IRRMaxIterations = 100
	irrMinDerivative = 1e-10
)
