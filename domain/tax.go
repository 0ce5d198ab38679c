package domain

type TaxRegime string

const (
	// RegimeLMNP is furnished non-professional rental: real charges and depreciation are deductible.
	RegimeLMNP TaxRegime = "LMNP"
	// RegimeLMP is furnished professional rental: no depreciation, deficits offset other income.
	RegimeLMP TaxRegime = "LMP"
	// RegimeNuePropriete is bare ownership: no rental income while the usufruct is held by someone else.
	RegimeNuePropriete TaxRegime = "NuePropriete"
)

type TaxProfile struct {
	Regime         TaxRegime `json:"regime" validate:"required,oneof=LMNP LMP NuePropriete"`
	IncomeTaxRate  float64   `json:"income_tax_rate" validate:"gte=0,lte=1"`
	SocialLevyRate float64   `json:"social_levy_rate" validate:"gte=0,lte=1"`
}

// CombinedRate is the income tax rate plus social levies.
func (t TaxProfile) CombinedRate() float64 {
	return t.IncomeTaxRate + t.SocialLevyRate
}

type DepreciationRow struct {
	Year                   int     `json:"year"`
	BuildingDepreciation   float64 `json:"building_depreciation"`
	RenovationDepreciation float64 `json:"renovation_depreciation"`
	FurnitureDepreciation  float64 `json:"furniture_depreciation"`
	Total                  float64 `json:"total"`
}

type TaxResult struct {
	RentalIncome      float64           `json:"rental_income"`
	TaxableIncome     float64           `json:"taxable_income"`
	DeductibleCharges float64           `json:"deductible_charges"`
	FirstYearInterest float64           `json:"first_year_interest"`
	Depreciation      float64           `json:"depreciation"`
	TaxDue            float64           `json:"tax_due"`
	NetResultAfterTax float64           `json:"net_result_after_tax"`
	Schedule          []DepreciationRow `json:"schedule"`

	// DeficitNotCarried is set under LMP when the taxable income is negative:
	// the deficit is assumed absorbed by other income and is not carried forward.
	DeficitNotCarried bool `json:"deficit_not_carried"`
}
