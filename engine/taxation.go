package engine

import (
	"math"

	"rental-agent/domain"
)

// Taxation computes the yearly taxable income and tax due under the profile's
// regime. Only LMNP produces a depreciation schedule, one row per holding year.
//
// Under bare ownership the usufructuary collects the rent, so rental income,
// charges and the net result after tax are all reported as 0 rather than the
// gross annual rent. An unknown regime yields an empty result.
func Taxation(
	property domain.PropertyAsset,
	loan domain.Loan,
	rental domain.RentalData,
	profile domain.TaxProfile,
	holdingYears int,
) domain.TaxResult {
	selfFinancing := SelfFinancing(property, loan, rental)

	result := domain.TaxResult{
		Schedule: []domain.DepreciationRow{},
	}

	switch profile.Regime {
	case domain.RegimeLMNP:
		result.RentalIncome = selfFinancing.Inflows.AdjustedRent * monthsPerYear
		result.FirstYearInterest = FirstYearInterest(loan)
		result.DeductibleCharges = selfFinancing.Outflows.DeductibleCharges()*monthsPerYear + result.FirstYearInterest

		result.Schedule = DepreciationSchedule(property, holdingYears)
		result.Depreciation = firstYearDepreciation(property)

		result.TaxableIncome = math.Max(0, result.RentalIncome-result.DeductibleCharges-result.Depreciation)
		result.TaxDue = result.TaxableIncome * profile.CombinedRate()

	case domain.RegimeLMP:
		result.RentalIncome = selfFinancing.Inflows.AdjustedRent * monthsPerYear
		result.FirstYearInterest = FirstYearInterest(loan)
		result.DeductibleCharges = selfFinancing.Outflows.DeductibleCharges()*monthsPerYear + result.FirstYearInterest

		result.TaxableIncome = result.RentalIncome - result.DeductibleCharges
		if result.TaxableIncome > 0 {
			result.TaxDue = result.TaxableIncome * profile.CombinedRate()
		} else {
			result.DeficitNotCarried = result.TaxableIncome < 0
		}

	case domain.RegimeNuePropriete:
		// Nothing is taxable for the bare owner.

	default:
		return result
	}

	result.NetResultAfterTax = result.RentalIncome - result.DeductibleCharges - result.TaxDue
	return result
}

type depreciationPlan struct {
	building, renovation, furniture float64
}

func annualDepreciation(property domain.PropertyAsset) depreciationPlan {
	return depreciationPlan{
		building:   property.PurchasePrice * (1 - property.LandValueFraction) / BuildingDepreciationYears,
		renovation: property.RenovationCost / RenovationDepreciationYears,
		furniture:  property.PurchasePrice * FurnitureShareOfPrice / FurnitureDepreciationYears,
	}
}

func firstYearDepreciation(property domain.PropertyAsset) float64 {
	plan := annualDepreciation(property)
	return plan.building + plan.renovation + plan.furniture
}

// DepreciationSchedule lists the straight-line depreciation of the building,
// the renovation and the furniture for years 1..holdingYears. Each component
// stops contributing after its own horizon.
func DepreciationSchedule(property domain.PropertyAsset, holdingYears int) []domain.DepreciationRow {
	plan := annualDepreciation(property)
	rows := make([]domain.DepreciationRow, 0, max(holdingYears, 0))
	for year := 1; year <= holdingYears; year++ {
		row := domain.DepreciationRow{Year: year}
		if year <= BuildingDepreciationYears {
			row.BuildingDepreciation = plan.building
		}
		if year <= RenovationDepreciationYears {
			row.RenovationDepreciation = plan.renovation
		}
		if year <= FurnitureDepreciationYears {
			row.FurnitureDepreciation = plan.furniture
		}
		row.Total = row.BuildingDepreciation + row.RenovationDepreciation + row.FurnitureDepreciation
		rows = append(rows, row)
	}
	return rows
}
