package engine

import "rental-agent/domain"

const tolerance = 1e-6

// referenceScenario is a 200k flat with 15k notary fees fully financed at 3%
// over 20 years, rented 1200/month at 95% occupancy.
func referenceScenario() domain.Scenario {
	property := domain.PropertyAsset{
		PurchasePrice:     200000,
		NotaryFee:         15000,
		LandValueFraction: 0.1,
	}
	loan := WithMonthlyPayment(domain.Loan{
		Principal:     215000,
		AnnualRate:    0.03,
		Years:         20,
		InsuranceRate: 0.0036,
	})
	return domain.Scenario{
		Property: property,
		Loan:     loan,
		Rental: domain.RentalData{
			MonthlyRent:       1200,
			OccupancyRate:     0.95,
			ManagementFeeRate: 0.08,
		},
		Tax: domain.TaxProfile{
			Regime:         domain.RegimeLMNP,
			IncomeTaxRate:  0.30,
			SocialLevyRate: 0.17,
		},
		HoldingYears:     15,
		AppreciationRate: 0.02,
	}
}
