package engine

import (
	"math"

	"rental-agent/domain"
)

// EstimatedCharges returns the monthly property tax, landlord insurance and
// co-ownership charges estimated from the purchase price.
func EstimatedCharges(purchasePrice float64) (propertyTax, landlordInsurance, coOwnership float64) {
	propertyTax = purchasePrice * PropertyTaxRate / monthsPerYear
	landlordInsurance = purchasePrice * LandlordInsuranceRate / monthsPerYear
	coOwnership = purchasePrice * CoOwnershipRate / monthsPerYear
	return propertyTax, landlordInsurance, coOwnership
}

// SelfFinancing computes the monthly inflows and outflows of the investment.
// The ratio is +Inf when there is no outflow.
func SelfFinancing(property domain.PropertyAsset, loan domain.Loan, rental domain.RentalData) domain.SelfFinancingResult {
	adjustedRent := rental.AdjustedRent()
	inflows := domain.InflowBreakdown{
		AdjustedRent:       adjustedRent,
		RecoverableCharges: rental.RecoverableCharges,
		Total:              adjustedRent + rental.RecoverableCharges,
	}

	propertyTax, landlordInsurance, coOwnership := EstimatedCharges(property.PurchasePrice)
	outflows := domain.OutflowBreakdown{
		LoanPayment:         loan.MonthlyPayment,
		BorrowerInsurance:   loan.Principal * loan.InsuranceRate / monthsPerYear,
		PropertyTax:         propertyTax,
		LandlordInsurance:   landlordInsurance,
		CoOwnershipCharges:  coOwnership,
		ManagementFee:       adjustedRent * rental.ManagementFeeRate,
		VacancyProvision:    rental.MonthlyRent * VacancyProvisionRate,
		RenovationProvision: rental.MonthlyRent * RenovationProvisionRate,
	}
	outflows.Total = outflows.LoanPayment + outflows.BorrowerInsurance + outflows.PropertyTax +
		outflows.LandlordInsurance + outflows.CoOwnershipCharges + outflows.ManagementFee +
		outflows.VacancyProvision + outflows.RenovationProvision

	cashFlow := inflows.Total - outflows.Total
	return domain.SelfFinancingResult{
		Inflow:             inflows.Total,
		Outflow:            outflows.Total,
		CashFlowMonthly:    cashFlow,
		CashFlowAnnual:     cashFlow * monthsPerYear,
		SelfFinancingRatio: selfFinancingRatio(inflows.Total, outflows.Total),
		Inflows:            inflows,
		Outflows:           outflows,
	}
}

func selfFinancingRatio(inflow, outflow float64) domain.Unbounded {
	if outflow == 0 {
		return domain.Unbounded(math.Inf(1))
	}
	return domain.Unbounded(inflow / outflow)
}
