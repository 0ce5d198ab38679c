package engine

import (
	"math"

	"rental-agent/domain"
)

// EstimateSalePrice compounds the purchase price at the appreciation rate.
func EstimateSalePrice(purchasePrice, appreciationRate float64, years int) float64 {
	return purchasePrice * math.Pow(1+appreciationRate, float64(years))
}

// HoldingAllowances returns the capital gains allowances for income tax and
// social levies after holding the property for the given number of years.
// Income tax is fully exempt from year 22, social levies from year 30.
func HoldingAllowances(years int) (incomeTax, socialLevy float64) {
	if years <= allowanceStartYear {
		return 0, 0
	}
	held := float64(years - allowanceStartYear)

	switch {
	case years < incomeTaxExemptionYear:
		incomeTax = math.Min(1, incomeTaxAllowancePerYear*held)
	default:
		incomeTax = 1
	}

	switch {
	case years < incomeTaxExemptionYear:
		socialLevy = math.Min(socialLevyAllowanceCap, socialLevyAllowancePerYear*held)
	case years == incomeTaxExemptionYear:
		socialLevy = socialLevyAllowanceCap + socialLevyAllowanceYear22
	case years <= socialLevyExemptionYear:
		socialLevy = math.Min(1, socialLevyAllowanceCap+socialLevyAllowanceYear22+
			socialLevyAllowanceLate*float64(years-incomeTaxExemptionYear))
	default:
		socialLevy = 1
	}
	return incomeTax, socialLevy
}

// CapitalGainsTax applies the allowances to a gross gain and taxes each share
// at its fixed rate. A loss is not taxed.
func CapitalGainsTax(grossGain float64, holdingYears int) float64 {
	incomeAllowance, socialAllowance := HoldingAllowances(holdingYears)
	incomeTaxable := math.Max(0, grossGain*(1-incomeAllowance))
	socialTaxable := math.Max(0, grossGain*(1-socialAllowance))
	return incomeTaxable*CapitalGainsIncomeTaxRate + socialTaxable*CapitalGainsSocialLevyRate
}

// ResaleScenario computes the taxed gain of selling at salePrice after
// holdingYears.
func ResaleScenario(property domain.PropertyAsset, salePrice float64, holdingYears int) domain.ResaleResult {
	return resale(property, salePrice, 0, holdingYears)
}

// ComputeResale appreciates the purchase price over the holding period and
// computes the taxed gain net of sale costs.
func ComputeResale(
	property domain.PropertyAsset,
	loan domain.Loan,
	holdingYears int,
	appreciationRate float64,
	saleCosts float64,
) domain.ResaleResult {
	salePrice := EstimateSalePrice(property.PurchasePrice, appreciationRate, holdingYears)
	return resale(property, salePrice, saleCosts, holdingYears)
}

func resale(property domain.PropertyAsset, salePrice, saleCosts float64, holdingYears int) domain.ResaleResult {
	acquisition := property.AcquisitionCost()
	grossGain := salePrice - saleCosts - acquisition
	tax := CapitalGainsTax(grossGain, holdingYears)
	netGain := grossGain - tax

	return domain.ResaleResult{
		SalePrice:       salePrice,
		GrossGain:       grossGain,
		CapitalGainsTax: tax,
		NetGain:         netGain,
		GlobalReturn:    ratio(netGain, acquisition),
	}
}

// EarlyResale deducts the loan balance still due at the sale from the net gain.
func EarlyResale(property domain.PropertyAsset, loan domain.Loan, salePrice float64, holdingYears int) domain.EarlyResaleResult {
	scenario := ResaleScenario(property, salePrice, holdingYears)
	remaining := RemainingBalance(loan, holdingYears)
	return domain.EarlyResaleResult{
		NetGain:          scenario.NetGain,
		RemainingBalance: remaining,
		NetResult:        scenario.NetGain - remaining,
	}
}

// ProjectResale is the detailed resale view: the sale at the end of the
// holding period plus the yearly valuation from year 0.
func ProjectResale(
	property domain.PropertyAsset,
	loan domain.Loan,
	holdingYears int,
	appreciationRate float64,
	saleCosts float64,
) domain.ResaleProjection {
	result := ComputeResale(property, loan, holdingYears, appreciationRate, saleCosts)
	remaining := RemainingBalance(loan, holdingYears)
	incomeAllowance, socialAllowance := HoldingAllowances(holdingYears)

	monthsPaid := min(max(holdingYears, 0)*monthsPerYear, loan.Months())
	principalRepaid := loan.Principal - remaining
	interestPaid := math.Max(0, loan.MonthlyPayment*float64(monthsPaid)-principalRepaid)

	initial := property.AcquisitionCost()
	totalReturn := ratio(result.NetGain, initial)

	timeline := make([]domain.ResaleYear, 0, max(holdingYears, 0)+1)
	for year := 0; year <= holdingYears; year++ {
		value := EstimateSalePrice(property.PurchasePrice, appreciationRate, year)
		balance := RemainingBalance(loan, year)
		timeline = append(timeline, domain.ResaleYear{
			Year:               year,
			PropertyValue:      value,
			RemainingBalance:   balance,
			Appreciation:       value - property.PurchasePrice,
			PotentialNetResult: value - saleCosts - balance,
		})
	}

	return domain.ResaleProjection{
		HoldingYears:        holdingYears,
		SalePrice:           result.SalePrice,
		SaleCosts:           saleCosts,
		TotalAppreciation:   result.SalePrice - property.PurchasePrice,
		RemainingBalance:    remaining,
		InitialInvestment:   initial,
		PrincipalRepaid:     principalRepaid,
		InterestPaid:        interestPaid,
		IncomeTaxAllowance:  incomeAllowance,
		SocialLevyAllowance: socialAllowance,
		GrossGain:           result.GrossGain,
		CapitalGainsTax:     result.CapitalGainsTax,
		NetGain:             result.NetGain,
		NetResult:           result.NetGain - remaining,
		TotalReturn:         totalReturn,
		AnnualizedReturn:    annualize(totalReturn, holdingYears),
		Timeline:            timeline,
	}
}

// annualize converts a total return over years into a yearly compound rate.
func annualize(total float64, years int) float64 {
	if years <= 0 || total <= -1 {
		return total
	}
	return math.Pow(1+total, 1/float64(years)) - 1
}

// ratio divides, returning 0 for a zero denominator.
func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
