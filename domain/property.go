package domain

// PropertyAsset describes the purchased property.
type PropertyAsset struct {
	PurchasePrice     float64 `json:"purchase_price" validate:"gte=0"`
	AgencyFee         float64 `json:"agency_fee" validate:"gte=0"`
	RenovationCost    float64 `json:"renovation_cost" validate:"gte=0"`
	NotaryFee         float64 `json:"notary_fee" validate:"gte=0"`
	LandValueFraction float64 `json:"land_value_fraction" validate:"gte=0,lte=1"` // share of the price that is not depreciable
}

// AcquisitionCost is the price plus renovation and notary fee.
func (p PropertyAsset) AcquisitionCost() float64 {
	return p.PurchasePrice + p.RenovationCost + p.NotaryFee
}

// RentalData holds the rental assumptions of the property.
type RentalData struct {
	MonthlyRent        float64 `json:"monthly_rent" validate:"gte=0"`
	RecoverableCharges float64 `json:"recoverable_charges" validate:"gte=0"`
	OccupancyRate      float64 `json:"occupancy_rate" validate:"gte=0,lte=1"`
	ManagementFeeRate  float64 `json:"management_fee_rate" validate:"gte=0,lte=1"`
}

// AdjustedRent is the monthly rent weighted by occupancy.
func (r RentalData) AdjustedRent() float64 {
	return r.MonthlyRent * r.OccupancyRate
}
