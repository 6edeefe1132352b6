package dtos

// ListingStats are the headline numbers shown above the listing table.
type ListingStats struct {
	AvgSurface      float64 `json:"avg_surface"`
	AvgPrice        float64 `json:"avg_price"`
	AvgPricePerArea float64 `json:"avg_price_per_area"`
}
