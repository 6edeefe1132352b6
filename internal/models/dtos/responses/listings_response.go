package responses

import "pisos-tracker/internal/models/dtos"

type ListingResponse struct {
	ID           uint     `json:"id"`
	VisitDate    string   `json:"visit_date"`
	Address      string   `json:"address"`
	SurfaceArea  float64  `json:"surface_area"`
	Floor        string   `json:"floor"`
	Price        float64  `json:"price"`
	Link         string   `json:"link"`
	Notes        string   `json:"notes"`
	PricePerArea *float64 `json:"price_per_area"`
}

type ListingsPageResponse struct {
	Listings []ListingResponse `json:"listings"`
	Stats    dtos.ListingStats `json:"stats"`
	Filters  dtos.FilterValues `json:"filters"`
}
