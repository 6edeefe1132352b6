package entities

// ListingAggregate is the raw AVG row over the whole pisos table.
type ListingAggregate struct {
	AvgSurface float64 `db:"avg_surface"`
	AvgPrice   float64 `db:"avg_price"`
}

// PriceArea is one (precio, superficie) pair with superficie > 0.
type PriceArea struct {
	Price   float64 `db:"precio"`
	Surface float64 `db:"superficie"`
}
