package services

import (
	"pisos-tracker/internal/models/dtos"
	"pisos-tracker/internal/models/entities"
)

// CalculateStats derives the headline numbers. The price-per-area figure is
// the unweighted mean of per-row price/surface ratios, not sum(price)/sum(surface).
func CalculateStats(agg entities.ListingAggregate, pairs []entities.PriceArea) dtos.ListingStats {
	var (
		total float64
		n     int
	)
	for _, p := range pairs {
		if p.Surface <= 0 {
			continue
		}
		total += p.Price / p.Surface
		n++
	}

	stats := dtos.ListingStats{
		AvgSurface: agg.AvgSurface,
		AvgPrice:   agg.AvgPrice,
	}
	if n > 0 {
		stats.AvgPricePerArea = total / float64(n)
	}
	return stats
}
