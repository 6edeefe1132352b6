package services

import (
	"testing"

	"pisos-tracker/internal/models/dtos"
	"pisos-tracker/internal/models/entities"
)

func TestCalculateStats_MeanOfRatiosNotRatioOfSums(t *testing.T) {
	pairs := []entities.PriceArea{
		{Price: 100, Surface: 10},
		{Price: 300, Surface: 100},
	}
	got := CalculateStats(entities.ListingAggregate{AvgSurface: 55, AvgPrice: 200}, pairs)

	if got.AvgPricePerArea != 6.5 {
		t.Errorf("AvgPricePerArea: got %v, want 6.5", got.AvgPricePerArea)
	}
	ratioOfSums := 400.0 / 110.0
	if got.AvgPricePerArea == ratioOfSums {
		t.Errorf("AvgPricePerArea must not be sum(price)/sum(surface)")
	}
	if got.AvgSurface != 55 || got.AvgPrice != 200 {
		t.Errorf("averages not passed through: %+v", got)
	}
}

func TestCalculateStats_Empty(t *testing.T) {
	got := CalculateStats(entities.ListingAggregate{}, nil)
	if got != (dtos.ListingStats{}) {
		t.Errorf("expected zero stats, got %+v", got)
	}
}

func TestCalculateStats_SkipsNonPositiveSurface(t *testing.T) {
	pairs := []entities.PriceArea{
		{Price: 100, Surface: 0},
		{Price: 200, Surface: 20},
	}
	got := CalculateStats(entities.ListingAggregate{}, pairs)
	if got.AvgPricePerArea != 10 {
		t.Errorf("AvgPricePerArea: got %v, want 10", got.AvgPricePerArea)
	}
}
