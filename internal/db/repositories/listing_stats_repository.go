package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"pisos-tracker/internal/constants"
	"pisos-tracker/internal/metrics"
	"pisos-tracker/internal/models/entities"
)

// ListingStatsRepo runs the whole-table aggregate queries with sqlx.
type ListingStatsRepo struct {
	db      *sqlx.DB
	metrics *metrics.MetricsRegistry
}

func NewListingStatsRepo(db *sqlx.DB, metricsReg *metrics.MetricsRegistry) *ListingStatsRepo {
	return &ListingStatsRepo{db: db, metrics: metricsReg}
}

// Aggregate averages surface and price over every row; an empty table yields zeros.
func (r *ListingStatsRepo) Aggregate(ctx context.Context) (entities.ListingAggregate, error) {
	defer r.metrics.ObserveQuery("aggregate", time.Now())

	var agg entities.ListingAggregate
	if err := r.db.GetContext(ctx, &agg, constants.AggregateListings); err != nil {
		return entities.ListingAggregate{}, fmt.Errorf("aggregate listings: %w", err)
	}
	return agg, nil
}

// PriceAreaPairs returns (price, surface) for every row with surface > 0.
func (r *ListingStatsRepo) PriceAreaPairs(ctx context.Context) ([]entities.PriceArea, error) {
	defer r.metrics.ObserveQuery("price_area_pairs", time.Now())

	var pairs []entities.PriceArea
	if err := r.db.SelectContext(ctx, &pairs, constants.PriceAreaPairs); err != nil {
		return nil, fmt.Errorf("price/area pairs: %w", err)
	}
	return pairs, nil
}

func (r *ListingStatsRepo) Count(ctx context.Context) (int64, error) {
	defer r.metrics.ObserveQuery("count", time.Now())

	var count int64
	if err := r.db.GetContext(ctx, &count, constants.CountListings); err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}
	return count, nil
}

func (r *ListingStatsRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
