package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"pisos-tracker/internal/constants"
	"pisos-tracker/internal/db/repositories"
	"pisos-tracker/internal/logging"
	"pisos-tracker/internal/metrics"
	"pisos-tracker/internal/models/dtos"
	"pisos-tracker/internal/models/entities"
	"pisos-tracker/internal/models/gorm"
)

var ErrListingNotFound = repositories.ErrNotFound

// ListingStore is the CRUD side of the pisos table.
type ListingStore interface {
	List(ctx context.Context, f dtos.ListingFilter) ([]gorm.Listing, error)
	All(ctx context.Context) ([]gorm.Listing, error)
	Get(ctx context.Context, id uint) (*gorm.Listing, error)
	Create(ctx context.Context, l gorm.Listing) (uint, error)
	Update(ctx context.Context, id uint, l gorm.Listing) error
	Delete(ctx context.Context, id uint) error
}

// StatsStore answers the whole-table queries.
type StatsStore interface {
	Aggregate(ctx context.Context) (entities.ListingAggregate, error)
	PriceAreaPairs(ctx context.Context) ([]entities.PriceArea, error)
	Count(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

// ValidationError names the first form field that failed its check.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ValidateListingForm checks date, surface, price and address, in that order,
// and stops at the first failure.
func ValidateListingForm(f dtos.ListingForm) (gorm.Listing, error) {
	date, err := time.Parse(constants.DateInputLayout, f.Date)
	if err != nil {
		return gorm.Listing{}, &ValidationError{Field: constants.FieldDate, Message: constants.MsgInvalidDate}
	}

	surface, ok := dtos.ParseFiniteFloat(f.Surface)
	if !ok || surface <= 0 {
		return gorm.Listing{}, &ValidationError{Field: constants.FieldSurface, Message: constants.MsgInvalidSurface}
	}

	price, ok := dtos.ParseFiniteFloat(f.Price)
	if !ok || price <= 0 {
		return gorm.Listing{}, &ValidationError{Field: constants.FieldPrice, Message: constants.MsgInvalidPrice}
	}

	address := strings.TrimSpace(f.Address)
	if address == "" {
		return gorm.Listing{}, &ValidationError{Field: constants.FieldAddress, Message: constants.MsgAddressRequired}
	}

	return gorm.Listing{
		VisitDate: date.Format(constants.DateLayout),
		Address:   address,
		Surface:   surface,
		Floor:     strings.TrimSpace(f.Floor),
		Price:     price,
		Link:      strings.TrimSpace(f.Link),
		Notes:     strings.TrimSpace(f.Notes),
	}, nil
}

// ListingsPage is what the list view needs: filtered rows, unfiltered stats.
type ListingsPage struct {
	Listings []gorm.Listing
	Stats    dtos.ListingStats
}

type ListingService struct {
	listings ListingStore
	stats    StatsStore
	metrics  *metrics.MetricsRegistry
}

// NewListingService wires the listing use cases. metricsReg may be nil.
func NewListingService(listings ListingStore, stats StatsStore, metricsReg *metrics.MetricsRegistry) *ListingService {
	return &ListingService{listings: listings, stats: stats, metrics: metricsReg}
}

// Page loads the filtered listings and the whole-table statistics.
func (s *ListingService) Page(ctx context.Context, f dtos.ListingFilter) (*ListingsPage, error) {
	page := &ListingsPage{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		listings, err := s.listings.List(gctx, f)
		page.Listings = listings
		return err
	})
	g.Go(func() error {
		stats, err := s.Stats(gctx)
		page.Stats = stats
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return page, nil
}

// Stats always covers the entire table, whatever filter the caller is showing.
func (s *ListingService) Stats(ctx context.Context) (dtos.ListingStats, error) {
	agg, err := s.stats.Aggregate(ctx)
	if err != nil {
		return dtos.ListingStats{}, err
	}
	pairs, err := s.stats.PriceAreaPairs(ctx)
	if err != nil {
		return dtos.ListingStats{}, err
	}
	return CalculateStats(agg, pairs), nil
}

func (s *ListingService) Get(ctx context.Context, id uint) (*gorm.Listing, error) {
	return s.listings.Get(ctx, id)
}

func (s *ListingService) Count(ctx context.Context) (int64, error) {
	return s.stats.Count(ctx)
}

func (s *ListingService) Ping(ctx context.Context) error {
	return s.stats.Ping(ctx)
}

func (s *ListingService) Create(ctx context.Context, form dtos.ListingForm) dtos.Outcome {
	listing, err := ValidateListingForm(form)
	if err != nil {
		return s.rejected(err)
	}

	id, err := s.listings.Create(ctx, listing)
	if err != nil {
		return s.failed("create", err)
	}

	if s.metrics != nil {
		s.metrics.ListingsCreatedTotal.Inc()
	}
	logging.Info("Listing created", "listing_id", id)
	return dtos.Outcome{OK: true, ID: id, Notice: dtos.Success(constants.MsgListingCreated)}
}

func (s *ListingService) Update(ctx context.Context, id uint, form dtos.ListingForm) dtos.Outcome {
	if _, err := s.listings.Get(ctx, id); err != nil {
		return s.failed("update", err)
	}

	listing, err := ValidateListingForm(form)
	if err != nil {
		return s.rejected(err)
	}

	if err := s.listings.Update(ctx, id, listing); err != nil {
		return s.failed("update", err)
	}

	if s.metrics != nil {
		s.metrics.ListingsUpdatedTotal.Inc()
	}
	logging.Info("Listing updated", "listing_id", id)
	return dtos.Outcome{OK: true, ID: id, Notice: dtos.Success(constants.MsgListingUpdated)}
}

func (s *ListingService) Delete(ctx context.Context, id uint) dtos.Outcome {
	if err := s.listings.Delete(ctx, id); err != nil {
		return s.failed("delete", err)
	}

	if s.metrics != nil {
		s.metrics.ListingsDeletedTotal.Inc()
	}
	logging.Info("Listing deleted", "listing_id", id)
	return dtos.Outcome{OK: true, ID: id, Notice: dtos.Info(constants.MsgListingDeleted)}
}

func (s *ListingService) rejected(err error) dtos.Outcome {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return dtos.Outcome{Notice: dtos.Danger(constants.MsgInternalError), Err: err}
	}
	if s.metrics != nil {
		s.metrics.ValidationFailures.WithLabelValues(verr.Field).Inc()
	}
	return dtos.Outcome{Notice: dtos.Danger(verr.Message), Err: err}
}

// failed maps storage errors to notices; anything but not-found is internal.
func (s *ListingService) failed(op string, err error) dtos.Outcome {
	switch {
	case errors.Is(err, ErrListingNotFound):
		return dtos.Outcome{Notice: dtos.Warning(constants.MsgListingNotFound), Err: err}
	case errors.Is(err, repositories.ErrInvalidListing):
		// only reachable if validation and the repository disagree
		logging.Warn("Repository rejected a validated listing", "operation", op, "error", err.Error())
		return dtos.Outcome{Notice: dtos.Danger(constants.MsgInternalError), Err: err}
	default:
		logging.Error("Listing storage failure", "operation", op, "error", err.Error())
		return dtos.Outcome{Notice: dtos.Danger(constants.MsgInternalError), Err: err}
	}
}
