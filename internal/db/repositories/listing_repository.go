package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gormlib "gorm.io/gorm"

	"pisos-tracker/internal/db"
	"pisos-tracker/internal/metrics"
	"pisos-tracker/internal/models/dtos"
	"pisos-tracker/internal/models/gorm"
)

var (
	ErrNotFound       = errors.New("listing not found")
	ErrInvalidListing = errors.New("listing violates surface/price constraints")
)

// Predicate is one parameterised WHERE fragment.
type Predicate struct {
	Clause string
	Arg    any
}

// BuildListingPredicates turns a filter into an ordered AND-list of predicates
// for the given gorm dialect ("postgres" or "sqlite").
// Absent filter values contribute nothing.
func BuildListingPredicates(dialect string, f dtos.ListingFilter) []Predicate {
	var preds []Predicate

	if f.Address != "" {
		preds = append(preds, addressPredicate(dialect, f.Address))
	}
	if f.MinPrice != nil {
		preds = append(preds, Predicate{"precio >= ?", *f.MinPrice})
	}
	if f.MaxPrice != nil {
		preds = append(preds, Predicate{"precio <= ?", *f.MaxPrice})
	}
	if f.MinSurface != nil {
		preds = append(preds, Predicate{"superficie >= ?", *f.MinSurface})
	}
	if f.MaxSurface != nil {
		preds = append(preds, Predicate{"superficie <= ?", *f.MaxSurface})
	}

	return preds
}

// addressPredicate matches a case-insensitive substring of direccion.
// Both sides are folded with Unicode rules so accented capitals match.
func addressPredicate(dialect, address string) Predicate {
	if dialect == "postgres" {
		return Predicate{"direccion ILIKE ?", "%" + address + "%"}
	}
	return Predicate{db.UnicodeLowerFunc + "(direccion) LIKE ?", "%" + strings.ToLower(address) + "%"}
}

// ListingRepository handles CRUD on the pisos table
type ListingRepository struct {
	db      *gormlib.DB
	metrics *metrics.MetricsRegistry
}

// NewListingRepository creates a new listing repository. metricsReg may be nil.
func NewListingRepository(db *gormlib.DB, metricsReg *metrics.MetricsRegistry) *ListingRepository {
	return &ListingRepository{db: db, metrics: metricsReg}
}

// List returns the listings matching every predicate of f, newest visit first.
func (r *ListingRepository) List(ctx context.Context, f dtos.ListingFilter) ([]gorm.Listing, error) {
	defer r.metrics.ObserveQuery("list", time.Now())

	q := r.db.WithContext(ctx).Model(&gorm.Listing{})
	for _, p := range BuildListingPredicates(r.db.Dialector.Name(), f) {
		q = q.Where(p.Clause, p.Arg)
	}

	var listings []gorm.Listing
	if err := q.Order("fecha_visita DESC").Order("id DESC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return listings, nil
}

// All returns the whole table in listing order.
func (r *ListingRepository) All(ctx context.Context) ([]gorm.Listing, error) {
	return r.List(ctx, dtos.ListingFilter{})
}

func (r *ListingRepository) Get(ctx context.Context, id uint) (*gorm.Listing, error) {
	defer r.metrics.ObserveQuery("get", time.Now())

	var listing gorm.Listing
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get listing %d: %w", id, err)
	}
	return &listing, nil
}

// Create inserts l and returns its new id. The id on l is ignored.
func (r *ListingRepository) Create(ctx context.Context, l gorm.Listing) (uint, error) {
	if err := checkPositive(l); err != nil {
		return 0, err
	}
	defer r.metrics.ObserveQuery("insert", time.Now())

	l.ID = 0
	if err := r.db.WithContext(ctx).Create(&l).Error; err != nil {
		return 0, fmt.Errorf("insert listing: %w", err)
	}
	return l.ID, nil
}

// Update replaces every field of listing id except the id itself.
func (r *ListingRepository) Update(ctx context.Context, id uint, l gorm.Listing) error {
	if err := checkPositive(l); err != nil {
		return err
	}
	defer r.metrics.ObserveQuery("update", time.Now())

	res := r.db.WithContext(ctx).
		Model(&gorm.Listing{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"fecha_visita":  l.VisitDate,
			"direccion":     l.Address,
			"superficie":    l.Surface,
			"planta":        l.Floor,
			"precio":        l.Price,
			"enlace":        l.Link,
			"observaciones": l.Notes,
		})
	if res.Error != nil {
		return fmt.Errorf("update listing %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id uint) error {
	defer r.metrics.ObserveQuery("delete", time.Now())

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&gorm.Listing{})
	if res.Error != nil {
		return fmt.Errorf("delete listing %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func checkPositive(l gorm.Listing) error {
	if !(l.Surface > 0) {
		return fmt.Errorf("%w: superficie=%v", ErrInvalidListing, l.Surface)
	}
	if !(l.Price > 0) {
		return fmt.Errorf("%w: precio=%v", ErrInvalidListing, l.Price)
	}
	return nil
}
