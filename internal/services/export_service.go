package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"pisos-tracker/internal/metrics"
	"pisos-tracker/internal/models/gorm"
)

var ErrNothingToExport = errors.New("nothing to export")

var exportHeader = []string{
	"id", "visit_date", "address", "surface_area", "floor", "price", "link", "notes", "price_per_area",
}

// ExportService snapshots the full table as CSV. Filters never apply here.
type ExportService struct {
	listings ListingStore
	metrics  *metrics.MetricsRegistry
}

func NewExportService(listings ListingStore, metricsReg *metrics.MetricsRegistry) *ExportService {
	return &ExportService{listings: listings, metrics: metricsReg}
}

// Snapshot returns every listing in listing order, or ErrNothingToExport.
func (s *ExportService) Snapshot(ctx context.Context) ([]gorm.Listing, error) {
	listings, err := s.listings.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return nil, ErrNothingToExport
	}
	return listings, nil
}

// Export writes the snapshot to w. Nothing is written when the table is empty.
func (s *ExportService) Export(ctx context.Context, w io.Writer) (int, error) {
	listings, err := s.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	if err := WriteListingsCSV(w, listings); err != nil {
		return 0, err
	}
	if s.metrics != nil {
		s.metrics.ExportsTotal.Inc()
	}
	return len(listings), nil
}

// WriteListingsCSV writes a header row plus one row per listing.
func WriteListingsCSV(w io.Writer, listings []gorm.Listing) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, l := range listings {
		ratio := ""
		if v, ok := l.PricePerArea(); ok {
			ratio = formatAmount(v)
		}
		row := []string{
			strconv.FormatUint(uint64(l.ID), 10),
			l.VisitDate,
			l.Address,
			formatAmount(l.Surface),
			l.Floor,
			formatAmount(l.Price),
			l.Link,
			l.Notes,
			ratio,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write row %d: %w", l.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
