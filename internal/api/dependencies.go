package api

import (
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"pisos-tracker/internal/common"
	"pisos-tracker/internal/db/repositories"
	"pisos-tracker/internal/metrics"
	"pisos-tracker/internal/services"
	"pisos-tracker/internal/ui"
)

type Repositories struct {
	Listings *repositories.ListingRepository
	Stats    *repositories.ListingStatsRepo
}

type Services struct {
	Listings *services.ListingService
	Export   *services.ExportService
	Flash    common.FlashStore
}

// Dependencies is built once at startup and shared read-only by all handlers.
type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Renderer *ui.Renderer
	Metrics  *metrics.MetricsRegistry
	UpSince  time.Time
}

func InitDependencies(orm *gorm.DB, sqlxDB *sqlx.DB, flash common.FlashStore, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		Listings: repositories.NewListingRepository(orm, metricsReg),
		Stats:    repositories.NewListingStatsRepo(sqlxDB, metricsReg),
	}

	renderer, err := ui.NewRenderer()
	if err != nil {
		return nil, err
	}

	svcs := &Services{
		Listings: services.NewListingService(repos.Listings, repos.Stats, metricsReg),
		Export:   services.NewExportService(repos.Listings, metricsReg),
		Flash:    flash,
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Renderer: renderer,
		Metrics:  metricsReg,
		UpSince:  time.Now(),
	}, nil
}
