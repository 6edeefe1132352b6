package services_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pisos-tracker/internal/constants"
	"pisos-tracker/internal/db/dbtest"
	"pisos-tracker/internal/db/repositories"
	"pisos-tracker/internal/models/dtos"
	"pisos-tracker/internal/models/entities"
	"pisos-tracker/internal/models/gorm"
	"pisos-tracker/internal/services"
)

func newService(t *testing.T) (*services.ListingService, *repositories.ListingStatsRepo) {
	t.Helper()
	orm := dbtest.Open(t)
	stats := repositories.NewListingStatsRepo(dbtest.SQLX(t, orm), nil)
	return services.NewListingService(repositories.NewListingRepository(orm, nil), stats, nil), stats
}

func validForm() dtos.ListingForm {
	return dtos.ListingForm{
		Date:    "2024-05-10",
		Address: "Calle Mayor 1",
		Surface: "75",
		Floor:   "2",
		Price:   "250000",
		Link:    "https://example.com/1",
		Notes:   "Reformado",
	}
}

func TestValidateListingForm_OrderAndFirstFailure(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *dtos.ListingForm)
		field   string
		message string
	}{
		{"bad date", func(f *dtos.ListingForm) { f.Date = "2024-13-40" }, constants.FieldDate, constants.MsgInvalidDate},
		{"wrong date format", func(f *dtos.ListingForm) { f.Date = "10/05/2024" }, constants.FieldDate, constants.MsgInvalidDate},
		{"everything bad reports date", func(f *dtos.ListingForm) {
			f.Date, f.Surface, f.Price, f.Address = "", "x", "-1", ""
		}, constants.FieldDate, constants.MsgInvalidDate},
		{"zero surface", func(f *dtos.ListingForm) { f.Surface = "0" }, constants.FieldSurface, constants.MsgInvalidSurface},
		{"text surface", func(f *dtos.ListingForm) { f.Surface = "grande" }, constants.FieldSurface, constants.MsgInvalidSurface},
		{"nan surface", func(f *dtos.ListingForm) { f.Surface = "NaN" }, constants.FieldSurface, constants.MsgInvalidSurface},
		{"surface before price", func(f *dtos.ListingForm) { f.Surface, f.Price = "-3", "-3" }, constants.FieldSurface, constants.MsgInvalidSurface},
		{"negative price", func(f *dtos.ListingForm) { f.Price = "-1" }, constants.FieldPrice, constants.MsgInvalidPrice},
		{"empty price", func(f *dtos.ListingForm) { f.Price = "" }, constants.FieldPrice, constants.MsgInvalidPrice},
		{"price before address", func(f *dtos.ListingForm) { f.Price, f.Address = "0", "" }, constants.FieldPrice, constants.MsgInvalidPrice},
		{"blank address", func(f *dtos.ListingForm) { f.Address = "   " }, constants.FieldAddress, constants.MsgAddressRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			_, err := services.ValidateListingForm(form)
			var verr *services.ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

func TestValidateListingForm_Normalises(t *testing.T) {
	form := validForm()
	form.Date = "2024-5-3"
	form.Surface = " 80.5 "

	l, err := services.ValidateListingForm(form)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-03", l.VisitDate)
	assert.Equal(t, 80.5, l.Surface)
	assert.Equal(t, 250000.0, l.Price)
}

func TestListingService_CreateRejectsWithoutInsert(t *testing.T) {
	svc, stats := newService(t)
	ctx := context.Background()

	q := validForm().Values()
	q.Set(constants.FieldDate, "2024-13-40")

	out := svc.Create(ctx, dtos.ParseListingForm(q))
	assert.False(t, out.OK)
	assert.Equal(t, dtos.Danger(constants.MsgInvalidDate), out.Notice)

	count, err := stats.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestListingService_CreateUpdateDelete(t *testing.T) {
	svc, stats := newService(t)
	ctx := context.Background()

	created := svc.Create(ctx, validForm())
	require.True(t, created.OK, created.Notice.Message)
	assert.Equal(t, dtos.Success(constants.MsgListingCreated), created.Notice)

	form := validForm()
	form.Address = "Calle Nueva 9"
	form.Notes = ""
	updated := svc.Update(ctx, created.ID, form)
	require.True(t, updated.OK, updated.Notice.Message)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Calle Nueva 9", got.Address)
	assert.Empty(t, got.Notes)

	bad := form
	bad.Price = "0"
	rejected := svc.Update(ctx, created.ID, bad)
	assert.False(t, rejected.OK)
	assert.Equal(t, constants.MsgInvalidPrice, rejected.Notice.Message)

	missing := svc.Update(ctx, created.ID+1, form)
	assert.False(t, missing.OK)
	assert.ErrorIs(t, missing.Err, services.ErrListingNotFound)
	assert.Equal(t, constants.MsgListingNotFound, missing.Notice.Message)

	before, err := stats.Count(ctx)
	require.NoError(t, err)

	gone := svc.Delete(ctx, created.ID+1)
	assert.False(t, gone.OK)
	assert.ErrorIs(t, gone.Err, services.ErrListingNotFound)
	after, err := stats.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	deleted := svc.Delete(ctx, created.ID)
	assert.True(t, deleted.OK)
	after, err = stats.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before-1, after)
}

func TestListingService_StatsIgnoreFilters(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	for _, f := range []dtos.ListingForm{
		{Date: "2024-01-01", Address: "A", Surface: "10", Price: "100"},
		{Date: "2024-01-02", Address: "B", Surface: "100", Price: "300"},
	} {
		require.True(t, svc.Create(ctx, f).OK)
	}

	all, err := svc.Page(ctx, dtos.ListingFilter{})
	require.NoError(t, err)
	require.Len(t, all.Listings, 2)

	filter, _ := dtos.ParseListingFilter(url.Values{constants.FilterMinPrice: {"1000000"}})
	none, err := svc.Page(ctx, filter)
	require.NoError(t, err)
	assert.Empty(t, none.Listings)

	assert.Equal(t, all.Stats, none.Stats)
	assert.InDelta(t, 200.0, none.Stats.AvgPrice, 1e-9)
	assert.InDelta(t, 55.0, none.Stats.AvgSurface, 1e-9)
	assert.InDelta(t, 6.5, none.Stats.AvgPricePerArea, 1e-9)
}

type failingStore struct{ err error }

func (f failingStore) List(context.Context, dtos.ListingFilter) ([]gorm.Listing, error) {
	return nil, f.err
}
func (f failingStore) All(context.Context) ([]gorm.Listing, error)      { return nil, f.err }
func (f failingStore) Get(context.Context, uint) (*gorm.Listing, error) { return nil, f.err }
func (f failingStore) Create(context.Context, gorm.Listing) (uint, error) {
	return 0, f.err
}
func (f failingStore) Update(context.Context, uint, gorm.Listing) error { return f.err }
func (f failingStore) Delete(context.Context, uint) error               { return f.err }

type zeroStats struct{}

func (zeroStats) Aggregate(context.Context) (entities.ListingAggregate, error) {
	return entities.ListingAggregate{}, nil
}
func (zeroStats) PriceAreaPairs(context.Context) ([]entities.PriceArea, error) { return nil, nil }
func (zeroStats) Count(context.Context) (int64, error)                         { return 0, nil }
func (zeroStats) Ping(context.Context) error                                   { return nil }

func TestListingService_StorageFailureBecomesInternalNotice(t *testing.T) {
	svc := services.NewListingService(failingStore{err: errors.New("connection refused")}, zeroStats{}, nil)
	ctx := context.Background()

	for name, out := range map[string]dtos.Outcome{
		"create": svc.Create(ctx, validForm()),
		"update": svc.Update(ctx, 1, validForm()),
		"delete": svc.Delete(ctx, 1),
	} {
		assert.False(t, out.OK, name)
		assert.Equal(t, dtos.Danger(constants.MsgInternalError), out.Notice, name)
		assert.NotErrorIs(t, out.Err, services.ErrListingNotFound, name)
	}

	_, err := svc.Page(ctx, dtos.ListingFilter{})
	assert.Error(t, err)
}
