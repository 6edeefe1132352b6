package ui

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pisos-tracker/internal/constants"
	"pisos-tracker/internal/models/dtos"
	"pisos-tracker/internal/models/gorm"
)

func TestRenderer_Index(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	notice := dtos.Success(constants.MsgListingCreated)
	rec := httptest.NewRecorder()
	err = r.RenderIndex(rec, IndexView{
		Title:  "Pisos",
		Notice: &notice,
		Listings: []gorm.Listing{
			{ID: 3, VisitDate: "2024-01-01", Address: "<Calle>", Surface: 50, Price: 100000},
		},
		Stats:   dtos.ListingStats{AvgSurface: 50, AvgPrice: 100000, AvgPricePerArea: 2000},
		Filters: dtos.FilterValues{Address: "calle"},
	})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, constants.MsgListingCreated)
	assert.Contains(t, body, "&lt;Calle&gt;")
	assert.Contains(t, body, "2000.00")
	assert.Contains(t, body, `/edit/3`)
	assert.Contains(t, body, `value="calle"`)
}

func TestRenderer_Form(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = r.RenderForm(rec, FormView{
		Title:  "Editar piso",
		Action: "/edit/9",
		Form:   FormFromListing(gorm.Listing{VisitDate: "2024-02-02", Address: "Sol 1", Surface: 72.5, Price: 250000}),
	})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Contains(t, body, `action="/edit/9"`)
	assert.Contains(t, body, `value="72.5"`)
	assert.Contains(t, body, `value="250000"`)
}
