package api

import (
	"net/http"

	"pisos-tracker/internal/constants"
	"pisos-tracker/internal/models/dtos"
	"pisos-tracker/internal/models/dtos/responses"
)

// ListListingsAPIHandler handles GET /api/v1/listings
// Same filters and statistics contract as the HTML list view.
func (h *Handlers) ListListingsAPIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, raw := dtos.ParseListingFilter(r.URL.Query())

		page, err := h.deps.Services.Listings.Page(r.Context(), filter)
		if err != nil {
			h.log(r).Errorw("Failed to load listings", "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, constants.MsgInternalError)
			return
		}

		out := responses.ListingsPageResponse{
			Listings: make([]responses.ListingResponse, 0, len(page.Listings)),
			Stats:    page.Stats,
			Filters:  raw,
		}
		for _, l := range page.Listings {
			item := responses.ListingResponse{
				ID:          l.ID,
				VisitDate:   l.VisitDate,
				Address:     l.Address,
				SurfaceArea: l.Surface,
				Floor:       l.Floor,
				Price:       l.Price,
				Link:        l.Link,
				Notes:       l.Notes,
			}
			if v, ok := l.PricePerArea(); ok {
				item.PricePerArea = &v
			}
			out.Listings = append(out.Listings, item)
		}

		respondWithSuccess(w, http.StatusOK, &out)
	}
}
