package api

import (
	"errors"
	"fmt"
	"net/http"

	"pisos-tracker/internal/constants"
	"pisos-tracker/internal/models/dtos"
	"pisos-tracker/internal/services"
	"pisos-tracker/internal/ui"
)

// IndexHandler handles GET /
// Filters narrow the rows shown; malformed numeric filters are ignored.
// The statistics always describe the whole table.
func (h *Handlers) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, raw := dtos.ParseListingFilter(r.URL.Query())

		page, err := h.deps.Services.Listings.Page(r.Context(), filter)
		if err != nil {
			h.log(r).Errorw("Failed to load listings", "error", err.Error())
			http.Error(w, constants.MsgInternalError, http.StatusInternalServerError)
			return
		}

		err = h.deps.Renderer.RenderIndex(w, ui.IndexView{
			Title:    "Pisos visitados",
			Notice:   h.popNotice(w, r),
			Listings: page.Listings,
			Stats:    page.Stats,
			Filters:  raw,
		})
		if err != nil {
			h.log(r).Errorw("Failed to render index", "error", err.Error())
		}
	}
}

// AddFormHandler handles GET /add
func (h *Handlers) AddFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h.deps.Renderer.RenderForm(w, ui.FormView{
			Title:  "Agregar piso",
			Notice: h.popNotice(w, r),
			Action: "/add",
		})
		if err != nil {
			h.log(r).Errorw("Failed to render add form", "error", err.Error())
		}
	}
}

// AddHandler handles POST /add
func (h *Handlers) AddHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.log(r).Warnw("Unreadable form body", "error", err.Error())
			h.redirectWith(w, r, "/add", dtos.Danger(constants.MsgInternalError))
			return
		}

		out := h.deps.Services.Listings.Create(r.Context(), dtos.ParseListingForm(r.PostForm))
		if !out.OK {
			h.redirectWith(w, r, "/add", out.Notice)
			return
		}
		h.redirectWith(w, r, "/", out.Notice)
	}
}

// EditFormHandler handles GET /edit/{id}
func (h *Handlers) EditFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := listingID(r)
		if !ok {
			h.redirectWith(w, r, "/", dtos.Warning(constants.MsgListingNotFound))
			return
		}

		listing, err := h.deps.Services.Listings.Get(r.Context(), id)
		if errors.Is(err, services.ErrListingNotFound) {
			h.redirectWith(w, r, "/", dtos.Warning(constants.MsgListingNotFound))
			return
		}
		if err != nil {
			h.log(r).Errorw("Failed to load listing", "listing_id", id, "error", err.Error())
			h.redirectWith(w, r, "/", dtos.Danger(constants.MsgInternalError))
			return
		}

		err = h.deps.Renderer.RenderForm(w, ui.FormView{
			Title:  "Editar piso",
			Notice: h.popNotice(w, r),
			Action: fmt.Sprintf("/edit/%d", id),
			Form:   ui.FormFromListing(*listing),
		})
		if err != nil {
			h.log(r).Errorw("Failed to render edit form", "error", err.Error())
		}
	}
}

// EditHandler handles POST /edit/{id}
func (h *Handlers) EditHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := listingID(r)
		if !ok {
			h.redirectWith(w, r, "/", dtos.Warning(constants.MsgListingNotFound))
			return
		}
		formURL := fmt.Sprintf("/edit/%d", id)

		if err := r.ParseForm(); err != nil {
			h.log(r).Warnw("Unreadable form body", "listing_id", id, "error", err.Error())
			h.redirectWith(w, r, formURL, dtos.Danger(constants.MsgInternalError))
			return
		}

		out := h.deps.Services.Listings.Update(r.Context(), id, dtos.ParseListingForm(r.PostForm))
		switch {
		case out.OK, errors.Is(out.Err, services.ErrListingNotFound):
			h.redirectWith(w, r, "/", out.Notice)
		default:
			h.redirectWith(w, r, formURL, out.Notice)
		}
	}
}

// DeleteHandler handles POST /delete/{id}. It always ends on the list view.
func (h *Handlers) DeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := listingID(r)
		if !ok {
			h.redirectWith(w, r, "/", dtos.Warning(constants.MsgListingNotFound))
			return
		}

		out := h.deps.Services.Listings.Delete(r.Context(), id)
		h.redirectWith(w, r, "/", out.Notice)
	}
}
