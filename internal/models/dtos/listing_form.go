package dtos

import (
	"net/url"
	"strings"

	"pisos-tracker/internal/constants"
)

// ListingForm is the raw, trimmed create/edit submission.
type ListingForm struct {
	Date    string
	Address string
	Surface string
	Floor   string
	Price   string
	Link    string
	Notes   string
}

func ParseListingForm(form url.Values) ListingForm {
	get := func(k string) string { return strings.TrimSpace(form.Get(k)) }
	return ListingForm{
		Date:    get(constants.FieldDate),
		Address: get(constants.FieldAddress),
		Surface: get(constants.FieldSurface),
		Floor:   get(constants.FieldFloor),
		Price:   get(constants.FieldPrice),
		Link:    get(constants.FieldLink),
		Notes:   get(constants.FieldNotes),
	}
}

// Values renders the form back into url.Values, mainly for tests and re-posting.
func (f ListingForm) Values() url.Values {
	return url.Values{
		constants.FieldDate:    {f.Date},
		constants.FieldAddress: {f.Address},
		constants.FieldSurface: {f.Surface},
		constants.FieldFloor:   {f.Floor},
		constants.FieldPrice:   {f.Price},
		constants.FieldLink:    {f.Link},
		constants.FieldNotes:   {f.Notes},
	}
}
