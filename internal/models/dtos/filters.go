package dtos

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"pisos-tracker/internal/constants"
)

// ListingFilter narrows the listing view. A nil bound means no constraint.
type ListingFilter struct {
	Address    string
	MinPrice   *float64
	MaxPrice   *float64
	MinSurface *float64
	MaxSurface *float64
}

// FilterValues echoes the raw query values back to the filter form.
type FilterValues struct {
	Address    string `json:"direccion"`
	MinPrice   string `json:"min_precio"`
	MaxPrice   string `json:"max_precio"`
	MinSurface string `json:"min_superficie"`
	MaxSurface string `json:"max_superficie"`
}

// ParseListingFilter reads the optional filters from a query string.
// Numeric values that do not parse are dropped, never rejected.
func ParseListingFilter(q url.Values) (ListingFilter, FilterValues) {
	raw := FilterValues{
		Address:    strings.TrimSpace(q.Get(constants.FilterAddress)),
		MinPrice:   q.Get(constants.FilterMinPrice),
		MaxPrice:   q.Get(constants.FilterMaxPrice),
		MinSurface: q.Get(constants.FilterMinSurface),
		MaxSurface: q.Get(constants.FilterMaxSurface),
	}

	return ListingFilter{
		Address:    raw.Address,
		MinPrice:   parseOptionalFloat(raw.MinPrice),
		MaxPrice:   parseOptionalFloat(raw.MaxPrice),
		MinSurface: parseOptionalFloat(raw.MinSurface),
		MaxSurface: parseOptionalFloat(raw.MaxSurface),
	}, raw
}

// IsEmpty reports whether no predicate would be applied.
func (f ListingFilter) IsEmpty() bool {
	return f.Address == "" && f.MinPrice == nil && f.MaxPrice == nil &&
		f.MinSurface == nil && f.MaxSurface == nil
}

func parseOptionalFloat(s string) *float64 {
	v, ok := ParseFiniteFloat(s)
	if !ok {
		return nil
	}
	return &v
}

// ParseFiniteFloat parses a trimmed decimal number, refusing NaN and infinities.
func ParseFiniteFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
