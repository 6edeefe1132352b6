package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"pisos-tracker/internal/models/dtos"
	"pisos-tracker/internal/models/gorm"
)

//go:embed templates/*.html
var templateFS embed.FS

// IndexView is the data for the listing page.
type IndexView struct {
	Title    string
	Notice   *dtos.Notice
	Listings []gorm.Listing
	Stats    dtos.ListingStats
	Filters  dtos.FilterValues
}

// FormView is the data for the create/edit page.
type FormView struct {
	Title  string
	Notice *dtos.Notice
	Action string
	Form   dtos.ListingForm
}

// Renderer holds the parsed page templates. It is built once at startup
// and safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcMap := template.FuncMap{
		"money": FormatAmount,
		"ratio": func(l gorm.Listing) string {
			if v, ok := l.PricePerArea(); ok {
				return FormatAmount(v)
			}
			return ""
		},
	}

	pages := make(map[string]*template.Template)
	for _, page := range []string{"index", "form"} {
		t, err := template.New(page).Funcs(funcMap).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", page, err)
		}
		pages[page] = t
	}

	return &Renderer{pages: pages}, nil
}

func (r *Renderer) RenderIndex(w http.ResponseWriter, v IndexView) error {
	return r.render(w, "index", v)
}

func (r *Renderer) RenderForm(w http.ResponseWriter, v FormView) error {
	return r.render(w, "form", v)
}

// render executes into a buffer first so a template error never leaves a half-written page.
func (r *Renderer) render(w http.ResponseWriter, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		http.Error(w, "Error rendering template", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}

// FormatAmount prints a number with two decimals.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormFromListing pre-fills the edit form.
func FormFromListing(l gorm.Listing) dtos.ListingForm {
	return dtos.ListingForm{
		Date:    l.VisitDate,
		Address: l.Address,
		Surface: strconv.FormatFloat(l.Surface, 'f', -1, 64),
		Floor:   l.Floor,
		Price:   strconv.FormatFloat(l.Price, 'f', -1, 64),
		Link:    l.Link,
		Notes:   l.Notes,
	}
}
