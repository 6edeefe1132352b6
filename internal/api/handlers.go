package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"pisos-tracker/internal/logging"
	"pisos-tracker/internal/middleware"
	"pisos-tracker/internal/models/dtos"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// redirectWith stores n for the next page and redirects there.
func (h *Handlers) redirectWith(w http.ResponseWriter, r *http.Request, to string, n dtos.Notice) {
	if err := h.deps.Services.Flash.Put(r.Context(), w, n); err != nil {
		h.log(r).Errorw("Failed to store flash notice", "error", err.Error())
	}
	http.Redirect(w, r, to, http.StatusFound)
}

// popNotice consumes the pending notice; a broken store just means no notice.
func (h *Handlers) popNotice(w http.ResponseWriter, r *http.Request) *dtos.Notice {
	n, err := h.deps.Services.Flash.Pop(r.Context(), w, r)
	if err != nil {
		h.log(r).Warnw("Failed to read flash notice", "error", err.Error())
		return nil
	}
	return n
}

func (h *Handlers) log(r *http.Request) *zap.SugaredLogger {
	return logging.WithRequest(middleware.RequestID(r.Context()), r.URL.Path)
}

// listingID reads the {id} path parameter. Out-of-range values report false.
func listingID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
