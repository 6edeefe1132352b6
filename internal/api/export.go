package api

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"pisos-tracker/internal/constants"
	"pisos-tracker/internal/models/dtos"
	"pisos-tracker/internal/services"
)

// ExportHandler handles GET /export
// The file always holds the whole table; query filters are accepted and ignored.
func (h *Handlers) ExportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		n, err := h.deps.Services.Export.Export(r.Context(), &buf)
		if errors.Is(err, services.ErrNothingToExport) {
			h.redirectWith(w, r, "/", dtos.Warning(constants.MsgNothingToExport))
			return
		}
		if err != nil {
			h.log(r).Errorw("Export failed", "error", err.Error())
			h.redirectWith(w, r, "/", dtos.Danger(constants.MsgInternalError))
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+constants.ExportFileName+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.Header().Set("X-Export-Rows", strconv.Itoa(n))
		_, _ = buf.WriteTo(w)
	}
}
