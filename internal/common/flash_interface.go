package common

import (
	"context"
	"net/http"

	"pisos-tracker/internal/models/dtos"
)

// FlashStore carries a notice across a redirect. A notice put once is
// returned by at most one Pop; expired or tampered entries yield nil.
type FlashStore interface {
	// Put stores n and attaches whatever cookie is needed to w
	Put(ctx context.Context, w http.ResponseWriter, n dtos.Notice) error

	// Pop returns and consumes the pending notice for r, or nil
	Pop(ctx context.Context, w http.ResponseWriter, r *http.Request) (*dtos.Notice, error)
}
