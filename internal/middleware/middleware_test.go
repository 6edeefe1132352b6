package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestRouteLabel(t *testing.T) {
	var seen []string
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			seen = append(seen, RouteLabel(req))
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/edit/{id:[0-9]+}", func(w http.ResponseWriter, _ *http.Request) {})
	r.Get("/export", func(w http.ResponseWriter, _ *http.Request) {})

	for _, path := range []string{"/edit/42", "/export", "/wp-admin/a", "/wp-admin/b", "/x/y/z"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, []string{"/edit/{id:[0-9]+}", "/export", UnknownEndpoint, UnknownEndpoint, UnknownEndpoint}, seen)
	assert.Equal(t, UnknownEndpoint, RouteLabel(httptest.NewRequest(http.MethodGet, "/export", nil)))
}

func TestRateLimiter(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	assert.Nil(t, NewRateLimiter(0, 5))

	h := NewRateLimiter(0.001, 2).Handler(ok)
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/add", nil)
		req.RemoteAddr = "203.0.113.9:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{200, 200, http.StatusTooManyRequests}, codes)

	var disabled *RateLimiter
	rec := httptest.NewRecorder()
	disabled.Handler(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/add", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecoverer(t *testing.T) {
	h := RequestIDMiddleware(Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
