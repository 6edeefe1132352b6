package common

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pisos-tracker/internal/constants"
	"pisos-tracker/internal/models/dtos"
)

// carry copies the cookies set on rec into a fresh request.
func carry(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func flashCleared(rec *httptest.ResponseRecorder) bool {
	for _, c := range rec.Result().Cookies() {
		if c.Name == constants.FlashCookie && c.MaxAge < 0 {
			return true
		}
	}
	return false
}

func TestFlashStores_ConsumedOnce(t *testing.T) {
	stores := map[string]FlashStore{
		"cookie": NewCookieFlashStore([]byte("test-secret"), time.Minute),
		"memory": NewMemoryFlashStore(time.Minute),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			want := dtos.Success(constants.MsgListingCreated)

			put := httptest.NewRecorder()
			require.NoError(t, store.Put(ctx, put, want))

			req := carry(put)
			first := httptest.NewRecorder()
			got, err := store.Pop(ctx, first, req)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, want, *got)
			assert.True(t, flashCleared(first))

			// browser honours the clear; nothing left to read
			got, err = store.Pop(ctx, httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestMemoryFlashStore_ReplayedCookieIsEmpty(t *testing.T) {
	store := NewMemoryFlashStore(time.Minute)
	ctx := context.Background()

	put := httptest.NewRecorder()
	require.NoError(t, store.Put(ctx, put, dtos.Info("hola")))

	req := carry(put)
	got, err := store.Pop(ctx, httptest.NewRecorder(), req)
	require.NoError(t, err)
	require.NotNil(t, got)

	got, err = store.Pop(ctx, httptest.NewRecorder(), req)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCookieFlashStore_RejectsForeignSignature(t *testing.T) {
	ctx := context.Background()
	put := httptest.NewRecorder()
	require.NoError(t, NewCookieFlashStore([]byte("other"), time.Minute).Put(ctx, put, dtos.Danger("x")))

	got, err := NewCookieFlashStore([]byte("mine"), time.Minute).Pop(ctx, httptest.NewRecorder(), carry(put))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCookieFlashStore_Expired(t *testing.T) {
	ctx := context.Background()
	store := NewCookieFlashStore([]byte("s"), -time.Minute)

	put := httptest.NewRecorder()
	require.NoError(t, store.Put(ctx, put, dtos.Danger("x")))

	got, err := store.Pop(ctx, httptest.NewRecorder(), carry(put))
	require.NoError(t, err)
	assert.Nil(t, got)
}
