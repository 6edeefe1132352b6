package common

import (
	"net/http"
	"time"

	"pisos-tracker/internal/constants"
)

func setFlashCookie(w http.ResponseWriter, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.FlashCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearFlashCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.FlashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// readFlashCookie returns the cookie value and clears it on w when present.
func readFlashCookie(w http.ResponseWriter, r *http.Request) (string, bool) {
	c, err := r.Cookie(constants.FlashCookie)
	if err != nil || c.Value == "" {
		return "", false
	}
	clearFlashCookie(w)
	return c.Value, true
}
