package common

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"pisos-tracker/internal/constants"
	"pisos-tracker/internal/logging"
	"pisos-tracker/internal/models/dtos"
)

type flashClaims struct {
	Level   string `json:"lvl"`
	Message string `json:"msg"`
	jwt.RegisteredClaims
}

// CookieFlashStore keeps the notice itself in an HS256-signed cookie.
type CookieFlashStore struct {
	secretKey []byte
	ttl       time.Duration
}

var _ FlashStore = (*CookieFlashStore)(nil)

func NewCookieFlashStore(secretKey []byte, ttl time.Duration) *CookieFlashStore {
	return &CookieFlashStore{secretKey: secretKey, ttl: ttl}
}

func (s *CookieFlashStore) Put(_ context.Context, w http.ResponseWriter, n dtos.Notice) error {
	now := time.Now()
	claims := flashClaims{
		Level:   string(n.Level),
		Message: n.Message,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return fmt.Errorf("failed to sign flash: %w", err)
	}

	setFlashCookie(w, token, s.ttl)
	return nil
}

func (s *CookieFlashStore) Pop(_ context.Context, w http.ResponseWriter, r *http.Request) (*dtos.Notice, error) {
	raw, ok := readFlashCookie(w, r)
	if !ok {
		return nil, nil
	}

	var claims flashClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		logging.Debug("Discarding flash cookie", "error", err.Error())
		return nil, nil
	}

	return &dtos.Notice{Level: constants.NoticeLevel(claims.Level), Message: claims.Message}, nil
}
