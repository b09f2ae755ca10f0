// Package session issues and verifies the admin session tokens that replace
// the panel's localStorage session object.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// DefaultTTL matches the panel's 24-hour session expiry window.
const DefaultTTL = 24 * time.Hour

var (
	ErrNoSession = errors.New("NO_SESSION: missing or malformed session token")
	ErrExpired   = errors.New("SESSION_EXPIRED")
)

type Claims struct {
	AdminID string `json:"admin_id"`
	Usuario string `json:"usuario"`
	jwt.RegisteredClaims
}

// New signs a session token for the given admin.
func New(secret []byte, adminID, usuario string, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now().UTC()
	expires := now.Add(ttl)
	claims := Claims{
		AdminID: adminID,
		Usuario: usuario,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tok, expires, nil
}

// Parse verifies the signature and expiry and returns the claims.
func Parse(secret []byte, raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrNoSession
	}
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrNoSession
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrNoSession
	}
	if !tok.Valid || claims.AdminID == "" {
		return nil, ErrNoSession
	}
	return claims, nil
}
