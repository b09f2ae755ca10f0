package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"sellsi-admin-backend/internal/session"
)

// expiredToken signs claims that ran out an hour ago; session.New falls back
// to the 24-hour default for non-positive TTLs, so the expiry branch needs a
// hand-built token.
func expiredToken(t *testing.T, secret []byte) string {
	t.Helper()
	claims := session.Claims{
		AdminID: actingAdmin,
		Usuario: "jperez",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(-time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}
	return tok
}

func TestSessionMiddleware(t *testing.T) {
	secret := []byte("test-secret")
	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		return c.String(stdhttp.StatusOK, adminID(c))
	}, SessionMiddleware(secret))

	t.Run("valid token passes identity through", func(t *testing.T) {
		tok, _, err := session.New(secret, actingAdmin, "jperez", time.Hour)
		if err != nil {
			t.Fatalf("session.New: %v", err)
		}
		req := httptest.NewRequest(stdhttp.MethodGet, "/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != stdhttp.StatusOK {
			t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
		}
		if rec.Body.String() != actingAdmin {
			t.Fatalf("admin id = %q, want %q", rec.Body.String(), actingAdmin)
		}
	})

	t.Run("missing token is 401", func(t *testing.T) {
		req := httptest.NewRequest(stdhttp.MethodGet, "/me", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != stdhttp.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("expired token is 401", func(t *testing.T) {
		req := httptest.NewRequest(stdhttp.MethodGet, "/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+expiredToken(t, secret))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != stdhttp.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		var resp ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if resp.Error != session.ErrExpired.Error() {
			t.Fatalf("error = %q, want %q", resp.Error, session.ErrExpired.Error())
		}
	})
}
