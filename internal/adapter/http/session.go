package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"sellsi-admin-backend/internal/session"
)

const (
	ctxAdminID = "admin_id"
	ctxUsuario = "admin_usuario"
)

// SessionMiddleware verifies the bearer token and stashes the admin identity
// in the request context. Routes behind it can rely on adminID(c) != "".
func SessionMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
			raw = strings.TrimPrefix(raw, "Bearer ")
			claims, err := session.Parse(secret, raw)
			if err != nil {
				return writeErr(c, err)
			}
			c.Set(ctxAdminID, claims.AdminID)
			c.Set(ctxUsuario, claims.Usuario)
			return next(c)
		}
	}
}

func adminID(c echo.Context) string {
	if v, ok := c.Get(ctxAdminID).(string); ok {
		return v
	}
	return ""
}
