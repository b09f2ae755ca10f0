package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// statusFor maps the machine-parseable domain error prefixes onto HTTP codes.
// Unknown errors are a 500 with a generic label so internals never leak.
func statusFor(err error) (int, string) {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "VALIDATION:"):
		return http.StatusUnprocessableEntity, msg
	case strings.HasPrefix(msg, "NOT_FOUND"):
		return http.StatusNotFound, msg
	case strings.HasPrefix(msg, "INVALID_STATUS"):
		return http.StatusConflict, msg
	case strings.HasPrefix(msg, "DUPLICATE"):
		return http.StatusConflict, msg
	case strings.HasPrefix(msg, "ADMIN_NOT_FOUND"), strings.HasPrefix(msg, "INVALID_CREDENTIALS"):
		return http.StatusUnauthorized, msg
	case strings.HasPrefix(msg, "ADMIN_INACTIVE"):
		return http.StatusForbidden, msg
	case strings.HasPrefix(msg, "NO_SESSION"), strings.HasPrefix(msg, "SESSION_EXPIRED"):
		return http.StatusUnauthorized, msg
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func writeErr(c echo.Context, err error) error {
	code, msg := statusFor(err)
	return c.JSON(code, ErrorResponse{Error: msg})
}
