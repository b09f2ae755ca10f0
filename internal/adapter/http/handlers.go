package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Handlers bundles every endpoint group for route registration.
type Handlers struct {
	Base      *Handler
	Admins    *AdminHandler
	Financing *FinancingHandler
	Payments  *PaymentHandler
	Transfers *TransferHandler
	Users     *UserHandler
	Flags     *FlagHandler
	Stats     *StatsHandler
}

// Register wires all routes. Everything except /health and /login sits behind
// the session middleware; mutating routes additionally take the extra
// middleware passed in (idempotency in production).
func Register(e *echo.Echo, h Handlers, session echo.MiddlewareFunc, mutating ...echo.MiddlewareFunc) {
	e.GET("/health", h.Base.Health)
	e.POST("/login", h.Admins.Login)

	g := e.Group("", session)
	g.GET("/me", h.Admins.Me)
	g.POST("/admins", h.Admins.Create, mutating...)

	g.GET("/financings", h.Financing.List)
	g.GET("/financings/:request_id", h.Financing.Get)
	g.POST("/financings/:request_id/approve", h.Financing.Approve, mutating...)
	g.POST("/financings/:request_id/reject", h.Financing.Reject, mutating...)
	g.POST("/financings/:request_id/pause", h.Financing.Pause, mutating...)
	g.POST("/financings/:request_id/unpause", h.Financing.Unpause, mutating...)
	g.POST("/financings/:request_id/restore", h.Financing.Restore, mutating...)
	g.POST("/financings/:request_id/refund", h.Financing.Refund, mutating...)

	g.GET("/payment-releases", h.Payments.List)
	g.GET("/payment-releases/:release_id", h.Payments.Get)
	g.GET("/payment-releases/:release_id/proof", h.Payments.Proof)
	g.POST("/payment-releases/:release_id/release", h.Payments.Release, mutating...)
	g.POST("/payment-releases/:release_id/cancel", h.Payments.Cancel, mutating...)

	g.GET("/bank-transfers/pending", h.Transfers.ListPending)
	g.GET("/bank-transfers/:transfer_id/proof", h.Transfers.Proof)
	g.POST("/bank-transfers/:transfer_id/confirm", h.Transfers.Confirm, mutating...)
	g.POST("/bank-transfers/:transfer_id/reject", h.Transfers.Reject, mutating...)

	g.GET("/users", h.Users.List)
	g.POST("/users/:user_id/ban", h.Users.Ban, mutating...)
	g.POST("/users/:user_id/unban", h.Users.Unban, mutating...)
	g.POST("/users/:user_id/verify", h.Users.Verify, mutating...)
	g.DELETE("/users/:user_id", h.Users.Delete, mutating...)

	g.GET("/feature-flags", h.Flags.List)
	g.PUT("/feature-flags/:name", h.Flags.Set, mutating...)

	g.GET("/stats/dashboard", h.Stats.Dashboard)
}
