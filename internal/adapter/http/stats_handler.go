package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sellsi-admin-backend/internal/usecase/stats"
)

type StatsHandler struct{ uc *stats.Usecase }

func NewStatsHandler(uc *stats.Usecase) *StatsHandler { return &StatsHandler{uc: uc} }

// GET /stats/dashboard?from=&to= (defaults to the last 30 days)
func (h *StatsHandler) Dashboard(c echo.Context) error {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now
	if p, err := parseDateParam(c.QueryParam("from")); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid from date, want YYYY-MM-DD"})
	} else if p != nil {
		from = *p
	}
	if p, err := parseDateParam(c.QueryParam("to")); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid to date, want YYYY-MM-DD"})
	} else if p != nil {
		to = p.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	dash, err := h.uc.Build(c.Request().Context(), from, to)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dash)
}
