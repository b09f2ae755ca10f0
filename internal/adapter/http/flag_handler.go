package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sellsi-admin-backend/internal/usecase/featureflag"
)

type FlagHandler struct{ uc *featureflag.Usecase }

func NewFlagHandler(uc *featureflag.Usecase) *FlagHandler { return &FlagHandler{uc: uc} }

func (h *FlagHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type setFlagReq struct {
	Enabled     bool   `json:"enabled"`
	Description string `json:"description"`
}

// PUT /feature-flags/:name toggles or creates the named flag.
func (h *FlagHandler) Set(c echo.Context) error {
	var req setFlagReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	fl, err := h.uc.Set(c.Request().Context(), featureflag.SetInput{
		Name:        c.Param("name"),
		Enabled:     req.Enabled,
		Description: req.Description,
		AdminID:     adminID(c),
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, fl)
}
