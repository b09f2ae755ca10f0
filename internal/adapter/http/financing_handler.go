package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sellsi-admin-backend/internal/usecase/financing"
)

type FinancingHandler struct{ uc *financing.Usecase }

func NewFinancingHandler(uc *financing.Usecase) *FinancingHandler { return &FinancingHandler{uc: uc} }

// GET /financings?status=&q=
func (h *FinancingHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), c.QueryParam("status"), c.QueryParam("q"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FinancingHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *FinancingHandler) Approve(c echo.Context) error {
	dto, err := h.uc.Approve(c.Request().Context(), financing.ApproveInput{
		RequestID: c.Param("request_id"),
		AdminID:   adminID(c),
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type rejectReq struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *FinancingHandler) Reject(c echo.Context) error {
	var req rejectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Reject(c.Request().Context(), financing.RejectInput{
		RequestID: c.Param("request_id"),
		AdminID:   adminID(c),
		Reason:    req.Reason,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type pauseReq struct {
	Reason string `json:"reason"`
}

func (h *FinancingHandler) Pause(c echo.Context) error {
	var req pauseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Pause(c.Request().Context(), financing.PauseInput{
		RequestID: c.Param("request_id"),
		AdminID:   adminID(c),
		Reason:    req.Reason,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *FinancingHandler) Unpause(c echo.Context) error {
	var req pauseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Unpause(c.Request().Context(), financing.PauseInput{
		RequestID: c.Param("request_id"),
		AdminID:   adminID(c),
		Reason:    req.Reason,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type restoreReq struct {
	Amount float64 `json:"amount"    validate:"required,gt=0,dec2"`
	Reason string  `json:"reason"    validate:"required"`
	// The "corrects credit, does not refund money" checkbox.
	Confirmed bool `json:"confirmed" validate:"required"`
}

func (h *FinancingHandler) Restore(c echo.Context) error {
	var req restoreReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Restore(c.Request().Context(), financing.RestoreInput{
		RequestID: c.Param("request_id"),
		AdminID:   adminID(c),
		Amount:    req.Amount,
		Reason:    req.Reason,
		Confirmed: req.Confirmed,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type refundReq struct {
	Amount float64 `json:"amount"             validate:"required,gt=0,dec2"`
	// Confirms the money was already wired out-of-band.
	TransferConfirmed bool `json:"transfer_confirmed" validate:"required"`
}

func (h *FinancingHandler) Refund(c echo.Context) error {
	var req refundReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Refund(c.Request().Context(), financing.RefundInput{
		RequestID:         c.Param("request_id"),
		AdminID:           adminID(c),
		Amount:            req.Amount,
		TransferConfirmed: req.TransferConfirmed,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
