package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sellsi-admin-backend/internal/usecase/payment"
)

// ProofFetcher pulls a stored payment proof so handlers can stream it back.
type ProofFetcher interface {
	Download(ctx context.Context, path string) ([]byte, string, error)
}

type PaymentHandler struct {
	uc     *payment.Usecase
	proofs ProofFetcher
}

func NewPaymentHandler(uc *payment.Usecase, proofs ProofFetcher) *PaymentHandler {
	return &PaymentHandler{uc: uc, proofs: proofs}
}

// GET /payment-releases?status=&q=&from=&to=
func (h *PaymentHandler) List(c echo.Context) error {
	from, err := parseDateParam(c.QueryParam("from"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid from date, want YYYY-MM-DD"})
	}
	to, err := parseDateParam(c.QueryParam("to"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid to date, want YYYY-MM-DD"})
	}
	if to != nil {
		// Make the upper bound inclusive for the whole day.
		end := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		to = &end
	}
	out, err := h.uc.List(c.Request().Context(), c.QueryParam("status"), c.QueryParam("q"), from, to)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("release_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type releaseReq struct {
	Notes string `json:"notes"`
}

func (h *PaymentHandler) Release(c echo.Context) error {
	var req releaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Release(c.Request().Context(), payment.ReleaseInput{
		ReleaseID: c.Param("release_id"),
		AdminID:   adminID(c),
		Notes:     req.Notes,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) Cancel(c echo.Context) error {
	var req rejectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Cancel(c.Request().Context(), payment.CancelInput{
		ReleaseID: c.Param("release_id"),
		AdminID:   adminID(c),
		Reason:    req.Reason,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// GET /payment-releases/:release_id/proof streams the stored payment proof.
func (h *PaymentHandler) Proof(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("release_id"))
	if err != nil {
		return writeErr(c, err)
	}
	if dto.ProofPath == "" {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "no payment proof on record"})
	}
	data, contentType, err := h.proofs.Download(c.Request().Context(), dto.ProofPath)
	if err != nil {
		return writeErr(c, err)
	}
	return c.Blob(http.StatusOK, contentType, data)
}

func parseDateParam(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
