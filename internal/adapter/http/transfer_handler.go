package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sellsi-admin-backend/internal/usecase/transfer"
)

type TransferHandler struct {
	uc     *transfer.Usecase
	proofs ProofFetcher
}

func NewTransferHandler(uc *transfer.Usecase, proofs ProofFetcher) *TransferHandler {
	return &TransferHandler{uc: uc, proofs: proofs}
}

// GET /bank-transfers/pending?q=
func (h *TransferHandler) ListPending(c echo.Context) error {
	out, err := h.uc.ListPending(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TransferHandler) Confirm(c echo.Context) error {
	tr, err := h.uc.Confirm(c.Request().Context(), transfer.ReviewInput{
		TransferID: c.Param("transfer_id"),
		AdminID:    adminID(c),
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, tr)
}

func (h *TransferHandler) Reject(c echo.Context) error {
	var req rejectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	tr, err := h.uc.Reject(c.Request().Context(), transfer.ReviewInput{
		TransferID: c.Param("transfer_id"),
		AdminID:    adminID(c),
		Reason:     req.Reason,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, tr)
}

func (h *TransferHandler) Proof(c echo.Context) error {
	tr, err := h.uc.Get(c.Request().Context(), c.Param("transfer_id"))
	if err != nil {
		return writeErr(c, err)
	}
	if tr.ProofPath == "" {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "no payment proof on record"})
	}
	data, contentType, err := h.proofs.Download(c.Request().Context(), tr.ProofPath)
	if err != nil {
		return writeErr(c, err)
	}
	return c.Blob(http.StatusOK, contentType, data)
}
