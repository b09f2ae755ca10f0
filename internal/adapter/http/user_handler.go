package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sellsi-admin-backend/internal/usecase/user"
)

type UserHandler struct{ uc *user.Usecase }

func NewUserHandler(uc *user.Usecase) *UserHandler { return &UserHandler{uc: uc} }

// GET /users?filter=&q=
func (h *UserHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), c.QueryParam("filter"), c.QueryParam("q"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Ban(c echo.Context) error {
	var req rejectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	usr, err := h.uc.Ban(c.Request().Context(), user.ActionInput{
		UserID:  c.Param("user_id"),
		AdminID: adminID(c),
		Reason:  req.Reason,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, usr)
}

func (h *UserHandler) Unban(c echo.Context) error {
	usr, err := h.uc.Unban(c.Request().Context(), user.ActionInput{
		UserID:  c.Param("user_id"),
		AdminID: adminID(c),
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, usr)
}

func (h *UserHandler) Verify(c echo.Context) error {
	usr, err := h.uc.Verify(c.Request().Context(), user.ActionInput{
		UserID:  c.Param("user_id"),
		AdminID: adminID(c),
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, usr)
}

// DELETE /users/:user_id soft-deletes the account, keeping the audit trail.
func (h *UserHandler) Delete(c echo.Context) error {
	err := h.uc.Delete(c.Request().Context(), user.ActionInput{
		UserID:  c.Param("user_id"),
		AdminID: adminID(c),
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
