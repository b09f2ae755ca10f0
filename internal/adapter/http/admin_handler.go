package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sellsi-admin-backend/internal/usecase/adminacct"
)

type AdminHandler struct{ uc *adminacct.Usecase }

func NewAdminHandler(uc *adminacct.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

type createAdminReq struct {
	Usuario         string `json:"usuario"          validate:"required,min=3"`
	Email           string `json:"email"            validate:"required,email"`
	FullName        string `json:"full_name"        validate:"required"`
	Password        string `json:"password"         validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

func (h *AdminHandler) Create(c echo.Context) error {
	var req createAdminReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Create(c.Request().Context(), adminacct.CreateInput{
		Usuario:         req.Usuario,
		Email:           req.Email,
		FullName:        req.FullName,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		CreatedBy:       adminID(c),
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type loginReq struct {
	Usuario  string `json:"usuario"  validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	sess, err := h.uc.Login(c.Request().Context(), req.Usuario, req.Password)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// GET /me returns the account behind the current session token.
func (h *AdminHandler) Me(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), adminID(c))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
