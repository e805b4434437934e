package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/util"
)

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, fields domain.UserCreateFields) (*domain.User, error)
}

type UserHandler struct {
	users UserService
}

func RegisterUsers(api *echo.Group, users UserService) {
	handler := &UserHandler{users: users}

	api.GET("/users", handler.listUsers)
	api.POST("/users", handler.createUser)
}

func (h *UserHandler) listUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return writeReadError(c, err, "unable to list users")
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) createUser(c echo.Context) error {
	var req domain.UserCreateFields
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	user, err := h.users.Create(c.Request().Context(), req)
	if err != nil {
		return writeWriteError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}
