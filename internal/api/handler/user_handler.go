package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
)

type UserHandler struct {
	service ports.DirectoryService
}

func NewUserHandler(service ports.DirectoryService) *UserHandler {
	return &UserHandler{service: service}
}

// ByRole handles GET /users/role?role=.
//
// @Summary      List users with a role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        role  query     string  true  "user, employee or admin"
// @Success      200   {array}   domain.DirectoryUser
// @Failure      400   {object}  errorResponse
// @Router       /users/role [get]
func (h *UserHandler) ByRole(c echo.Context) error {
	role, err := domain.ParseRole(c.QueryParam("role"))
	if err != nil {
		return err
	}
	users, err := h.service.UsersByRole(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
