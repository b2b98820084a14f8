package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillstorm/hotel-management/internal/api/metrics"
	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
)

// ReservationHandler handles HTTP requests for catalog reservations.
type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func toReservationInput(req reservationRequest) ports.ReservationInput {
	return ports.ReservationInput{
		UserID:     req.UserID,
		GuestName:  req.GuestName,
		RoomNumber: req.RoomNumber,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Status:     req.Status,
		TotalPrice: req.TotalPrice,
	}
}

// All handles GET /reservations/all.
//
// @Summary      List reservations
// @Tags         reservations
// @Produce      json
// @Success      200  {array}   domain.Reservation
// @Failure      500  {object}  errorResponse
// @Router       /reservations/all [get]
func (h *ReservationHandler) All(c echo.Context) error {
	items, err := h.service.AllReservations(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /reservations/:id.
//
// @Summary      Get a reservation
// @Tags         reservations
// @Produce      json
// @Param        id   path      string  true  "Reservation id"
// @Success      200  {object}  domain.Reservation
// @Failure      404  {object}  errorResponse
// @Router       /reservations/{id} [get]
func (h *ReservationHandler) Get(c echo.Context) error {
	res, err := h.service.ReservationByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Create handles POST /reservations/new. Guests may only book for themselves.
//
// @Summary      Create a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reservationRequest  true  "Reservation"
// @Success      201   {object}  domain.Reservation
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /reservations/new [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if role == domain.RoleUser {
		if req.UserID != "" && req.UserID != userID {
			return domain.ErrForbidden
		}
		req.UserID = userID
		req.Status = domain.ReservationPending
	}

	res, err := h.service.CreateReservation(c.Request().Context(), toReservationInput(req))
	if err != nil {
		return err
	}
	metrics.ReservationsCreatedTotal.WithLabelValues(res.Status).Inc()
	return c.JSON(http.StatusCreated, res)
}

// Edit handles PUT /reservations/edit/:id.
//
// @Summary      Edit a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Reservation id"
// @Param        body  body      reservationRequest  true  "Reservation"
// @Success      200   {object}  domain.Reservation
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /reservations/edit/{id} [put]
func (h *ReservationHandler) Edit(c echo.Context) error {
	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res, err := h.service.UpdateReservation(c.Request().Context(), c.Param("id"), toReservationInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /reservations/delete/:id.
//
// @Summary      Delete a reservation
// @Tags         reservations
// @Security     BearerAuth
// @Param        id  path  string  true  "Reservation id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /reservations/delete/{id} [delete]
func (h *ReservationHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteReservation(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
