package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
)

// ViewHandler serves the guarded console views. Every route it handles must
// be mounted behind middleware.Guard.
type ViewHandler struct {
	views ports.ViewService
}

func NewViewHandler(views ports.ViewService) *ViewHandler {
	return &ViewHandler{views: views}
}

func (h *ViewHandler) Dashboard(c echo.Context) error {
	user, err := SessionFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.views.Dashboard(c.Request().Context(), user))
}

// Reservations handles GET /reservations?q=&status=.
func (h *ViewHandler) Reservations(c echo.Context) error {
	user, err := SessionFrom(c)
	if err != nil {
		return err
	}
	filter := ports.ReservationFilter{
		Search: c.QueryParam("q"),
		Status: c.QueryParam("status"),
	}
	return c.JSON(http.StatusOK, h.views.Reservations(c.Request().Context(), user, filter))
}

func (h *ViewHandler) Reservation(c echo.Context) error {
	user, err := SessionFrom(c)
	if err != nil {
		return err
	}
	view, err := h.views.Reservation(c.Request().Context(), user, c.Param("reservationId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *ViewHandler) Rooms(c echo.Context) error {
	user, err := SessionFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.views.Rooms(c.Request().Context(), user))
}

// BrowseRooms handles GET /browse-rooms?type=&maxPrice=&guests=.
func (h *ViewHandler) BrowseRooms(c echo.Context) error {
	user, err := SessionFrom(c)
	if err != nil {
		return err
	}

	filter := ports.RoomFilter{Type: strings.TrimSpace(c.QueryParam("type"))}
	if v := c.QueryParam("maxPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			return domain.Invalid("maxPrice", "maxPrice must be a positive number")
		}
		filter.MaxPrice = price
	}
	if v := c.QueryParam("guests"); v != "" {
		guests, err := strconv.Atoi(v)
		if err != nil || guests < 0 {
			return domain.Invalid("guests", "guests must be a positive whole number")
		}
		filter.Guests = guests
	}
	return c.JSON(http.StatusOK, h.views.BrowseRooms(c.Request().Context(), user, filter))
}

func (h *ViewHandler) Room(c echo.Context) error {
	user, err := SessionFrom(c)
	if err != nil {
		return err
	}
	view, err := h.views.Room(c.Request().Context(), user, c.Param("roomId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Book handles POST /room/:roomId/book.
func (h *ViewHandler) Book(c echo.Context) error {
	user, err := SessionFrom(c)
	if err != nil {
		return err
	}

	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.CheckIn == "" || req.CheckOut == "" {
		return domain.Invalid("dates", "Please select both check-in and check-out dates")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	checkIn, _ := domain.ParseDate(req.CheckIn)
	checkOut, _ := domain.ParseDate(req.CheckOut)

	view, err := h.views.Book(c.Request().Context(), user, ports.BookingInput{
		RoomID:   c.Param("roomId"),
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

func (h *ViewHandler) Employees(c echo.Context) error {
	user, err := SessionFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.views.Employees(c.Request().Context(), user))
}

func (h *ViewHandler) Profile(c echo.Context) error {
	user, err := SessionFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.views.Profile(user))
}
