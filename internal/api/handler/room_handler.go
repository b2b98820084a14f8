package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillstorm/hotel-management/internal/api/metrics"
	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
)

// RoomHandler handles HTTP requests for catalog rooms.
type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// All handles GET /rooms/all.
//
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Success      200  {array}   domain.Room
// @Failure      500  {object}  errorResponse
// @Router       /rooms/all [get]
func (h *RoomHandler) All(c echo.Context) error {
	rooms, err := h.service.AllRooms(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// Get handles GET /rooms/:id.
//
// @Summary      Get a room by id
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room id"
// @Success      200  {object}  domain.Room
// @Failure      404  {object}  errorResponse
// @Router       /rooms/{id} [get]
func (h *RoomHandler) Get(c echo.Context) error {
	room, err := h.service.RoomByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// GetByNumber handles GET /rooms/number/:roomNumber.
//
// @Summary      Get a room by room number
// @Tags         rooms
// @Produce      json
// @Param        roomNumber  path      string  true  "Room number"
// @Success      200         {object}  domain.Room
// @Failure      404         {object}  errorResponse
// @Router       /rooms/number/{roomNumber} [get]
func (h *RoomHandler) GetByNumber(c echo.Context) error {
	room, err := h.service.RoomByNumber(c.Request().Context(), c.Param("roomNumber"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Create handles POST /rooms/new.
//
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoomRequest  true  "Room details; omitted fields take defaults"
// @Success      201   {object}  domain.Room
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /rooms/new [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	room, err := h.service.CreateRoom(c.Request().Context(), ports.RoomInput{
		RoomNumber:    req.RoomNumber,
		Type:          req.Type,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		MaxCapacity:   req.MaxCapacity,
		BedType:       req.BedType,
		Size:          req.Size,
		Floor:         req.Floor,
		Amenities:     req.Amenities,
		Images:        req.Images,
	})
	if err != nil {
		return err
	}
	metrics.RoomsCreatedTotal.WithLabelValues(room.Type).Inc()
	return c.JSON(http.StatusCreated, room)
}

// Edit handles PUT /rooms/edit/:id. Omitted fields keep their value.
//
// @Summary      Edit a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Room id"
// @Param        body  body      editRoomRequest  true  "Fields to change"
// @Success      200   {object}  domain.Room
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /rooms/edit/{id} [put]
func (h *RoomHandler) Edit(c echo.Context) error {
	var req editRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	room, err := h.service.EditRoom(c.Request().Context(), c.Param("id"), domain.RoomPatch{
		Type:          req.Type,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		MaxCapacity:   req.MaxCapacity,
		BedType:       req.BedType,
		Size:          req.Size,
		Amenities:     req.Amenities,
		Images:        req.Images,
		IsAvailable:   req.IsAvailable,
		Status:        req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Delete handles DELETE /rooms/delete/:id.
//
// @Summary      Delete a room
// @Tags         rooms
// @Security     BearerAuth
// @Param        id  path  string  true  "Room id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /rooms/delete/{id} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteRoom(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
