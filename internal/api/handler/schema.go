package handler

import (
	"github.com/skillstorm/hotel-management/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Console ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"omitempty,oneof=user employee admin"`
}

type sessionResponse struct {
	User     *domain.SessionRecord `json:"user"`
	Redirect string                `json:"redirect,omitempty"`
}

type demoAccount struct {
	Label    string      `json:"label"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

type roleOption struct {
	Value domain.Role `json:"value"`
	Label string      `json:"label"`
}

type loginView struct {
	Authenticated bool          `json:"authenticated"`
	Roles         []roleOption  `json:"roles"`
	DemoAccounts  []demoAccount `json:"demoAccounts"`
}

type bookingRequest struct {
	CheckIn  string `json:"checkIn"  validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"checkOut" validate:"required,datetime=2006-01-02"`
}

// --- Catalog ---

type createRoomRequest struct {
	RoomNumber    string   `json:"roomNumber"    validate:"required"`
	Type          string   `json:"type"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"pricePerNight" validate:"gte=0"`
	MaxCapacity   int      `json:"maxCapacity"   validate:"gte=0"`
	BedType       string   `json:"bedType"`
	Size          int      `json:"size"          validate:"gte=0"`
	Floor         int      `json:"floor"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
}

type editRoomRequest struct {
	Type          *string  `json:"type"`
	Description   *string  `json:"description"`
	PricePerNight *float64 `json:"pricePerNight" validate:"omitempty,gte=0"`
	MaxCapacity   *int     `json:"maxCapacity"   validate:"omitempty,gt=0"`
	BedType       *string  `json:"bedType"`
	Size          *int     `json:"size"          validate:"omitempty,gt=0"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
	IsAvailable   *bool    `json:"isAvailable"`
	Status        *string  `json:"status"        validate:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE available occupied maintenance"`
}

type reservationRequest struct {
	UserID     string      `json:"userId"`
	GuestName  string      `json:"guestName"  validate:"required"`
	RoomNumber int         `json:"roomNumber" validate:"required,gt=0"`
	CheckIn    domain.Date `json:"checkIn"`
	CheckOut   domain.Date `json:"checkOut"`
	Status     string      `json:"status"`
	TotalPrice float64     `json:"totalPrice" validate:"gte=0"`
}
