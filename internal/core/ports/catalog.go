package ports

import (
	"context"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

// RoomRepository persists rooms.
type RoomRepository interface {
	FindAll(ctx context.Context) ([]domain.Room, error)
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	FindByNumber(ctx context.Context, roomNumber string) (*domain.Room, error)
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id string) error
}

// ReservationRepository persists reservations.
type ReservationRepository interface {
	FindAll(ctx context.Context) ([]domain.Reservation, error)
	FindByID(ctx context.Context, id string) (*domain.Reservation, error)
	// FindByRoom returns every reservation of the room, any status.
	FindByRoom(ctx context.Context, roomNumber int) ([]domain.Reservation, error)
	Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	Delete(ctx context.Context, id string) error
}

// UserRepository reads the user directory.
type UserRepository interface {
	FindByRole(ctx context.Context, role domain.Role) ([]domain.DirectoryUser, error)
}

// RoomInput carries the fields of a new room; zero values get defaults.
type RoomInput struct {
	RoomNumber    string
	Type          string
	Description   string
	PricePerNight float64
	MaxCapacity   int
	BedType       string
	Size          int
	Floor         int
	Amenities     []string
	Images        []string
}

// ReservationInput carries the writable reservation fields.
type ReservationInput struct {
	UserID     string
	GuestName  string
	RoomNumber int
	CheckIn    domain.Date
	CheckOut   domain.Date
	Status     string
	TotalPrice float64
}

// RoomService defines room use cases.
type RoomService interface {
	AllRooms(ctx context.Context) ([]domain.Room, error)
	RoomByID(ctx context.Context, id string) (*domain.Room, error)
	RoomByNumber(ctx context.Context, roomNumber string) (*domain.Room, error)
	CreateRoom(ctx context.Context, input RoomInput) (*domain.Room, error)
	EditRoom(ctx context.Context, id string, patch domain.RoomPatch) (*domain.Room, error)
	DeleteRoom(ctx context.Context, id string) error
}

// ReservationService defines reservation use cases.
type ReservationService interface {
	AllReservations(ctx context.Context) ([]domain.Reservation, error)
	ReservationByID(ctx context.Context, id string) (*domain.Reservation, error)
	CreateReservation(ctx context.Context, input ReservationInput) (*domain.Reservation, error)
	UpdateReservation(ctx context.Context, id string, input ReservationInput) (*domain.Reservation, error)
	DeleteReservation(ctx context.Context, id string) error
}

// DirectoryService lists users by role.
type DirectoryService interface {
	UsersByRole(ctx context.Context, role domain.Role) ([]domain.DirectoryUser, error)
}
