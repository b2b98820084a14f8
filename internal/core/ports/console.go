package ports

import (
	"context"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

// CatalogSnapshot is what the dashboard-style views render from.
type CatalogSnapshot struct {
	Rooms        []domain.Room
	Reservations []domain.Reservation
}

// CatalogFetcher is the console's view of the catalog API. Failures wrap
// domain.ErrFetchFailure, except a rejected booking which is
// domain.ErrRoomUnavailable. Calls are made on behalf of principal.
type CatalogFetcher interface {
	Snapshot(ctx context.Context, principal domain.SessionRecord) (CatalogSnapshot, error)
	Employees(ctx context.Context, principal domain.SessionRecord) ([]domain.DirectoryUser, error)
	CreateReservation(ctx context.Context, principal domain.SessionRecord, input ReservationInput) (*domain.Reservation, error)
}

// Notification is a single non-blocking message shown with a view.
type Notification struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// MenuItem is one sidebar entry.
type MenuItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// StatCard is one dashboard figure.
type StatCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ReservationFilter narrows the reservations view.
type ReservationFilter struct {
	Search string
	Status string
}

// RoomFilter narrows the browse-rooms view.
type RoomFilter struct {
	Type     string
	MaxPrice float64
	Guests   int
}

// BookingInput is a booking request for one room.
type BookingInput struct {
	RoomID   string
	CheckIn  domain.Date
	CheckOut domain.Date
}

type DashboardView struct {
	Role               domain.Role          `json:"role"`
	Greeting           string               `json:"greeting"`
	Stats              []StatCard           `json:"stats"`
	RecentReservations []domain.Reservation `json:"recentReservations"`
	Menu               []MenuItem           `json:"menu"`
	Notifications      []Notification       `json:"notifications"`
}

type ReservationsView struct {
	Reservations  []domain.Reservation `json:"reservations"`
	Total         int                  `json:"total"`
	Shown         int                  `json:"shown"`
	Menu          []MenuItem           `json:"menu"`
	Notifications []Notification       `json:"notifications"`
}

type ReservationDetailView struct {
	Reservation   domain.Reservation `json:"reservation"`
	Room          *domain.Room       `json:"room,omitempty"`
	Nights        int                `json:"nights"`
	Menu          []MenuItem         `json:"menu"`
	Notifications []Notification     `json:"notifications"`
}

type RoomsView struct {
	Rooms         []domain.Room  `json:"rooms"`
	ByStatus      map[string]int `json:"byStatus"`
	Menu          []MenuItem     `json:"menu"`
	Notifications []Notification `json:"notifications"`
}

type StayRange struct {
	CheckIn  domain.Date `json:"checkIn"`
	CheckOut domain.Date `json:"checkOut"`
}

type RoomDetailView struct {
	Room          domain.Room    `json:"room"`
	Booked        []StayRange    `json:"booked"`
	Menu          []MenuItem     `json:"menu"`
	Notifications []Notification `json:"notifications"`
}

type BookingView struct {
	Reservation   domain.Reservation `json:"reservation"`
	Nights        int                `json:"nights"`
	Notifications []Notification     `json:"notifications"`
}

type EmployeesView struct {
	Employees     []domain.DirectoryUser `json:"employees"`
	Menu          []MenuItem             `json:"menu"`
	Notifications []Notification         `json:"notifications"`
}

type ProfileView struct {
	User          domain.SessionRecord `json:"user"`
	Menu          []MenuItem           `json:"menu"`
	Notifications []Notification       `json:"notifications"`
}

// ViewService builds the role-dependent console views.
type ViewService interface {
	Dashboard(ctx context.Context, user domain.SessionRecord) DashboardView
	Reservations(ctx context.Context, user domain.SessionRecord, filter ReservationFilter) ReservationsView
	Reservation(ctx context.Context, user domain.SessionRecord, id string) (*ReservationDetailView, error)
	Rooms(ctx context.Context, user domain.SessionRecord) RoomsView
	BrowseRooms(ctx context.Context, user domain.SessionRecord, filter RoomFilter) RoomsView
	Room(ctx context.Context, user domain.SessionRecord, id string) (*RoomDetailView, error)
	Book(ctx context.Context, user domain.SessionRecord, input BookingInput) (*BookingView, error)
	Employees(ctx context.Context, user domain.SessionRecord) EmployeesView
	Profile(user domain.SessionRecord) ProfileView
}
