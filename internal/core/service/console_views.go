package service

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
)

const (
	FetchErrorMessage = "Error fetching data from server"
	BookingSubmitted  = "Booking request submitted! Please complete payment to confirm."

	recentReservations = 5
)

var menus = map[domain.Role][]ports.MenuItem{
	domain.RoleUser: {
		{Label: "Dashboard", Path: "/dashboard"},
		{Label: "Browse Rooms", Path: "/browse-rooms"},
		{Label: "My Reservations", Path: "/reservations"},
		{Label: "Profile", Path: "/profile"},
	},
	domain.RoleEmployee: {
		{Label: "Dashboard", Path: "/dashboard"},
		{Label: "Search Reservations", Path: "/reservations"},
		{Label: "Rooms", Path: "/rooms"},
		{Label: "Profile", Path: "/profile"},
	},
	domain.RoleAdmin: {
		{Label: "Dashboard", Path: "/dashboard"},
		{Label: "Reservations", Path: "/reservations"},
		{Label: "Employees", Path: "/employees"},
		{Label: "Rooms", Path: "/rooms"},
		{Label: "Profile", Path: "/profile"},
	},
}

// MenuFor returns the sidebar entries of role.
func MenuFor(role domain.Role) []ports.MenuItem {
	return slices.Clone(menus[role])
}

// ViewService assembles the console views from catalog data. Catalog failures
// on list views degrade to empty data plus a single error notification.
type ViewService struct {
	catalog ports.CatalogFetcher
	log     zerolog.Logger
}

func NewViewService(catalog ports.CatalogFetcher, log zerolog.Logger) *ViewService {
	return &ViewService{catalog: catalog, log: log}
}

func fetchFailed() []ports.Notification {
	return []ports.Notification{{Level: "error", Message: FetchErrorMessage}}
}

func (s *ViewService) snapshot(ctx context.Context, user domain.SessionRecord) (ports.CatalogSnapshot, []ports.Notification) {
	snap, err := s.catalog.Snapshot(ctx, user)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("catalog snapshot failed")
		return ports.CatalogSnapshot{Rooms: []domain.Room{}, Reservations: []domain.Reservation{}}, fetchFailed()
	}
	return snap, []ports.Notification{}
}

// ownedBy reports whether r belongs to user. Only the session id counts; the
// name is editable and never grants access.
func ownedBy(r domain.Reservation, user domain.SessionRecord) bool {
	return user.ID != "" && r.UserID == user.ID
}

// visible returns the reservations user may see: guests only see their own.
func visible(all []domain.Reservation, user domain.SessionRecord) []domain.Reservation {
	if user.Role != domain.RoleUser {
		return all
	}
	own := make([]domain.Reservation, 0, len(all))
	for _, r := range all {
		if ownedBy(r, user) {
			own = append(own, r)
		}
	}
	return own
}

func (s *ViewService) Dashboard(ctx context.Context, user domain.SessionRecord) ports.DashboardView {
	snap, notes := s.snapshot(ctx, user)
	reservations := visible(snap.Reservations, user)

	recent := append([]domain.Reservation{}, reservations...)
	slices.SortStableFunc(recent, func(a, b domain.Reservation) int {
		return b.CheckIn.Compare(a.CheckIn.Time)
	})
	if len(recent) > recentReservations {
		recent = recent[:recentReservations]
	}

	return ports.DashboardView{
		Role:               user.Role,
		Greeting:           "Welcome back, " + user.Name,
		Stats:              dashboardStats(user.Role, snap.Rooms, reservations),
		RecentReservations: recent,
		Menu:               MenuFor(user.Role),
		Notifications:      notes,
	}
}

func dashboardStats(role domain.Role, rooms []domain.Room, reservations []domain.Reservation) []ports.StatCard {
	if role == domain.RoleUser {
		active, upcoming := 0, 0
		for _, r := range reservations {
			switch r.Status {
			case domain.ReservationPending, domain.ReservationConfirmed, domain.ReservationCheckedIn:
				active++
			}
			if r.Status == domain.ReservationConfirmed {
				upcoming++
			}
		}
		return []ports.StatCard{
			{Label: "Active Reservations", Value: strconv.Itoa(active)},
			{Label: "Upcoming Check-ins", Value: strconv.Itoa(upcoming)},
		}
	}

	occupied, available := 0, 0
	for _, room := range rooms {
		switch {
		case room.HasStatus(domain.RoomStatusOccupied):
			occupied++
		case room.HasStatus(domain.RoomStatusAvailable):
			available++
		}
	}
	stats := []ports.StatCard{
		{Label: "Total Reservations", Value: strconv.Itoa(len(reservations))},
		{Label: "Occupancy Rate", Value: fmt.Sprintf("%d%%", OccupancyRate(occupied, len(rooms)))},
		{Label: "Rooms Available", Value: strconv.Itoa(available)},
	}
	if role != domain.RoleAdmin {
		return stats
	}

	revenue, booked := 0.0, 0.0
	for _, r := range reservations {
		booked += r.TotalPrice
		if r.Status == domain.ReservationCheckedIn || r.Status == domain.ReservationCompleted {
			revenue += r.TotalPrice
		}
	}
	average := 0.0
	if len(reservations) > 0 {
		average = booked / float64(len(reservations))
	}
	return append(stats,
		ports.StatCard{Label: "Total Revenue", Value: fmt.Sprintf("$%.2f", revenue)},
		ports.StatCard{Label: "Average Reservation Value", Value: fmt.Sprintf("$%.2f", average)},
	)
}

// OccupancyRate returns occupied/total as a rounded percentage, 0 when there
// are no rooms.
func OccupancyRate(occupied, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(occupied) / float64(total) * 100))
}

func (s *ViewService) Reservations(ctx context.Context, user domain.SessionRecord, filter ports.ReservationFilter) ports.ReservationsView {
	snap, notes := s.snapshot(ctx, user)
	base := visible(snap.Reservations, user)

	query := strings.ToLower(strings.TrimSpace(filter.Search))
	status := strings.TrimSpace(filter.Status)
	shown := make([]domain.Reservation, 0, len(base))
	for _, r := range base {
		if query != "" &&
			!strings.Contains(strings.ToLower(r.GuestName), query) &&
			!strings.Contains(strconv.Itoa(r.RoomNumber), query) {
			continue
		}
		if status != "" && !strings.EqualFold(status, "all") && !strings.EqualFold(r.Status, status) {
			continue
		}
		shown = append(shown, r)
	}

	return ports.ReservationsView{
		Reservations:  shown,
		Total:         len(base),
		Shown:         len(shown),
		Menu:          MenuFor(user.Role),
		Notifications: notes,
	}
}

// Reservation returns a single reservation. Guests may only open their own.
func (s *ViewService) Reservation(ctx context.Context, user domain.SessionRecord, id string) (*ports.ReservationDetailView, error) {
	snap, err := s.catalog.Snapshot(ctx, user)
	if err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(snap.Reservations, func(r domain.Reservation) bool { return r.ID == id })
	if idx < 0 {
		return nil, domain.ErrReservationNotFound
	}
	res := snap.Reservations[idx]
	if user.Role == domain.RoleUser && !ownedBy(res, user) {
		return nil, domain.ErrForbidden
	}

	view := &ports.ReservationDetailView{
		Reservation:   res,
		Nights:        domain.Nights(res.CheckIn, res.CheckOut),
		Menu:          MenuFor(user.Role),
		Notifications: []ports.Notification{},
	}
	if room, ok := roomByNumber(snap.Rooms, res.RoomNumber); ok {
		view.Room = &room
	}
	return view, nil
}

func roomByNumber(rooms []domain.Room, number int) (domain.Room, bool) {
	want := strconv.Itoa(number)
	for _, room := range rooms {
		if strings.TrimSpace(room.RoomNumber) == want {
			return room, true
		}
	}
	return domain.Room{}, false
}

func (s *ViewService) Rooms(ctx context.Context, user domain.SessionRecord) ports.RoomsView {
	snap, notes := s.snapshot(ctx, user)
	byStatus := make(map[string]int)
	for _, room := range snap.Rooms {
		byStatus[strings.ToUpper(room.Status)]++
	}
	return ports.RoomsView{
		Rooms:         snap.Rooms,
		ByStatus:      byStatus,
		Menu:          MenuFor(user.Role),
		Notifications: notes,
	}
}

// BrowseRooms lists the rooms a guest can book, narrowed by filter.
func (s *ViewService) BrowseRooms(ctx context.Context, user domain.SessionRecord, filter ports.RoomFilter) ports.RoomsView {
	snap, notes := s.snapshot(ctx, user)
	rooms := make([]domain.Room, 0, len(snap.Rooms))
	byStatus := make(map[string]int)
	for _, room := range snap.Rooms {
		if !room.Bookable() {
			continue
		}
		if filter.Type != "" && !strings.EqualFold(filter.Type, "all") && !strings.EqualFold(room.Type, filter.Type) {
			continue
		}
		if filter.MaxPrice > 0 && room.PricePerNight > filter.MaxPrice {
			continue
		}
		if filter.Guests > 0 && room.MaxCapacity < filter.Guests {
			continue
		}
		rooms = append(rooms, room)
		byStatus[strings.ToUpper(room.Status)]++
	}
	return ports.RoomsView{
		Rooms:         rooms,
		ByStatus:      byStatus,
		Menu:          MenuFor(user.Role),
		Notifications: notes,
	}
}

// Room returns a room with the date ranges already booked for it.
func (s *ViewService) Room(ctx context.Context, user domain.SessionRecord, id string) (*ports.RoomDetailView, error) {
	snap, err := s.catalog.Snapshot(ctx, user)
	if err != nil {
		return nil, err
	}
	room, err := findRoom(snap.Rooms, id)
	if err != nil {
		return nil, err
	}

	booked := []ports.StayRange{}
	if number, convErr := strconv.Atoi(strings.TrimSpace(room.RoomNumber)); convErr == nil {
		for _, r := range snap.Reservations {
			if r.RoomNumber == number && r.Blocks() {
				booked = append(booked, ports.StayRange{CheckIn: r.CheckIn, CheckOut: r.CheckOut})
			}
		}
	}
	return &ports.RoomDetailView{
		Room:          room,
		Booked:        booked,
		Menu:          MenuFor(user.Role),
		Notifications: []ports.Notification{},
	}, nil
}

func findRoom(rooms []domain.Room, id string) (domain.Room, error) {
	idx := slices.IndexFunc(rooms, func(r domain.Room) bool { return r.ID == id })
	if idx < 0 {
		return domain.Room{}, domain.ErrRoomNotFound
	}
	return rooms[idx], nil
}

// Book requests a pending reservation of a room for the logged-in user.
func (s *ViewService) Book(ctx context.Context, user domain.SessionRecord, input ports.BookingInput) (*ports.BookingView, error) {
	if err := domain.ValidateStay(input.CheckIn, input.CheckOut); err != nil {
		return nil, err
	}
	snap, err := s.catalog.Snapshot(ctx, user)
	if err != nil {
		return nil, err
	}
	room, err := findRoom(snap.Rooms, input.RoomID)
	if err != nil {
		return nil, err
	}
	number, err := strconv.Atoi(strings.TrimSpace(room.RoomNumber))
	if err != nil {
		return nil, domain.Invalid("roomNumber", "room "+room.RoomNumber+" cannot be booked")
	}
	if !room.Bookable() || domain.Conflicts(snap.Reservations, number, input.CheckIn, input.CheckOut, "") {
		return nil, domain.ErrRoomUnavailable
	}

	nights := domain.Nights(input.CheckIn, input.CheckOut)
	created, err := s.catalog.CreateReservation(ctx, user, ports.ReservationInput{
		UserID:     user.ID,
		GuestName:  user.Name,
		RoomNumber: number,
		CheckIn:    input.CheckIn,
		CheckOut:   input.CheckOut,
		Status:     domain.ReservationPending,
		TotalPrice: float64(nights) * room.PricePerNight,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("reservation_id", created.ID).Int("room_number", number).Msg("booking submitted")
	return &ports.BookingView{
		Reservation:   *created,
		Nights:        nights,
		Notifications: []ports.Notification{{Level: "success", Message: BookingSubmitted}},
	}, nil
}

func (s *ViewService) Employees(ctx context.Context, user domain.SessionRecord) ports.EmployeesView {
	view := ports.EmployeesView{
		Employees:     []domain.DirectoryUser{},
		Menu:          MenuFor(user.Role),
		Notifications: []ports.Notification{},
	}
	employees, err := s.catalog.Employees(ctx, user)
	if err != nil {
		s.log.Warn().Err(err).Msg("employee directory fetch failed")
		view.Notifications = fetchFailed()
		return view
	}
	employees = slices.Clone(employees)
	slices.SortFunc(employees, func(a, b domain.DirectoryUser) int {
		return strings.Compare(a.FullName(), b.FullName())
	})
	view.Employees = employees
	return view
}

func (s *ViewService) Profile(user domain.SessionRecord) ports.ProfileView {
	return ports.ProfileView{
		User:          user,
		Menu:          MenuFor(user.Role),
		Notifications: []ports.Notification{},
	}
}
