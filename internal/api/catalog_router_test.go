package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
	"github.com/skillstorm/hotel-management/internal/infrastructure/backend"
)

const catalogSecret = "catalog-secret"

type stubRooms struct{}

func (stubRooms) AllRooms(context.Context) ([]domain.Room, error) { return []domain.Room{}, nil }

func (stubRooms) RoomByID(_ context.Context, id string) (*domain.Room, error) {
	return &domain.Room{ID: id, RoomNumber: "101"}, nil
}

func (stubRooms) RoomByNumber(context.Context, string) (*domain.Room, error) {
	return nil, domain.ErrRoomNotFound
}

func (stubRooms) CreateRoom(_ context.Context, input ports.RoomInput) (*domain.Room, error) {
	return &domain.Room{ID: "new", RoomNumber: input.RoomNumber, Type: domain.DefaultRoomType}, nil
}

func (stubRooms) EditRoom(_ context.Context, id string, _ domain.RoomPatch) (*domain.Room, error) {
	return &domain.Room{ID: id}, nil
}

func (stubRooms) DeleteRoom(context.Context, string) error { return nil }

type stubReservations struct {
	created *ports.ReservationInput
}

func (s *stubReservations) AllReservations(context.Context) ([]domain.Reservation, error) {
	return []domain.Reservation{}, nil
}

func (s *stubReservations) ReservationByID(context.Context, string) (*domain.Reservation, error) {
	return nil, domain.ErrReservationNotFound
}

func (s *stubReservations) CreateReservation(_ context.Context, input ports.ReservationInput) (*domain.Reservation, error) {
	s.created = &input
	return &domain.Reservation{ID: "res", UserID: input.UserID, Status: input.Status}, nil
}

func (s *stubReservations) UpdateReservation(_ context.Context, id string, _ ports.ReservationInput) (*domain.Reservation, error) {
	return &domain.Reservation{ID: id}, nil
}

func (s *stubReservations) DeleteReservation(context.Context, string) error { return nil }

type stubDirectory struct{}

func (stubDirectory) UsersByRole(context.Context, domain.Role) ([]domain.DirectoryUser, error) {
	return []domain.DirectoryUser{}, nil
}

func newCatalog(t *testing.T) (*echo.Echo, *stubReservations) {
	t.Helper()
	reservations := &stubReservations{}
	e := NewCatalogRouter(CatalogDeps{
		Rooms:        stubRooms{},
		Reservations: reservations,
		Directory:    stubDirectory{},
		JWTSecret:    catalogSecret,
		CORSOrigins:  []string{"http://localhost:5173"},
		Log:          zerolog.Nop(),
		Registerer:   prometheus.NewRegistry(),
	})
	return e, reservations
}

func tokenFor(t *testing.T, role domain.Role) string {
	t.Helper()
	token, err := backend.NewTokenSigner(catalogSecret, time.Minute).Sign(domain.SessionRecord{
		ID:        "user_" + string(role),
		Email:     string(role) + "@hotel.com",
		Role:      role,
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func serve(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCatalog_PublicReads(t *testing.T) {
	e, _ := newCatalog(t)

	cases := map[string]int{
		"/rooms/all":            http.StatusOK,
		"/rooms/abc":            http.StatusOK,
		"/rooms/number/999":     http.StatusNotFound,
		"/reservations/all":     http.StatusOK,
		"/reservations/missing": http.StatusNotFound,
		"/health":               http.StatusOK,
	}
	for path, want := range cases {
		if rec := serve(e, http.MethodGet, path, "", ""); rec.Code != want {
			t.Fatalf("%s: expected %d, got %d", path, want, rec.Code)
		}
	}
}

func TestCatalog_WriteAccess(t *testing.T) {
	e, _ := newCatalog(t)
	room := `{"roomNumber":"301"}`
	reservation := `{"guestName":"Ana","roomNumber":101,"checkIn":"2025-06-01","checkOut":"2025-06-03"}`

	cases := []struct {
		name   string
		role   domain.Role
		method string
		path   string
		body   string
		want   int
	}{
		{"anonymous room create", "", http.MethodPost, "/rooms/new", room, http.StatusUnauthorized},
		{"guest room create", domain.RoleUser, http.MethodPost, "/rooms/new", room, http.StatusForbidden},
		{"employee room create", domain.RoleEmployee, http.MethodPost, "/rooms/new", room, http.StatusCreated},
		{"employee room delete", domain.RoleEmployee, http.MethodDelete, "/rooms/delete/abc", "", http.StatusForbidden},
		{"admin room delete", domain.RoleAdmin, http.MethodDelete, "/rooms/delete/abc", "", http.StatusNoContent},
		{"guest books", domain.RoleUser, http.MethodPost, "/reservations/new", reservation, http.StatusCreated},
		{"guest edits reservation", domain.RoleUser, http.MethodPut, "/reservations/edit/r1", reservation, http.StatusForbidden},
		{"employee edits reservation", domain.RoleEmployee, http.MethodPut, "/reservations/edit/r1", reservation, http.StatusOK},
		{"guest lists staff", domain.RoleUser, http.MethodGet, "/users/role?role=employee", "", http.StatusForbidden},
		{"admin lists staff", domain.RoleAdmin, http.MethodGet, "/users/role?role=employee", "", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token := ""
			if tc.role != "" {
				token = tokenFor(t, tc.role)
			}
			if rec := serve(e, tc.method, tc.path, token, tc.body); rec.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCatalog_GuestBookingIsPinnedToCaller(t *testing.T) {
	e, reservations := newCatalog(t)
	token := tokenFor(t, domain.RoleUser)

	rec := serve(e, http.MethodPost, "/reservations/new", token,
		`{"guestName":"Ana","roomNumber":101,"checkIn":"2025-06-01","checkOut":"2025-06-03","status":"confirmed"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if reservations.created.UserID != "user_user" {
		t.Fatalf("expected caller id, got %q", reservations.created.UserID)
	}
	if reservations.created.Status != domain.ReservationPending {
		t.Fatalf("guest bookings start pending, got %q", reservations.created.Status)
	}

	rec = serve(e, http.MethodPost, "/reservations/new", token,
		`{"userId":"someone_else","guestName":"Ana","roomNumber":101,"checkIn":"2025-06-01","checkOut":"2025-06-03"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 booking for someone else, got %d", rec.Code)
	}
}
