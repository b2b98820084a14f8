package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
	"github.com/skillstorm/hotel-management/internal/core/service"
	"github.com/skillstorm/hotel-management/internal/infrastructure/db/memory"
	"github.com/skillstorm/hotel-management/internal/infrastructure/queue"
)

type stubViews struct{}

func (stubViews) Dashboard(_ context.Context, user domain.SessionRecord) ports.DashboardView {
	return ports.DashboardView{Role: user.Role, Menu: service.MenuFor(user.Role)}
}

func (stubViews) Reservations(context.Context, domain.SessionRecord, ports.ReservationFilter) ports.ReservationsView {
	return ports.ReservationsView{}
}

func (stubViews) Reservation(context.Context, domain.SessionRecord, string) (*ports.ReservationDetailView, error) {
	return nil, domain.ErrReservationNotFound
}

func (stubViews) Rooms(context.Context, domain.SessionRecord) ports.RoomsView {
	return ports.RoomsView{}
}

func (stubViews) BrowseRooms(context.Context, domain.SessionRecord, ports.RoomFilter) ports.RoomsView {
	return ports.RoomsView{}
}

func (stubViews) Room(context.Context, domain.SessionRecord, string) (*ports.RoomDetailView, error) {
	return nil, domain.ErrFetchFailure
}

func (stubViews) Book(context.Context, domain.SessionRecord, ports.BookingInput) (*ports.BookingView, error) {
	return nil, domain.ErrRoomUnavailable
}

func (stubViews) Employees(context.Context, domain.SessionRecord) ports.EmployeesView {
	return ports.EmployeesView{}
}

func (stubViews) Profile(user domain.SessionRecord) ports.ProfileView {
	return ports.ProfileView{User: user}
}

type consoleHarness struct {
	e        *echo.Echo
	sessions *service.SessionManager
	slot     *memory.Slot
}

// newConsoleHarness wires the console over a memory slot. The session manager
// is not initialised; call init when the test needs it.
func newConsoleHarness(t *testing.T, slot *memory.Slot) *consoleHarness {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	serializer := queue.NewSerializer(0, zerolog.Nop())
	serializer.Start(ctx)

	store := service.NewSessionStore(slot, "", zerolog.Nop())
	sessions := service.NewSessionManager(store, serializer, zerolog.Nop())

	e := NewConsoleRouter(ConsoleDeps{
		Sessions:   sessions,
		Views:      stubViews{},
		Log:        zerolog.Nop(),
		Registerer: prometheus.NewRegistry(),
	})
	return &consoleHarness{e: e, sessions: sessions, slot: slot}
}

func (h *consoleHarness) init() {
	h.sessions.Init(context.Background())
}

func (h *consoleHarness) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, req)
	return rec
}

func expectRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get(echo.HeaderLocation); got != location {
		t.Fatalf("expected redirect to %s, got %s", location, got)
	}
}

func TestConsole_LoadingBeforeInit(t *testing.T) {
	h := newConsoleHarness(t, memory.NewSlot())

	rec := h.do(http.MethodGet, "/employees", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 while loading, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}

	h.init()
	expectRedirect(t, h.do(http.MethodGet, "/employees", ""), "/login")
}

func TestConsole_AnonymousIsSentToLogin(t *testing.T) {
	h := newConsoleHarness(t, memory.NewSlot())
	h.init()

	for _, path := range []string{"/dashboard", "/reservations", "/rooms", "/profile", "/browse-rooms", "/room/r1", "/reservation/a"} {
		expectRedirect(t, h.do(http.MethodGet, path, ""), "/login")
	}
	expectRedirect(t, h.do(http.MethodPost, "/room/r1/book", `{"checkIn":"2025-06-01","checkOut":"2025-06-03"}`), "/login")
}

func TestConsole_InvalidEmailLeavesSessionUntouched(t *testing.T) {
	h := newConsoleHarness(t, memory.NewSlot())
	h.init()

	rec := h.do(http.MethodPost, "/login", `{"email":"not-an-email","password":"x","role":"user"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "Please enter a valid email" {
		t.Fatalf("unexpected message %q", body.Error)
	}
	if h.sessions.IsAuthenticated() {
		t.Fatalf("session must stay anonymous")
	}
	if _, err := h.slot.Get(context.Background(), service.SessionKey); err == nil {
		t.Fatalf("nothing should be persisted")
	}
}

func TestConsole_AdminSessionLifecycle(t *testing.T) {
	h := newConsoleHarness(t, memory.NewSlot())
	h.init()

	rec := h.do(http.MethodPost, "/login", `{"email":"admin@hotel.com","password":"password123","role":"admin"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	for _, path := range []string{"/dashboard", "/employees", "/profile"} {
		if rec := h.do(http.MethodGet, path, ""); rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}

	if rec := h.do(http.MethodPatch, "/profile", `{"role":"user"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("role change: expected 400, got %d", rec.Code)
	}
	if h.sessions.CurrentUser().Role != domain.RoleAdmin {
		t.Fatalf("role must not change")
	}

	rec = h.do(http.MethodPatch, "/profile", `{"name":"Front Desk"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile update: expected 200, got %d", rec.Code)
	}
	if h.sessions.CurrentUser().Name != "Front Desk" {
		t.Fatalf("name not updated")
	}

	// A second console process over the same slot adopts the session.
	restarted := newConsoleHarness(t, h.slot)
	restarted.init()
	if rec := restarted.do(http.MethodGet, "/employees", ""); rec.Code != http.StatusOK {
		t.Fatalf("restored session: expected 200, got %d", rec.Code)
	}

	if rec := h.do(http.MethodPost, "/logout", ""); rec.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", rec.Code)
	}
	expectRedirect(t, h.do(http.MethodGet, "/dashboard", ""), "/login")
}

func TestConsole_EmployeeCannotReachAdminPages(t *testing.T) {
	h := newConsoleHarness(t, memory.NewSlot())
	h.init()

	if rec := h.do(http.MethodPost, "/login", `{"email":"employee@hotel.com","password":"password123","role":"employee"}`); rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", rec.Code)
	}
	expectRedirect(t, h.do(http.MethodGet, "/employees", ""), "/dashboard")
	if rec := h.do(http.MethodGet, "/rooms", ""); rec.Code != http.StatusOK {
		t.Fatalf("rooms: expected 200, got %d", rec.Code)
	}
}

func TestConsole_ViewErrorsAreMapped(t *testing.T) {
	h := newConsoleHarness(t, memory.NewSlot())
	h.init()
	h.do(http.MethodPost, "/login", `{"email":"guest@hotel.com","password":"password123"}`)

	cases := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/reservation/missing", "", http.StatusNotFound},
		{http.MethodGet, "/room/r1", "", http.StatusBadGateway},
		{http.MethodPost, "/room/r1/book", `{"checkIn":"2025-06-01","checkOut":"2025-06-03"}`, http.StatusConflict},
		{http.MethodPost, "/room/r1/book", `{"checkIn":"2025-06-01"}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		if rec := h.do(tc.method, tc.path, tc.body); rec.Code != tc.want {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.path, tc.want, rec.Code)
		}
	}
}

func TestConsole_UnknownPathsLandOnDashboard(t *testing.T) {
	h := newConsoleHarness(t, memory.NewSlot())
	h.init()

	expectRedirect(t, h.do(http.MethodGet, "/", ""), "/dashboard")
	expectRedirect(t, h.do(http.MethodGet, "/no/such/page", ""), "/dashboard")
}

func TestConsole_HealthNeedsNoSession(t *testing.T) {
	h := newConsoleHarness(t, memory.NewSlot())

	if rec := h.do(http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
