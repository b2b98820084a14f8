package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
)

var principal = domain.SessionRecord{
	ID:        "user_1",
	Name:      "employee",
	Email:     "employee@hotel.com",
	Role:      domain.RoleEmployee,
	CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL + "/", Timeout: 2 * time.Second}, NewTokenSigner("secret", time.Minute), zerolog.Nop())
}

func TestClient_SnapshotSendsSignedRequests(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		token, err := jwt.Parse(auth, func(*jwt.Token) (any, error) { return []byte("secret"), nil })
		if err != nil || !token.Valid {
			http.Error(w, "bad token", http.StatusUnauthorized)
			return
		}
		claims := token.Claims.(jwt.MapClaims)
		if claims["role"] != "employee" || claims["sub"] != "user_1" {
			http.Error(w, "bad claims", http.StatusForbidden)
			return
		}

		switch r.URL.Path {
		case "/rooms/all":
			_, _ = w.Write([]byte(`[{"id":"r1","roomNumber":"101","status":"AVAILABLE","isAvailable":true}]`))
		case "/reservations/all":
			_, _ = w.Write([]byte(`[{"id":"a","roomNumber":101,"checkIn":"2025-07-01","checkOut":"2025-07-03","status":"confirmed"}]`))
		default:
			http.NotFound(w, r)
		}
	}))

	snap, err := client.Snapshot(context.Background(), principal)
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
	if len(snap.Rooms) != 1 || snap.Rooms[0].RoomNumber != "101" {
		t.Fatalf("unexpected rooms: %+v", snap.Rooms)
	}
	if len(snap.Reservations) != 1 || snap.Reservations[0].CheckOut.String() != "2025-07-03" {
		t.Fatalf("unexpected reservations: %+v", snap.Reservations)
	}
}

func TestClient_SnapshotFailsWhenEitherCallFails(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/rooms/all" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := client.Snapshot(context.Background(), principal)
	if !errors.Is(err, domain.ErrFetchFailure) {
		t.Fatalf("expected ErrFetchFailure, got %v", err)
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	client := NewClient(Config{BaseURL: url}, nil, zerolog.Nop())

	if _, err := client.Employees(context.Background(), principal); !errors.Is(err, domain.ErrFetchFailure) {
		t.Fatalf("expected ErrFetchFailure, got %v", err)
	}
}

func TestClient_MalformedBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"`))
	}))

	if _, err := client.Employees(context.Background(), principal); !errors.Is(err, domain.ErrFetchFailure) {
		t.Fatalf("expected ErrFetchFailure, got %v", err)
	}
}

func TestClient_CreateReservation(t *testing.T) {
	var got reservationRequest
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/reservations/new" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"res-1","roomNumber":102,"checkIn":"2025-08-01","checkOut":"2025-08-03","status":"pending","totalPrice":600}`))
	}))

	in, _ := domain.ParseDate("2025-08-01")
	out, _ := domain.ParseDate("2025-08-03")
	res, err := client.CreateReservation(context.Background(), principal, ports.ReservationInput{
		UserID: "user_1", GuestName: "employee", RoomNumber: 102, CheckIn: in, CheckOut: out, Status: "pending", TotalPrice: 600,
	})
	if err != nil {
		t.Fatalf("CreateReservation returned error: %v", err)
	}
	if res.ID != "res-1" || got.RoomNumber != 102 || got.CheckIn.String() != "2025-08-01" {
		t.Fatalf("unexpected exchange: sent %+v, got %+v", got, res)
	}
}

func TestClient_CreateReservationConflict(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))

	_, err := client.CreateReservation(context.Background(), principal, ports.ReservationInput{RoomNumber: 101})
	if !errors.Is(err, domain.ErrRoomUnavailable) {
		t.Fatalf("expected ErrRoomUnavailable, got %v", err)
	}
}
