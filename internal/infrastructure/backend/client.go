// Package backend is the console's HTTP client for the catalog API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/skillstorm/hotel-management/internal/api/metrics"
	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client calls the catalog API. A 409 means the room was booked in the
// meantime and is reported as domain.ErrRoomUnavailable; every other failure is
// domain.ErrFetchFailure. Calls are never retried.
type Client struct {
	baseURL string
	http    *http.Client
	signer  *TokenSigner
	log     zerolog.Logger
}

func NewClient(cfg Config, signer *TokenSigner, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		signer:  signer,
		log:     log,
	}
}

var _ ports.CatalogFetcher = (*Client)(nil)

// Snapshot fetches rooms and reservations concurrently. If either call fails
// the snapshot fails as a whole.
func (c *Client) Snapshot(ctx context.Context, principal domain.SessionRecord) (ports.CatalogSnapshot, error) {
	var snap ports.CatalogSnapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.do(gctx, principal, "reservations", http.MethodGet, "/reservations/all", nil, &snap.Reservations)
	})
	g.Go(func() error {
		return c.do(gctx, principal, "rooms", http.MethodGet, "/rooms/all", nil, &snap.Rooms)
	})
	if err := g.Wait(); err != nil {
		return ports.CatalogSnapshot{}, err
	}
	if snap.Rooms == nil {
		snap.Rooms = []domain.Room{}
	}
	if snap.Reservations == nil {
		snap.Reservations = []domain.Reservation{}
	}
	return snap, nil
}

func (c *Client) Employees(ctx context.Context, principal domain.SessionRecord) ([]domain.DirectoryUser, error) {
	var users []domain.DirectoryUser
	path := "/users/role?" + url.Values{"role": {domain.RoleEmployee.String()}}.Encode()
	if err := c.do(ctx, principal, "employees", http.MethodGet, path, nil, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.DirectoryUser{}
	}
	return users, nil
}

// reservationRequest is the body the catalog expects for a new reservation.
type reservationRequest struct {
	UserID     string      `json:"userId"`
	GuestName  string      `json:"guestName"`
	RoomNumber int         `json:"roomNumber"`
	CheckIn    domain.Date `json:"checkIn"`
	CheckOut   domain.Date `json:"checkOut"`
	Status     string      `json:"status"`
	TotalPrice float64     `json:"totalPrice"`
}

func (c *Client) CreateReservation(ctx context.Context, principal domain.SessionRecord, input ports.ReservationInput) (*domain.Reservation, error) {
	body := reservationRequest{
		UserID:     input.UserID,
		GuestName:  input.GuestName,
		RoomNumber: input.RoomNumber,
		CheckIn:    input.CheckIn,
		CheckOut:   input.CheckOut,
		Status:     input.Status,
		TotalPrice: input.TotalPrice,
	}
	var created domain.Reservation
	if err := c.do(ctx, principal, "booking", http.MethodPost, "/reservations/new", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) do(ctx context.Context, principal domain.SessionRecord, resource, method, path string, in, out any) (err error) {
	start := time.Now()
	defer func() {
		metrics.CatalogFetchDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.CatalogFetchFailuresTotal.WithLabelValues(resource).Inc()
			c.log.Warn().Err(err).Str("resource", resource).Str("path", path).Msg("catalog call failed")
		}
	}()

	var reqBody io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: encode %s: %v", domain.ErrFetchFailure, resource, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: build %s request: %v", domain.ErrFetchFailure, resource, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.signer != nil {
		token, err := c.signer.Sign(principal)
		if err != nil {
			return fmt.Errorf("%w: sign token: %v", domain.ErrFetchFailure, err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrFetchFailure, resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		if resp.StatusCode == http.StatusConflict {
			return domain.ErrRoomUnavailable
		}
		return fmt.Errorf("%w: %s: status %d", domain.ErrFetchFailure, resource, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", domain.ErrFetchFailure, resource, err)
	}
	return nil
}
