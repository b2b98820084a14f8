package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
)

var reservationStatuses = map[string]bool{
	domain.ReservationPending:   true,
	domain.ReservationConfirmed: true,
	domain.ReservationCheckedIn: true,
	domain.ReservationCompleted: true,
	domain.ReservationCancelled: true,
}

type ReservationService struct {
	repo   ports.ReservationRepository
	rooms  ports.RoomRepository
	logger zerolog.Logger
}

func NewReservationService(repo ports.ReservationRepository, rooms ports.RoomRepository, logger zerolog.Logger) *ReservationService {
	return &ReservationService{repo: repo, rooms: rooms, logger: logger}
}

func (s *ReservationService) AllReservations(ctx context.Context) ([]domain.Reservation, error) {
	return s.repo.FindAll(ctx)
}

func (s *ReservationService) ReservationByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateReservation books a room. The stay must be valid and must not overlap
// any non-cancelled reservation of the same room. A zero total is priced from
// the room rate.
func (s *ReservationService) CreateReservation(ctx context.Context, input ports.ReservationInput) (*domain.Reservation, error) {
	status, err := normalizeStatus(input.Status)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateStay(input.CheckIn, input.CheckOut); err != nil {
		return nil, err
	}
	room, err := s.roomFor(ctx, input.RoomNumber)
	if err != nil {
		return nil, err
	}
	if err := s.checkAvailability(ctx, input, ""); err != nil {
		return nil, err
	}

	total := input.TotalPrice
	if total <= 0 {
		total = float64(domain.Nights(input.CheckIn, input.CheckOut)) * room.PricePerNight
	}

	created, err := s.repo.Create(ctx, &domain.Reservation{
		UserID:     input.UserID,
		GuestName:  strings.TrimSpace(input.GuestName),
		RoomNumber: input.RoomNumber,
		CheckIn:    input.CheckIn,
		CheckOut:   input.CheckOut,
		Status:     status,
		TotalPrice: total,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("reservation_id", created.ID).
		Int("room_number", created.RoomNumber).
		Str("check_in", created.CheckIn.String()).
		Str("check_out", created.CheckOut.String()).
		Msg("reservation created")
	return created, nil
}

// UpdateReservation overwrites the editable fields of a reservation.
func (s *ReservationService) UpdateReservation(ctx context.Context, id string, input ports.ReservationInput) (*domain.Reservation, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	status, err := normalizeStatus(input.Status)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateStay(input.CheckIn, input.CheckOut); err != nil {
		return nil, err
	}
	if _, err := s.roomFor(ctx, input.RoomNumber); err != nil {
		return nil, err
	}
	if status != domain.ReservationCancelled {
		if err := s.checkAvailability(ctx, input, id); err != nil {
			return nil, err
		}
	}

	updated := *current
	updated.GuestName = strings.TrimSpace(input.GuestName)
	updated.RoomNumber = input.RoomNumber
	updated.CheckIn = input.CheckIn
	updated.CheckOut = input.CheckOut
	updated.Status = status
	updated.TotalPrice = input.TotalPrice

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ReservationService) DeleteReservation(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ReservationService) roomFor(ctx context.Context, roomNumber int) (*domain.Room, error) {
	if roomNumber <= 0 {
		return nil, domain.Invalid("roomNumber", "room number is required")
	}
	return s.rooms.FindByNumber(ctx, strconv.Itoa(roomNumber))
}

func (s *ReservationService) checkAvailability(ctx context.Context, input ports.ReservationInput, skipID string) error {
	existing, err := s.repo.FindByRoom(ctx, input.RoomNumber)
	if err != nil {
		return err
	}
	if domain.Conflicts(existing, input.RoomNumber, input.CheckIn, input.CheckOut, skipID) {
		return domain.ErrRoomUnavailable
	}
	return nil
}

func normalizeStatus(status string) (string, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		return domain.ReservationPending, nil
	}
	if !reservationStatuses[status] {
		return "", domain.Invalid("status", "unknown reservation status "+status)
	}
	return status, nil
}
