package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
)

type RoomService struct {
	repo   ports.RoomRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewRoomService(repo ports.RoomRepository, logger zerolog.Logger) *RoomService {
	return &RoomService{repo: repo, logger: logger, now: time.Now}
}

func (s *RoomService) AllRooms(ctx context.Context) ([]domain.Room, error) {
	return s.repo.FindAll(ctx)
}

func (s *RoomService) RoomByID(ctx context.Context, id string) (*domain.Room, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoomService) RoomByNumber(ctx context.Context, roomNumber string) (*domain.Room, error) {
	return s.repo.FindByNumber(ctx, strings.TrimSpace(roomNumber))
}

// CreateRoom adds a room. Omitted fields take the catalog defaults and a new
// room always starts available.
func (s *RoomService) CreateRoom(ctx context.Context, input ports.RoomInput) (*domain.Room, error) {
	number := strings.TrimSpace(input.RoomNumber)
	if number == "" {
		return nil, domain.Invalid("roomNumber", "room number is required")
	}
	if input.PricePerNight < 0 {
		return nil, domain.Invalid("pricePerNight", "price cannot be negative")
	}

	existing, err := s.repo.FindByNumber(ctx, number)
	if err != nil && !errors.Is(err, domain.ErrRoomNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrRoomExists
	}

	now := s.now().UTC()
	room := &domain.Room{
		RoomNumber:    number,
		Type:          orDefault(strings.ToUpper(input.Type), domain.DefaultRoomType),
		Description:   input.Description,
		PricePerNight: input.PricePerNight,
		MaxCapacity:   input.MaxCapacity,
		BedType:       orDefault(strings.ToUpper(input.BedType), domain.DefaultRoomBedType),
		Size:          input.Size,
		Floor:         input.Floor,
		Amenities:     input.Amenities,
		Images:        input.Images,
		IsAvailable:   true,
		Status:        domain.RoomStatusAvailable,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if room.PricePerNight == 0 {
		room.PricePerNight = domain.DefaultRoomPrice
	}
	if room.MaxCapacity <= 0 {
		room.MaxCapacity = domain.DefaultRoomCapacity
	}
	if room.Size <= 0 {
		room.Size = domain.DefaultRoomSize
	}
	if room.Amenities == nil {
		room.Amenities = []string{}
	}
	if room.Images == nil {
		room.Images = []string{}
	}

	created, err := s.repo.Create(ctx, room)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("room_number", created.RoomNumber).Str("type", created.Type).Msg("room created")
	return created, nil
}

// EditRoom applies a partial edit to the room with the given id.
func (s *RoomService) EditRoom(ctx context.Context, id string, patch domain.RoomPatch) (*domain.Room, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.PricePerNight != nil && *patch.PricePerNight < 0 {
		return nil, domain.Invalid("pricePerNight", "price cannot be negative")
	}
	if patch.MaxCapacity != nil && *patch.MaxCapacity <= 0 {
		return nil, domain.Invalid("maxCapacity", "capacity must be at least 1")
	}

	updated := patch.ApplyTo(*room)
	updated.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *RoomService) DeleteRoom(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("room_id", id).Msg("room deleted")
	return nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
