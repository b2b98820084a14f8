package domain

import (
	"strings"
	"time"
)

const (
	RoomStatusAvailable   = "AVAILABLE"
	RoomStatusOccupied    = "OCCUPIED"
	RoomStatusMaintenance = "MAINTENANCE"
)

// Room defaults applied when a new room omits a value.
const (
	DefaultRoomType     = "STANDARD"
	DefaultRoomSize     = 250
	DefaultRoomCapacity = 2
	DefaultRoomPrice    = 129.99
	DefaultRoomBedType  = "QUEEN"
)

// Room is a bookable hotel room.
type Room struct {
	ID            string    `json:"id"`
	RoomNumber    string    `json:"roomNumber"`
	Type          string    `json:"type"`
	Description   string    `json:"description"`
	PricePerNight float64   `json:"pricePerNight"`
	MaxCapacity   int       `json:"maxCapacity"`
	BedType       string    `json:"bedType"`
	Size          int       `json:"size"`
	Floor         int       `json:"floor"`
	Amenities     []string  `json:"amenities"`
	Images        []string  `json:"images"`
	IsAvailable   bool      `json:"isAvailable"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
}

// HasStatus compares the room status case-insensitively; the dataset mixes
// "available" and "AVAILABLE".
func (r Room) HasStatus(status string) bool {
	return strings.EqualFold(r.Status, status)
}

// Bookable reports whether the room may be offered to guests.
func (r Room) Bookable() bool {
	return r.IsAvailable && !r.HasStatus(RoomStatusMaintenance)
}

// RoomPatch carries a partial room edit; nil keeps the current value.
type RoomPatch struct {
	Type          *string
	Description   *string
	PricePerNight *float64
	MaxCapacity   *int
	BedType       *string
	Size          *int
	Amenities     []string
	Images        []string
	IsAvailable   *bool
	Status        *string
}

// ApplyTo returns room with every non-nil field of p applied.
func (p RoomPatch) ApplyTo(room Room) Room {
	if p.Type != nil {
		room.Type = *p.Type
	}
	if p.Description != nil {
		room.Description = *p.Description
	}
	if p.PricePerNight != nil {
		room.PricePerNight = *p.PricePerNight
	}
	if p.MaxCapacity != nil {
		room.MaxCapacity = *p.MaxCapacity
	}
	if p.BedType != nil {
		room.BedType = *p.BedType
	}
	if p.Size != nil {
		room.Size = *p.Size
	}
	if p.Amenities != nil {
		room.Amenities = p.Amenities
	}
	if p.Images != nil {
		room.Images = p.Images
	}
	if p.IsAvailable != nil {
		room.IsAvailable = *p.IsAvailable
	}
	if p.Status != nil {
		room.Status = *p.Status
	}
	return room
}
