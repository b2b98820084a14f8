package domain

import "strings"

const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCheckedIn = "checked_in"
	ReservationCompleted = "completed"
	ReservationCancelled = "cancelled"
)

// Reservation is a guest's stay in a room.
type Reservation struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	GuestName  string  `json:"guestName"`
	RoomNumber int     `json:"roomNumber"`
	CheckIn    Date    `json:"checkIn"`
	CheckOut   Date    `json:"checkOut"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"totalPrice"`
}

// ValidateStay checks that both dates are present and checkOut follows checkIn.
func ValidateStay(checkIn, checkOut Date) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return Invalid("dates", "Please select both check-in and check-out dates")
	}
	if !checkOut.After(checkIn.Time) {
		return Invalid("checkOut", "Check-out date must be after check-in date")
	}
	return nil
}

// Blocks reports whether the reservation still occupies its room.
func (r Reservation) Blocks() bool {
	return !strings.EqualFold(r.Status, ReservationCancelled)
}

// Overlaps reports whether r occupies its room for any night of [checkIn, checkOut).
func (r Reservation) Overlaps(checkIn, checkOut Date) bool {
	return r.CheckIn.Before(checkOut.Time) && r.CheckOut.After(checkIn.Time)
}

// Conflicts reports whether any blocking reservation of roomNumber overlaps the stay.
// skipID excludes one reservation, used when editing it.
func Conflicts(existing []Reservation, roomNumber int, checkIn, checkOut Date, skipID string) bool {
	for _, r := range existing {
		if r.RoomNumber != roomNumber || r.ID == skipID || !r.Blocks() {
			continue
		}
		if r.Overlaps(checkIn, checkOut) {
			return true
		}
	}
	return false
}
