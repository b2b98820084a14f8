package domain

import "errors"

var (
	ErrValidation          = errors.New("validation failed")
	ErrStorageCorruption   = errors.New("stored session is corrupt")
	ErrNoActiveSession     = errors.New("no active session")
	ErrFetchFailure        = errors.New("catalog fetch failed")
	ErrSlotEmpty           = errors.New("slot is empty")
	ErrForbidden           = errors.New("access forbidden")
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomExists          = errors.New("room with this number already exists")
	ErrRoomUnavailable     = errors.New("room is not available for selected dates")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrUserNotFound        = errors.New("user not found")
)

// ValidationError is malformed input that the caller can fix. Message is meant
// to be shown as-is next to the form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Invalid is shorthand for a field-level ValidationError.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
