package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
)

// SessionKey is the slot key holding the serialized session record.
const SessionKey = "user"

// SessionStore keeps the single session record in a durable slot.
type SessionStore struct {
	slot ports.Slot
	key  string
	log  zerolog.Logger
}

// NewSessionStore creates a store over slot. A non-empty namespace prefixes the
// key as "<namespace>:user".
func NewSessionStore(slot ports.Slot, namespace string, log zerolog.Logger) *SessionStore {
	key := SessionKey
	if namespace != "" {
		key = namespace + ":" + SessionKey
	}
	return &SessionStore{slot: slot, key: key, log: log}
}

// Load returns the stored record, or nil when there is none. A stored value
// that cannot be adopted is deleted and reported as absent.
func (s *SessionStore) Load(ctx context.Context) (*domain.SessionRecord, error) {
	raw, err := s.slot.Get(ctx, s.key)
	if errors.Is(err, domain.ErrSlotEmpty) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session slot: %w", err)
	}

	record, err := decodeRecord(raw)
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("discarding unreadable session record")
		if delErr := s.slot.Delete(ctx, s.key); delErr != nil {
			s.log.Warn().Err(delErr).Str("key", s.key).Msg("failed to delete unreadable session record")
		}
		return nil, nil
	}
	return record, nil
}

// Save replaces the stored record.
func (s *SessionStore) Save(ctx context.Context, record domain.SessionRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	if err := s.slot.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("write session slot: %w", err)
	}
	return nil
}

// Clear removes the stored record. Clearing an empty slot is not an error.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.slot.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear session slot: %w", err)
	}
	return nil
}

func decodeRecord(raw []byte) (*domain.SessionRecord, error) {
	var record domain.SessionRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageCorruption, err)
	}
	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageCorruption, err)
	}
	return &record, nil
}
