// Package memory provides a process-local session slot for development
// without Redis. Values do not survive a restart.
package memory

import (
	"context"
	"sync"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

type Slot struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewSlot() *Slot {
	return &Slot{values: make(map[string][]byte)}
}

func (s *Slot) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, domain.ErrSlotEmpty
	}
	return append([]byte(nil), v...), nil
}

func (s *Slot) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *Slot) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *Slot) Ping(context.Context) error { return nil }
