package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

type stubSlot struct {
	mu      sync.Mutex
	values  map[string][]byte
	getErr  error
	setErr  error
	delErr  error
	deletes int
}

func newStubSlot() *stubSlot {
	return &stubSlot{values: make(map[string][]byte)}
}

func (s *stubSlot) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	v, ok := s.values[key]
	if !ok {
		return nil, domain.ErrSlotEmpty
	}
	return append([]byte(nil), v...), nil
}

func (s *stubSlot) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *stubSlot) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes++
	if s.delErr != nil {
		return s.delErr
	}
	delete(s.values, key)
	return nil
}

func (s *stubSlot) Ping(context.Context) error { return nil }

func (s *stubSlot) raw(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func sampleRecord() domain.SessionRecord {
	return domain.SessionRecord{
		ID:        "user_1",
		Name:      "guest",
		Email:     "guest@hotel.com",
		Role:      domain.RoleUser,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func sameRecord(a, b domain.SessionRecord) bool {
	return a.ID == b.ID && a.Name == b.Name && a.Email == b.Email && a.Role == b.Role && a.CreatedAt.Equal(b.CreatedAt)
}

func TestSessionStore_SaveThenLoadRoundTrips(t *testing.T) {
	store := NewSessionStore(newStubSlot(), "", zerolog.Nop())
	ctx := context.Background()
	want := sampleRecord()

	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got == nil || !sameRecord(*got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSessionStore_LoadEmpty(t *testing.T) {
	store := NewSessionStore(newStubSlot(), "", zerolog.Nop())

	got, err := store.Load(context.Background())
	if err != nil || got != nil {
		t.Fatalf("expected nil, nil; got %+v, %v", got, err)
	}
}

func TestSessionStore_LoadDiscardsCorruptValues(t *testing.T) {
	cases := map[string]string{
		"not json":     `{not json`,
		"missing id":   `{"name":"a","email":"a@b.c","role":"user","createdAt":"2025-01-01T00:00:00Z"}`,
		"bad email":    `{"id":"x","name":"a","email":"nope","role":"user","createdAt":"2025-01-01T00:00:00Z"}`,
		"unknown role": `{"id":"x","name":"a","email":"a@b.c","role":"owner","createdAt":"2025-01-01T00:00:00Z"}`,
		"no createdAt": `{"id":"x","name":"a","email":"a@b.c","role":"user"}`,
		"json array":   `[1,2,3]`,
		"bare string":  `"user"`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			slot := newStubSlot()
			slot.values[SessionKey] = []byte(raw)
			store := NewSessionStore(slot, "", zerolog.Nop())

			got, err := store.Load(context.Background())
			if err != nil {
				t.Fatalf("corrupt value must not surface as error, got %v", err)
			}
			if got != nil {
				t.Fatalf("expected absent record, got %+v", got)
			}
			if _, ok := slot.raw(SessionKey); ok {
				t.Fatal("corrupt value must be deleted")
			}
		})
	}
}

func TestSessionStore_LoadReturnsTransportErrors(t *testing.T) {
	slot := newStubSlot()
	slot.getErr = errors.New("connection refused")
	store := NewSessionStore(slot, "", zerolog.Nop())

	if _, err := store.Load(context.Background()); err == nil {
		t.Fatal("expected slot error to be returned")
	}
	if slot.deletes != 0 {
		t.Fatal("a transport error must not delete the stored value")
	}
}

func TestSessionStore_ClearIsIdempotent(t *testing.T) {
	slot := newStubSlot()
	store := NewSessionStore(slot, "", zerolog.Nop())
	ctx := context.Background()

	if err := store.Save(ctx, sampleRecord()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := store.Clear(ctx); err != nil {
			t.Fatalf("Clear #%d: %v", i+1, err)
		}
	}
	if got, _ := store.Load(ctx); got != nil {
		t.Fatalf("expected empty store, got %+v", got)
	}
}

func TestSessionStore_Namespace(t *testing.T) {
	slot := newStubSlot()
	store := NewSessionStore(slot, "frontdesk", zerolog.Nop())

	if err := store.Save(context.Background(), sampleRecord()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, ok := slot.raw("frontdesk:user"); !ok {
		t.Fatal("expected namespaced key frontdesk:user")
	}
}
