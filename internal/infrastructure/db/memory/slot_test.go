package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

func TestSlot_RoundTripAndCopy(t *testing.T) {
	s := NewSlot()
	ctx := context.Background()

	if _, err := s.Get(ctx, "user"); !errors.Is(err, domain.ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty, got %v", err)
	}

	value := []byte("abc")
	if err := s.Set(ctx, "user", value); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value[0] = 'z'

	got, err := s.Get(ctx, "user")
	if err != nil || string(got) != "abc" {
		t.Fatalf("stored value must be a copy, got %q, %v", got, err)
	}

	if err := s.Delete(ctx, "user"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, "user"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}
