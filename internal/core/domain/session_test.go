package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func sampleRecord() SessionRecord {
	return SessionRecord{
		ID:        "user_1",
		Name:      "alice",
		Email:     "alice@example.com",
		Role:      RoleUser,
		CreatedAt: time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestNameFromEmail(t *testing.T) {
	cases := map[string]string{
		"alice@example.com": "alice",
		"@example.com":      "",
		"bob@a@b":           "bob",
		"no-at-sign":        "no-at-sign",
	}
	for in, want := range cases {
		if got := NameFromEmail(in); got != want {
			t.Errorf("NameFromEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSessionRecord_Validate(t *testing.T) {
	if err := sampleRecord().Validate(); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}

	bad := sampleRecord()
	bad.Role = "owner"
	if err := bad.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for bad role, got %v", err)
	}

	bad = sampleRecord()
	bad.CreatedAt = time.Time{}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for zero createdAt")
	}
}

func TestUserUpdate_AbsentFieldsKeepValues(t *testing.T) {
	var u UserUpdate
	if err := json.Unmarshal([]byte(`{"name":"Alicia"}`), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !u.Name.Set || u.Name.Null || u.Name.Value != "Alicia" {
		t.Fatalf("unexpected name field: %+v", u.Name)
	}
	if u.Email.Set {
		t.Fatalf("email must be absent")
	}

	next, err := u.Apply(sampleRecord())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if next.Name != "Alicia" || next.Email != "alice@example.com" {
		t.Fatalf("unexpected record: %+v", next)
	}
}

func TestUserUpdate_NullNameResetsToEmailLocalPart(t *testing.T) {
	var u UserUpdate
	if err := json.Unmarshal([]byte(`{"name":null,"email":"ally@hotel.com"}`), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	rec := sampleRecord()
	rec.Name = "Alicia"

	next, err := u.Apply(rec)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if next.Name != "ally" {
		t.Fatalf("expected derived name ally, got %q", next.Name)
	}
	if next.Email != "ally@hotel.com" {
		t.Fatalf("expected new email, got %q", next.Email)
	}
}

func TestUserUpdate_Rejections(t *testing.T) {
	cases := []UserUpdate{
		{Email: Cleared[string]()},
		{Email: Some("not-an-email")},
		{Name: Some("   ")},
	}
	for i, u := range cases {
		rec := sampleRecord()
		next, err := u.Apply(rec)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("case %d: expected ErrValidation, got %v", i, err)
		}
		if next != rec {
			t.Fatalf("case %d: record must be unchanged on error", i)
		}
	}
}

func TestUserUpdate_RoleAndCreatedAtNeverChange(t *testing.T) {
	rec := sampleRecord()
	next, err := UserUpdate{Name: Some("Alicia"), Email: Some("a@b.c")}.Apply(rec)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if next.Role != rec.Role || !next.CreatedAt.Equal(rec.CreatedAt) || next.ID != rec.ID {
		t.Fatalf("immutable fields changed: %+v", next)
	}
}
