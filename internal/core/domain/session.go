package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// SessionRecord is the authenticated principal of the console. At most one
// exists at a time; Role and CreatedAt never change after login.
type SessionRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks the shape a stored record must have to be adopted.
func (r SessionRecord) Validate() error {
	switch {
	case r.ID == "":
		return Invalid("id", "id is required")
	case !ValidEmail(r.Email):
		return Invalid("email", "Please enter a valid email")
	case !r.Role.Valid():
		return Invalid("role", "role must be one of: user, employee, admin")
	case r.CreatedAt.IsZero():
		return Invalid("createdAt", "createdAt is required")
	}
	return nil
}

// ValidEmail is the only email check the console performs: an @ somewhere.
func ValidEmail(email string) bool {
	return strings.Contains(email, "@")
}

// NameFromEmail returns the local part of email.
func NameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// Optional distinguishes a field that was not supplied from one that was
// explicitly cleared (JSON null) and from one carrying a value.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Cleared returns an Optional that was explicitly set to null.
func Cleared[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// UnmarshalJSON is only invoked when the key is present, which is what marks
// the field as Set.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(b, &o.Value)
}

// UserUpdate is a partial update of the mutable session fields. There is no
// role field: the role is fixed at login.
type UserUpdate struct {
	Name  Optional[string] `json:"name"`
	Email Optional[string] `json:"email"`
}

// Empty reports whether the update carries no field at all.
func (u UserUpdate) Empty() bool {
	return !u.Name.Set && !u.Email.Set
}

// Apply merges u into r and returns the result; r is left untouched.
//
//	absent  -> keep current value
//	value   -> overwrite (validated)
//	null    -> name resets to the email local part; email cannot be cleared
func (u UserUpdate) Apply(r SessionRecord) (SessionRecord, error) {
	next := r

	if u.Email.Set {
		if u.Email.Null {
			return r, Invalid("email", "email cannot be cleared")
		}
		email := strings.TrimSpace(u.Email.Value)
		if !ValidEmail(email) {
			return r, Invalid("email", "Please enter a valid email")
		}
		next.Email = email
	}

	if u.Name.Set {
		if u.Name.Null {
			next.Name = NameFromEmail(next.Email)
		} else {
			name := strings.TrimSpace(u.Name.Value)
			if name == "" {
				return r, Invalid("name", "name cannot be empty")
			}
			next.Name = name
		}
	}

	return next, nil
}

// SessionState is the read model the rest of the console consumes.
type SessionState struct {
	User            *SessionRecord `json:"user"`
	IsAuthenticated bool           `json:"isAuthenticated"`
	IsInitializing  bool           `json:"isInitializing"`
}

// Role returns the role of the current user, or "" when nobody is logged in.
func (s SessionState) Role() Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}
