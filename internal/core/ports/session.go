package ports

import (
	"context"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

// Slot is a durable string-keyed value store. Get returns domain.ErrSlotEmpty
// when nothing is stored under key; Delete of a missing key is not an error.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// SessionStore persists the single session record. Load returns nil, nil when
// no usable record exists.
type SessionStore interface {
	Load(ctx context.Context) (*domain.SessionRecord, error)
	Save(ctx context.Context, record domain.SessionRecord) error
	Clear(ctx context.Context) error
}

// SessionReader is the read side of the session manager, enough for routing.
type SessionReader interface {
	State() domain.SessionState
}

// SessionManager owns who is logged in and with what role.
type SessionManager interface {
	SessionReader
	Login(ctx context.Context, email, password string, role domain.Role) (*domain.SessionRecord, error)
	Logout(ctx context.Context) error
	UpdateUser(ctx context.Context, update domain.UserUpdate) (*domain.SessionRecord, error)
}

// JobRunner executes state-changing jobs one at a time in submission order.
// A job that has been accepted runs to completion even if ctx is cancelled.
type JobRunner interface {
	Do(ctx context.Context, name string, fn func(ctx context.Context) error) error
}
