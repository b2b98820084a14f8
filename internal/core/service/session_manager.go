package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
)

// SessionManager owns the console's single session. Every mutation, and the
// startup load, runs through runner so there is exactly one writer; reads take
// a snapshot under mu.
type SessionManager struct {
	store  ports.SessionStore
	runner ports.JobRunner
	log    zerolog.Logger

	mu           sync.RWMutex
	user         *domain.SessionRecord
	initializing bool

	initOnce  sync.Once
	readyOnce sync.Once
	ready     chan struct{}

	now   func() time.Time
	newID func() string
}

func NewSessionManager(store ports.SessionStore, runner ports.JobRunner, log zerolog.Logger) *SessionManager {
	return &SessionManager{
		store:        store,
		runner:       runner,
		log:          log,
		initializing: true,
		ready:        make(chan struct{}),
		now:          time.Now,
		newID:        func() string { return "user_" + uuid.NewString() },
	}
}

// Init loads the persisted session. Only the first call does anything; the
// manager is ready afterwards whatever the outcome.
func (m *SessionManager) Init(ctx context.Context) {
	m.initOnce.Do(func() {
		err := m.runner.Do(ctx, "init", func(ctx context.Context) error {
			record, err := m.store.Load(ctx)
			if err != nil {
				m.log.Warn().Err(err).Msg("could not load session, starting unauthenticated")
				record = nil
			}
			m.finishInit(record)
			return nil
		})
		if err != nil {
			m.log.Warn().Err(err).Msg("session init did not run, starting unauthenticated")
			m.finishInit(nil)
		}
	})
}

func (m *SessionManager) finishInit(record *domain.SessionRecord) {
	m.readyOnce.Do(func() {
		m.mu.Lock()
		m.user = record
		m.initializing = false
		m.mu.Unlock()
		close(m.ready)
		if record != nil {
			m.log.Info().Str("user_id", record.ID).Str("role", record.Role.String()).Msg("session restored")
		}
	})
}

// Ready is closed once Init has completed.
func (m *SessionManager) Ready() <-chan struct{} {
	return m.ready
}

// State returns a snapshot of the session.
func (m *SessionManager) State() domain.SessionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state := domain.SessionState{IsInitializing: m.initializing}
	if m.user != nil {
		u := *m.user
		state.User = &u
		state.IsAuthenticated = true
	}
	return state
}

func (m *SessionManager) CurrentUser() *domain.SessionRecord {
	return m.State().User
}

func (m *SessionManager) IsAuthenticated() bool {
	return m.State().IsAuthenticated
}

func (m *SessionManager) IsInitializing() bool {
	return m.State().IsInitializing
}

// CurrentRole returns the role of the logged-in user; ok is false when nobody
// is logged in.
func (m *SessionManager) CurrentRole() (domain.Role, bool) {
	state := m.State()
	if state.User == nil {
		return "", false
	}
	return state.User.Role, true
}

// Login starts a new session for email with the given role, replacing any
// existing one. The password is not verified.
func (m *SessionManager) Login(ctx context.Context, email, password string, role domain.Role) (*domain.SessionRecord, error) {
	if !domain.ValidEmail(email) {
		return nil, domain.Invalid("email", "Please enter a valid email")
	}
	if !role.Valid() {
		return nil, domain.Invalid("role", "Please select a role")
	}

	record := domain.SessionRecord{
		ID:        m.newID(),
		Name:      domain.NameFromEmail(email),
		Email:     email,
		Role:      role,
		CreatedAt: m.now().UTC(),
	}

	err := m.runner.Do(ctx, "login", func(ctx context.Context) error {
		if err := m.store.Save(ctx, record); err != nil {
			return fmt.Errorf("persist session: %w", err)
		}
		m.commit(&record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.log.Info().Str("user_id", record.ID).Str("role", role.String()).Msg("user logged in")
	out := record
	return &out, nil
}

// Logout ends the session. It is submitted even when ctx is already done, so
// an abandoned request still logs the user out. A failure to clear the durable
// slot is logged and does not fail the logout.
func (m *SessionManager) Logout(ctx context.Context) error {
	return m.runner.Do(context.WithoutCancel(ctx), "logout", func(ctx context.Context) error {
		prev := m.commit(nil)
		if err := m.store.Clear(ctx); err != nil {
			m.log.Warn().Err(err).Msg("failed to clear persisted session")
		}
		if prev != nil {
			m.log.Info().Str("user_id", prev.ID).Msg("user logged out")
		}
		return nil
	})
}

// UpdateUser applies update to the current session and persists the result.
func (m *SessionManager) UpdateUser(ctx context.Context, update domain.UserUpdate) (*domain.SessionRecord, error) {
	var updated domain.SessionRecord
	err := m.runner.Do(ctx, "update", func(ctx context.Context) error {
		current := m.CurrentUser()
		if current == nil {
			return domain.ErrNoActiveSession
		}
		next, err := update.Apply(*current)
		if err != nil {
			return err
		}
		if err := m.store.Save(ctx, next); err != nil {
			return fmt.Errorf("persist session: %w", err)
		}
		m.commit(&next)
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// commit swaps the in-memory session and returns the previous one.
func (m *SessionManager) commit(record *domain.SessionRecord) *domain.SessionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev := m.user
	if record == nil {
		m.user = nil
	} else {
		r := *record
		m.user = &r
	}
	return prev
}
