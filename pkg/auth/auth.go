package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/ticketapp/ticketapp/pkg/events"
	"github.com/ticketapp/ticketapp/pkg/log"
	"github.com/ticketapp/ticketapp/pkg/storage"
	"github.com/ticketapp/ticketapp/pkg/types"
)

// DemoAccount is a built-in credential seeded into the user
// collection at startup. Demo accounts behave exactly like signed-up
// users; login has a single matching path.
type DemoAccount struct {
	Email    string
	Password string
	Name     string
}

// DemoAccounts are the accounts available out of the box.
var DemoAccounts = []DemoAccount{
	{Email: "test@example.com", Password: "password123", Name: "Test User"},
	{Email: "demo@example.com", Password: "demo123", Name: "Demo User"},
}

// Manager owns user records and the current session. It is
// constructed once in cmd and passed to whatever needs it; there is
// no package-level session state.
type Manager struct {
	store  storage.Store
	broker *events.Broker
	logger zerolog.Logger

	mu      sync.RWMutex
	current *types.User
}

// NewManager creates an auth manager over the given store. The broker
// may be nil, in which case no events are published.
func NewManager(store storage.Store, broker *events.Broker) *Manager {
	return &Manager{
		store:  store,
		broker: broker,
		logger: log.WithComponent("auth"),
	}
}

// SeedDemoUsers inserts the demo accounts into the user collection,
// skipping any email that is already registered. Called once at
// startup, before Restore.
func (m *Manager) SeedDemoUsers() error {
	for _, acct := range DemoAccounts {
		_, err := m.store.GetUserByEmail(acct.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, storage.ErrUserNotFound) {
			return fmt.Errorf("failed to check demo account %s: %w", acct.Email, err)
		}
		user := &types.User{
			ID:        uuid.New().String(),
			Email:     acct.Email,
			Name:      acct.Name,
			Password:  acct.Password,
			CreatedAt: time.Now(),
		}
		if err := m.store.CreateUser(user); err != nil {
			return fmt.Errorf("failed to seed demo account %s: %w", acct.Email, err)
		}
		m.logger.Debug().Str("email", acct.Email).Msg("seeded demo account")
	}
	return nil
}

// Restore loads the persisted session, if any. An absent or corrupt
// session slot leaves the manager unauthenticated without error; the
// store clears a corrupt slot itself.
func (m *Manager) Restore() {
	user, err := m.store.GetSession()
	if err != nil {
		if !errors.Is(err, storage.ErrSessionNotFound) {
			m.logger.Warn().Err(err).Msg("session restore failed, continuing unauthenticated")
		}
		return
	}

	m.mu.Lock()
	m.current = user
	m.mu.Unlock()
	m.logger.Debug().Str("email", user.Email).Msg("session restored")
}

// Login authenticates against the user collection with exact email
// and password match and persists the session on success.
func (m *Manager) Login(email, password string) (*types.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := m.store.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	if err := m.setSession(user); err != nil {
		return nil, err
	}

	m.logger.Info().Str("email", user.Email).Msg("user logged in")
	m.publish(events.EventUserLoggedIn, user)
	return user, nil
}

// Signup registers a new user and logs them in.
func (m *Manager) Signup(email, password, name string) (*types.User, error) {
	if email == "" || password == "" || name == "" {
		return nil, ErrMissingFields
	}

	_, err := m.store.GetUserByEmail(email)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user := &types.User{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		Password:  password,
		CreatedAt: time.Now(),
	}
	if err := m.store.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := m.setSession(user); err != nil {
		return nil, err
	}

	m.logger.Info().Str("email", user.Email).Msg("user signed up")
	m.publish(events.EventUserSignedUp, user)
	return user, nil
}

// Logout clears the persisted session and the in-memory identity.
// Idempotent; logging out while unauthenticated is a no-op.
func (m *Manager) Logout() error {
	m.mu.Lock()
	user := m.current
	m.current = nil
	m.mu.Unlock()

	if err := m.store.ClearSession(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	if user != nil {
		m.logger.Info().Str("email", user.Email).Msg("user logged out")
		m.publish(events.EventUserLoggedOut, user)
	}
	return nil
}

// CurrentUser returns the active session's user, if any.
func (m *Manager) CurrentUser() (*types.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil, false
	}
	u := *m.current
	return &u, true
}

// IsAuthenticated reports whether a session is currently set.
func (m *Manager) IsAuthenticated() bool {
	_, ok := m.CurrentUser()
	return ok
}

func (m *Manager) setSession(user *types.User) error {
	if err := m.store.SaveSession(user); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	m.mu.Lock()
	m.current = user
	m.mu.Unlock()
	return nil
}

func (m *Manager) publish(t events.EventType, user *types.User) {
	if m.broker == nil {
		return
	}
	m.broker.Publish(events.New(t, user.Email, map[string]string{
		"user_id": user.ID,
	}))
}
