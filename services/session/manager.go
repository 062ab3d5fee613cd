// Package session owns the browser session: the token and role kept in
// client-local storage, and the login and logout transitions that change them.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"therewecome/models"
	"therewecome/services/api"
	"therewecome/utils"

	"go.uber.org/zap"
)

// AuthAPI is the part of the booking API the session needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Register(ctx context.Context, reg models.RegistrationRequest) (*models.RegistrationResponse, error)
}

type EventKind string

const (
	EventLogin  EventKind = "login"
	EventLogout EventKind = "logout"
)

// Event is published after every session transition so dependents can
// refresh from the new session instead of reloading.
type Event struct {
	Kind      EventKind
	SessionID string
	Session   models.Session
}

// Error carries a message fit for display alongside the cause.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns the display message of err.
func Message(err error, fallback string) string {
	var sessErr *Error
	if errors.As(err, &sessErr) {
		return sessErr.Message
	}
	return fallback
}

type Manager struct {
	store  Store
	auth   AuthAPI
	logger *zap.Logger

	mu          sync.RWMutex
	subscribers []func(Event)
}

func NewManager(store Store, auth AuthAPI, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, auth: auth, logger: logger}
}

// Subscribe registers fn to be called after each login and logout.
func (m *Manager) Subscribe(fn func(Event)) {
	m.mu.Lock()
	m.subscribers = append(m.subscribers, fn)
	m.mu.Unlock()
}

func (m *Manager) publish(ev Event) {
	m.mu.RLock()
	subs := append([]func(Event){}, m.subscribers...)
	m.mu.RUnlock()
	for _, fn := range subs {
		fn(ev)
	}
}

// Load reads the session of sessionID. The token is not validated.
func (m *Manager) Load(ctx context.Context, sessionID string) (models.Session, error) {
	if sessionID == "" {
		return models.Session{}, nil
	}
	token, err := m.store.Get(ctx, sessionID, models.StorageKeyToken)
	if err != nil {
		return models.Session{}, err
	}
	if token == "" {
		return models.Session{}, nil
	}
	role, err := m.store.Get(ctx, sessionID, models.StorageKeyUserRole)
	if err != nil {
		return models.Session{}, err
	}
	return models.Session{Token: token, Role: models.Role(role)}, nil
}

// Login authenticates against the API and stores the token and its role.
func (m *Manager) Login(ctx context.Context, sessionID, email, password string) (models.Session, error) {
	resp, err := m.auth.Login(ctx, email, password)
	if err != nil {
		m.logger.Info("Login failed", zap.String("email", email), zap.Error(err))
		return models.Session{}, &Error{Message: loginFailureMessage(err), Err: err}
	}
	if resp.Token == "" {
		msg := resp.Message
		if msg == "" {
			msg = "Login failed. Please try again."
		}
		return models.Session{}, &Error{Message: msg}
	}

	role, err := utils.ExtractRoleFromToken(resp.Token)
	if err != nil {
		m.logger.Warn("Login token carries no readable role", zap.String("email", email), zap.Error(err))
	}

	sess := models.Session{Token: resp.Token, Role: role}
	if err := m.store.Set(ctx, sessionID, map[string]string{
		models.StorageKeyToken:    sess.Token,
		models.StorageKeyUserRole: string(sess.Role),
	}); err != nil {
		return models.Session{}, &Error{Message: "An error occurred. Please try again.", Err: err}
	}

	m.logger.Info("User logged in", zap.String("email", email), zap.String("role", string(role)))
	m.publish(Event{Kind: EventLogin, SessionID: sessionID, Session: sess})
	return sess, nil
}

func loginFailureMessage(err error) string {
	switch {
	case api.IsKind(err, api.KindNetwork):
		return api.NetworkRetryMessage
	case api.IsKind(err, api.KindServer):
		return api.UserMessage(err, "An error occurred during login.")
	default:
		return "An error occurred. Please try again."
	}
}

// Logout clears the stored session.
func (m *Manager) Logout(ctx context.Context, sessionID string) error {
	if err := m.store.Clear(ctx, sessionID); err != nil {
		return err
	}
	m.publish(Event{Kind: EventLogout, SessionID: sessionID})
	return nil
}

// Register creates an account. Accounts register as stylists unless a role
// is given.
func (m *Manager) Register(ctx context.Context, reg models.RegistrationRequest) (*models.RegistrationResponse, error) {
	if reg.Role == "" {
		reg.Role = models.RoleStylist
	}
	resp, err := m.auth.Register(ctx, reg)
	if err != nil {
		return nil, &Error{Message: api.UserMessage(err, "An error occurred during registration."), Err: err}
	}
	m.logger.Info("User registered", zap.String("email", reg.Email), zap.String("role", string(reg.Role)))
	return resp, nil
}
