package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/mcoot/gameportal/internal/model"
	"github.com/mcoot/gameportal/internal/services/directory"
	"github.com/mcoot/gameportal/internal/storage"
)

// Listener is notified after every identity transition
type Listener func(ctx context.Context, change model.IdentityChange)

// Manager holds the single signed-in identity of a portal context.
// It is either anonymous (current == nil) or authenticated.
type Manager struct {
	store     storage.Store
	directory *directory.Service
	logger    *slog.Logger

	mu        sync.RWMutex
	current   *model.Session
	listeners []Listener
}

// New creates a Manager, restoring any persisted session
func New(ctx context.Context, store storage.Store, dir *directory.Service, logger *slog.Logger) *Manager {
	m := &Manager{
		store:     store,
		directory: dir,
		logger:    logger.With(slog.String("component", "session")),
	}
	m.current = m.restore(ctx)
	return m
}

// restore reads the persisted session record. Anything unreadable or
// incomplete starts the context anonymous.
func (m *Manager) restore(ctx context.Context) *model.Session {
	sess, err := storage.ReadJSON[*model.Session](ctx, m.store, storage.KeyCurrentSession)
	if err != nil {
		m.logger.Warn("could not restore session", slog.Any("error", err))
		return nil
	}
	if !sess.Valid() {
		return nil
	}
	m.logger.Info("session restored", slog.String("user_id", string(sess.ID)))
	return sess
}

// Subscribe registers a listener for identity changes
func (m *Manager) Subscribe(l Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}

// Current returns a copy of the signed-in identity, or nil when anonymous
func (m *Manager) Current() *model.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	sess := *m.current
	return &sess
}

// IsAuthenticated reports whether a user is signed in
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}

// Login signs a user in. It is only allowed while anonymous.
func (m *Manager) Login(ctx context.Context, email, password string) (*model.Session, error) {
	if m.IsAuthenticated() {
		return nil, model.ErrAlreadyAuthenticated
	}

	account, err := m.directory.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return m.signIn(ctx, account)
}

// Register creates an account and signs it in. It is only allowed while anonymous.
func (m *Manager) Register(ctx context.Context, username, email, password string) (*model.Session, error) {
	if m.IsAuthenticated() {
		return nil, model.ErrAlreadyAuthenticated
	}

	if _, err := m.directory.Register(ctx, username, email, password); err != nil {
		return nil, err
	}

	// Sign in through the same path as Login so the new credentials are checked
	account, err := m.directory.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return m.signIn(ctx, account)
}

// Logout clears the persisted session and returns to anonymous. The in-memory
// transition happens even if the persisted record could not be removed.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.store.Remove(ctx, storage.KeyCurrentSession)
	if err != nil {
		m.logger.Error("failed to remove persisted session", slog.Any("error", err))
	}

	m.transition(ctx, nil)
	return err
}

func (m *Manager) signIn(ctx context.Context, account *model.Account) (*model.Session, error) {
	sess := model.SessionFor(account)
	if err := storage.WriteJSON(ctx, m.store, storage.KeyCurrentSession, sess); err != nil {
		return nil, err
	}

	m.transition(ctx, sess)
	m.logger.Info("signed in", slog.String("user_id", string(sess.ID)))

	out := *sess
	return &out, nil
}

// transition swaps the identity and notifies listeners outside the lock
func (m *Manager) transition(ctx context.Context, next *model.Session) {
	m.mu.Lock()
	prev := m.current
	m.current = next
	listeners := make([]Listener, len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	change := model.IdentityChange{Previous: copySession(prev), Current: copySession(next)}
	for _, l := range listeners {
		l(ctx, change)
	}
}

func copySession(s *model.Session) *model.Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// IsCredentialFailure reports whether err is an expected login/registration
// refusal rather than an infrastructure failure
func IsCredentialFailure(err error) bool {
	return errors.Is(err, model.ErrInvalidCredentials) ||
		errors.Is(err, model.ErrAlreadyExists) ||
		errors.Is(err, model.ErrAlreadyAuthenticated) ||
		errors.Is(err, model.ErrInvalidInput)
}
