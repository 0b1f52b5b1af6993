// Package sessions holds the transient per-session login state. The
// store lives in process memory only: a restart clears every session.
package sessions

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mkarasev/loginapp/internal/models"
)

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "loginapp_session"

// Session is one authenticated UI session.
type Session struct {
	ID        string
	User      models.UserView
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store is an in-memory session store keyed by opaque session IDs.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the session lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// New creates a Store. Default session lifetime is one hour.
func New(opts ...Option) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a new session for the given user and returns it.
func (s *Store) Create(user models.UserView) *Session {
	now := time.Now()
	sess := &Session{
		ID:        uuid.New().String(),
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the session for id, or false when it is unknown or
// expired. Expired sessions are removed on access.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(sess.ExpiresAt) {
		s.Delete(id)
		return nil, false
	}
	return sess, true
}

// Delete removes the session for id. Unknown ids are a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// State returns the session context for id. An unknown or expired id
// yields the anonymous state.
func (s *Store) State(id string) models.SessionState {
	sess, ok := s.Get(id)
	if !ok {
		return models.SessionState{}
	}
	return models.SessionState{
		LoggedIn: true,
		Username: sess.User.Username,
		Email:    sess.User.Email,
		Role:     sess.User.Role,
	}
}

// SetCookie attaches the session cookie to the response.
func SetCookie(w http.ResponseWriter, sess *Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromRequest extracts the session id from the request cookie.
func FromRequest(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
