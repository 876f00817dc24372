// Package session is the process-wide session store: one record per signed-in
// browser, keyed by an opaque id carried in a cookie. A record owns the
// backend token and user profile plus the per-view list state, and is written
// only by login, register and logout. There is no cross-instance
// synchronization; a second server process means a second sign-in, the same
// way a second browser profile did for the original client.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"examgen_client/listquery"
	"examgen_client/models"
)

type Session struct {
	ID        string
	Token     string
	User      models.User
	CreatedAt time.Time

	mu         sync.Mutex
	history    *listquery.Controller[models.GeneratedTask]
	reviews    *listquery.Controller[models.Review]
	generating bool
}

// Authenticated reports whether the session holds a usable token. The token
// is opaque to the client, but when it happens to parse as a JWT the exp
// claim is honored; the client cannot verify the signature (it has no
// secret), so expiry is the only claim it acts on.
func (s *Session) Authenticated() bool {
	if s == nil || s.Token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.After(time.Now())
}

// HistoryList returns this session's task-history controller, creating it on
// first use.
func (s *Session) HistoryList(fetch listquery.Fetcher[models.GeneratedTask]) *listquery.Controller[models.GeneratedTask] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.history == nil {
		s.history = listquery.NewController(fetch)
	}
	return s.history
}

// ReviewList returns this session's review-list controller, creating it on
// first use.
func (s *Session) ReviewList(fetch listquery.Fetcher[models.Review]) *listquery.Controller[models.Review] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reviews == nil {
		s.reviews = listquery.NewController(fetch)
	}
	return s.reviews
}

// BeginGeneration marks a task generation as in flight. It reports false when
// one is already running, which is how double submits are rejected.
func (s *Session) BeginGeneration() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generating {
		return false
	}
	s.generating = true
	return true
}

func (s *Session) EndGeneration() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = false
}

type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]*Session
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Create opens a session for a freshly authenticated user and returns it with
// a new random id.
func (s *Store) Create(token string, user models.User) *Session {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	sess := &Session{
		ID:        hex.EncodeToString(bytes),
		Token:     token,
		User:      user,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get resolves a session id. Sessions past their TTL are dropped on access.
func (s *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && time.Since(sess.CreatedAt) > s.ttl {
		s.Delete(id)
		return nil, false
	}
	return sess, true
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
