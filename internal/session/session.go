// Package session keeps admin sessions in memory behind opaque tokens.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the state bound to one logged-in admin.
type Session struct {
	Branch    string
	ExpiresAt time.Time
}

// Flash is a one-time notification shown on the next page render.
type Flash struct {
	Kind    string
	Message string
}

// SubmitResult carries a submission outcome to the success page, once.
type SubmitResult struct {
	QueueNumber int
	NowServing  int
}

type Store struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]Session
	flashes  map[string]Flash
	results  map[string]SubmitResult
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]Session),
		flashes:  make(map[string]Flash),
		results:  make(map[string]SubmitResult),
	}
}

// Create opens an admin session for a branch and returns its opaque token.
func (s *Store) Create(branch string) string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = Session{Branch: branch, ExpiresAt: s.now().Add(s.ttl)}
	return token
}

// Get returns the live session for a token. Expired sessions are removed.
func (s *Store) Get(token string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return Session{}, false
	}
	if s.now().After(sess.ExpiresAt) {
		s.drop(token)
		return Session{}, false
	}
	return sess, true
}

// Destroy removes the session and everything bound to its token.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drop(token)
}

func (s *Store) drop(token string) {
	delete(s.sessions, token)
	delete(s.flashes, token)
	delete(s.results, token)
}

func (s *Store) PutFlash(token string, flash Flash) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes[token] = flash
}

// TakeFlash returns and clears the pending flash in one step.
func (s *Store) TakeFlash(token string) (Flash, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flash, ok := s.flashes[token]
	if ok {
		delete(s.flashes, token)
	}
	return flash, ok
}

// PutResult stores a submission result under a token of its own, so the
// success page works without an admin session.
func (s *Store) PutResult(result SubmitResult) string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[token] = result
	return token
}

// TakeResult returns and clears the pending result in one step.
func (s *Store) TakeResult(token string) (SubmitResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, ok := s.results[token]
	if ok {
		delete(s.results, token)
	}
	return result, ok
}
