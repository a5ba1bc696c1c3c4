// Package session holds the authenticated identity of the running client.
//
// The session lives in memory only and is lost when the process exits.
package session

import (
	"sync"

	"github.com/MKhiriev/go-skladischer/models"
)

// Store holds at most one [models.Session].
//
// Reads and writes are guarded so any goroutine observes a whole session.
// Concurrent logins are last-writer-wins; callers serialise them.
type Store struct {
	mu      sync.RWMutex
	current *models.Session
}

func NewStore() *Store {
	return &Store{}
}

// Set replaces the current session.
func (s *Store) Set(session models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &session
}

// Clear drops the current session.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Current returns a copy of the current session.
func (s *Store) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.Session{}, false
	}
	return *s.current, true
}

// IsAuthenticated reports whether a session with a non-empty token is held.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current.Token != ""
}

// Token returns the bearer token or an empty string.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}
