package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Identity is the subset of a user record that lives in session state. It
// never carries credential material.
type Identity struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Role           string `json:"role"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == "admin"
}

type Session struct {
	ID        string
	Identity  Identity
	ExpiresAt time.Time
}

// MemoryStore keeps sessions in process memory with per-entry expiry. A
// janitor goroutine sweeps expired entries; Get also checks expiry so a
// stale entry is never returned between sweeps.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	done     chan struct{}
}

func NewMemoryStore(sweepInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]Session),
		done:     make(chan struct{}),
	}
	go s.sweep(sweepInterval)
	return s
}

func (s *MemoryStore) Create(identity Identity, ttl time.Duration) (Session, error) {
	sess := Session{
		ID:        uuid.NewString(),
		Identity:  identity,
		ExpiresAt: time.Now().Add(ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess, nil
}

func (s *MemoryStore) Get(id string) (Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return Session{}, ErrSessionNotFound
	}

	if time.Now().After(sess.ExpiresAt) {
		s.Delete(id)
		return Session{}, ErrSessionNotFound
	}

	return sess, nil
}

// Update replaces the cached identity projection without touching expiry.
func (s *MemoryStore) Update(id string, identity Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || time.Now().After(sess.ExpiresAt) {
		return ErrSessionNotFound
	}

	sess.Identity = identity
	s.sessions[id] = sess
	return nil
}

func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *MemoryStore) Close() {
	close(s.done)
}

func (s *MemoryStore) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, sess := range s.sessions {
				if now.After(sess.ExpiresAt) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
