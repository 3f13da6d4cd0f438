package editor

import (
	"sync"

	"github.com/google/uuid"
)

// Store holds at most one editor per user.
type Store struct {
	mu      sync.RWMutex
	editors map[string]*Editor
}

func NewStore() *Store {
	return &Store{editors: make(map[string]*Editor)}
}

// Put installs e as the user's editor, replacing any previous one.
func (s *Store) Put(e *Editor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editors[e.UserID] = e
}

func (s *Store) Get(userID string) (*Editor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.editors[userID]
	return e, ok
}

// Delete removes the user's editor only if it is still session id.
func (s *Store) Delete(userID string, id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.editors[userID]
	if !ok || e.ID != id {
		return false
	}
	delete(s.editors, userID)
	return true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.editors)
}
