package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-kita-inventory/models"
)

// MemorySessionStore is an in-process [SessionStore]. Records are cloned on
// the way in and out so callers never share maps with the store.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.SessionRecord
}

// NewMemorySessionStore returns an empty store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*models.SessionRecord)}
}

func (s *MemorySessionStore) Load(_ context.Context, id string) (*models.SessionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return rec.Clone(), nil
}

func (s *MemorySessionStore) Save(_ context.Context, rec *models.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[rec.ID] = rec.Clone()
	return nil
}

// Rotate stores rec and replaces oldID. The alias left for a positive grace
// has no expiry of its own; readers check its RotatedAt against the grace.
func (s *MemorySessionStore) Rotate(_ context.Context, oldID string, rec *models.SessionRecord, grace time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if grace > 0 {
		s.sessions[oldID] = models.NewSessionAlias(oldID, rec.ID, rec.RotatedAt)
	} else {
		delete(s.sessions, oldID)
	}
	s.sessions[rec.ID] = rec.Clone()
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

func (s *MemorySessionStore) DeleteIdle(_ context.Context, lastActivityBefore time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for id, rec := range s.sessions {
		if rec.LastActivity.Before(lastActivityBefore) {
			delete(s.sessions, id)
			count++
		}
	}

	return count, nil
}

// Len returns the number of stored sessions.
func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

func (s *MemorySessionStore) Close() error {
	return nil
}
