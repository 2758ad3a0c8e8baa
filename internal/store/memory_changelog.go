package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-kita-inventory/models"
)

// MemoryChangelogRepository keeps audit entries in a slice.
type MemoryChangelogRepository struct {
	mu      sync.Mutex
	entries []models.ChangelogEntry
}

func NewMemoryChangelogRepository() *MemoryChangelogRepository {
	return &MemoryChangelogRepository{}
}

func (m *MemoryChangelogRepository) Record(_ context.Context, entry models.ChangelogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, entry)
	return nil
}

// Entries returns a copy of everything recorded so far.
func (m *MemoryChangelogRepository) Entries() []models.ChangelogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.ChangelogEntry, len(m.entries))
	copy(out, m.entries)
	return out
}
