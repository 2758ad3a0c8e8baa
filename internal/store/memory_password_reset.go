package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-kita-inventory/models"
)

// MemoryPasswordResetRepository is an in-process [PasswordResetRepository].
// Password hashes set by ConsumeReset go to users.
type MemoryPasswordResetRepository struct {
	mu     sync.Mutex
	nextID int64
	resets map[string]models.PasswordReset // by token hash
	users  UserRepository
}

// NewMemoryPasswordResetRepository returns an empty repository.
func NewMemoryPasswordResetRepository(users UserRepository) *MemoryPasswordResetRepository {
	return &MemoryPasswordResetRepository{
		resets: make(map[string]models.PasswordReset),
		users:  users,
	}
}

func (m *MemoryPasswordResetRepository) CreateResetToken(_ context.Context, reset models.PasswordReset) (models.PasswordReset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	reset.ID = m.nextID
	if reset.CreatedAt.IsZero() {
		reset.CreatedAt = time.Now()
	}
	m.resets[reset.TokenHash] = reset

	return reset, nil
}

func (m *MemoryPasswordResetRepository) FindValidResetByHash(_ context.Context, hash string, now time.Time) (models.PasswordReset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reset, ok := m.resets[hash]
	if !ok || !reset.IsValid(now) {
		return models.PasswordReset{}, ErrResetNotFound
	}

	return reset, nil
}

// ConsumeReset holds the lock across the password update, so the token is
// marked used only once the new hash is stored.
func (m *MemoryPasswordResetRepository) ConsumeReset(ctx context.Context, hash string, now time.Time, passwordHash string) (models.PasswordReset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reset, ok := m.resets[hash]
	if !ok || !reset.IsValid(now) {
		return models.PasswordReset{}, ErrResetNotFound
	}
	if m.users == nil {
		return models.PasswordReset{}, ErrUserNotFound
	}
	if err := m.users.UpdatePasswordHash(ctx, reset.UserID, passwordHash); err != nil {
		return models.PasswordReset{}, err
	}

	reset.UsedAt = &now
	m.resets[hash] = reset

	return reset, nil
}

func (m *MemoryPasswordResetRepository) DeleteExpiredResets(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for hash, reset := range m.resets {
		if reset.ExpiresAt.Before(before) || reset.IsUsed() {
			delete(m.resets, hash)
			deleted++
		}
	}

	return deleted, nil
}
