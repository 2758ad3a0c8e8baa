package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-kita-inventory/models"
)

// MemoryUserRepository is an in-process [UserRepository] used in development
// and tests. All operations hold a single mutex, which makes every
// compare-and-swap atomic.
type MemoryUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
}

// NewMemoryUserRepository returns an empty repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[int64]models.User)}
}

func (m *MemoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Login == user.Login || (user.Email != "" && strings.EqualFold(u.Email, user.Email)) {
			return models.User{}, ErrLoginAlreadyExists
		}
	}

	m.nextID++
	user.UserID = m.nextID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	m.users[user.UserID] = user

	return user, nil
}

func (m *MemoryUserRepository) FindByID(_ context.Context, userID int64) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return u, nil
}

func (m *MemoryUserRepository) FindByLoginOrEmail(_ context.Context, identifier string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var found *models.User
	for _, u := range m.users {
		if u.Login == identifier || (identifier != "" && strings.EqualFold(u.Email, identifier)) {
			if found == nil || u.UserID < found.UserID {
				match := u
				found = &match
			}
		}
	}
	if found == nil {
		return models.User{}, ErrUserNotFound
	}

	return *found, nil
}

func (m *MemoryUserRepository) FindByRememberTokenHash(_ context.Context, hash string, now time.Time) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u, ok := m.byRememberHash(hash, now); ok {
		return u, nil
	}

	return models.User{}, ErrRememberTokenNotFound
}

func (m *MemoryUserRepository) UpdatePasswordHash(_ context.Context, userID int64, passwordHash string) error {
	return m.update(userID, func(u *models.User) { u.PasswordHash = passwordHash })
}

func (m *MemoryUserRepository) UpdateLastLogin(_ context.Context, userID int64, at time.Time) error {
	return m.update(userID, func(u *models.User) { u.LastLoginAt = &at })
}

func (m *MemoryUserRepository) SetRememberTokenHash(_ context.Context, userID int64, hash string, expiresAt time.Time) error {
	return m.update(userID, func(u *models.User) {
		u.RememberTokenHash = hash
		u.RememberTokenExpiresAt = &expiresAt
	})
}

func (m *MemoryUserRepository) RotateRememberTokenHash(_ context.Context, oldHash, newHash string, expiresAt, now time.Time) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.byRememberHash(oldHash, now)
	if !ok {
		return models.User{}, ErrRememberTokenNotFound
	}

	u.RememberTokenHash = newHash
	u.RememberTokenExpiresAt = &expiresAt
	m.users[u.UserID] = u

	return u, nil
}

func (m *MemoryUserRepository) ClearRememberTokenHash(_ context.Context, userID int64) error {
	return m.update(userID, func(u *models.User) {
		u.RememberTokenHash = ""
		u.RememberTokenExpiresAt = nil
	})
}

func (m *MemoryUserRepository) byRememberHash(hash string, now time.Time) (models.User, bool) {
	if hash == "" {
		return models.User{}, false
	}
	for _, u := range m.users {
		if u.RememberTokenHash == hash && u.HasValidRememberToken(now) {
			return u, true
		}
	}

	return models.User{}, false
}

func (m *MemoryUserRepository) update(userID int64, fn func(u *models.User)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	fn(&u)
	m.users[userID] = u

	return nil
}
