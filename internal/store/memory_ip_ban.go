package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-kita-inventory/models"
)

// MemoryIPBanRepository is an in-process [IPBanRepository] with the same
// escalation semantics as the SQL statements.
type MemoryIPBanRepository struct {
	mu   sync.Mutex
	bans map[string]models.IPBan
}

// NewMemoryIPBanRepository returns an empty repository.
func NewMemoryIPBanRepository() *MemoryIPBanRepository {
	return &MemoryIPBanRepository{bans: make(map[string]models.IPBan)}
}

func (m *MemoryIPBanRepository) GetBan(_ context.Context, ip string) (models.IPBan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ban, ok := m.bans[ip]
	if !ok {
		return models.IPBan{}, ErrBanNotFound
	}

	return ban, nil
}

func (m *MemoryIPBanRepository) ListBans(_ context.Context) ([]models.IPBan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	bans := make([]models.IPBan, 0, len(m.bans))
	for _, ban := range m.bans {
		bans = append(bans, ban)
	}
	sort.Slice(bans, func(i, j int) bool {
		return bans[i].LastAttemptAt.After(bans[j].LastAttemptAt)
	})

	return bans, nil
}

func (m *MemoryIPBanRepository) UpsertBanOnFailure(_ context.Context, ip, reason string, now time.Time) (models.IPBan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ban, ok := m.bans[ip]
	if !ok {
		ban = models.IPBan{IP: ip}
	}
	ban.FailedAttempts++
	ban.LastAttemptAt = now
	ban.Reason = reason
	m.bans[ip] = ban

	return ban, nil
}

func (m *MemoryIPBanRepository) EscalateBan(_ context.Context, ip string, policy models.BanPolicy, now time.Time) (models.IPBan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ban, ok := m.bans[ip]
	if !ok || ban.FailedAttempts < policy.Threshold {
		return models.IPBan{}, ErrNoEscalation
	}

	until := now.Add(policy.DurationFor(ban.OffenseCount))
	if ban.BannedUntil != nil && ban.BannedUntil.After(until) {
		until = *ban.BannedUntil
	}
	ban.BannedUntil = &until
	ban.OffenseCount++
	ban.FailedAttempts = 0
	m.bans[ip] = ban

	return ban, nil
}

func (m *MemoryIPBanRepository) ResetBanCounter(_ context.Context, ip string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ban, ok := m.bans[ip]; ok {
		ban.FailedAttempts = 0
		m.bans[ip] = ban
	}

	return nil
}

func (m *MemoryIPBanRepository) InsertManualBan(_ context.Context, ip, reason string, now time.Time) (models.IPBan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ban, ok := m.bans[ip]
	if !ok {
		ban = models.IPBan{IP: ip, LastAttemptAt: now}
	}
	ban.IsPermanent = true
	ban.Reason = reason
	m.bans[ip] = ban

	return ban, nil
}

func (m *MemoryIPBanRepository) DeleteBan(_ context.Context, ip string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.bans[ip]; !ok {
		return ErrBanNotFound
	}
	delete(m.bans, ip)

	return nil
}

func (m *MemoryIPBanRepository) DeleteExpiredBans(_ context.Context, now, lastAttemptBefore time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for ip, ban := range m.bans {
		if ban.Status(now) == models.BanNone && ban.LastAttemptAt.Before(lastAttemptBefore) {
			delete(m.bans, ip)
			deleted++
		}
	}

	return deleted, nil
}
