package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-kita-inventory/internal/config"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
	"github.com/MKhiriev/go-kita-inventory/models"
)

// bruteForceGuard counts failed attempts per IP and escalates bans with
// exponential backoff. All counter and ban updates are single conditional
// statements in the repository.
type bruteForceGuard struct {
	ipBanRepository store.IPBanRepository
	policy          models.BanPolicy

	// retention is how long an expired record is kept after its last attempt.
	retention time.Duration

	onBan  func(ban models.IPBan)
	now    func() time.Time
	logger *logger.Logger
}

// NewBruteForceGuard returns a [BruteForceGuard] using the ban policy from cfg.
// onBan, when not nil, runs after every ban that was issued.
func NewBruteForceGuard(bans store.IPBanRepository, cfg config.Auth, onBan func(models.IPBan), logger *logger.Logger) BruteForceGuard {
	return &bruteForceGuard{
		ipBanRepository: bans,
		policy: models.BanPolicy{
			Threshold:    cfg.BanThreshold,
			BaseDuration: cfg.BanBaseDuration,
			MaxDuration:  cfg.BanMaxDuration,
		},
		retention: cfg.BanRetention,
		onBan:     onBan,
		now:       time.Now,
		logger:    logger,
	}
}

func (g *bruteForceGuard) IsBanned(ctx context.Context, ip string) (models.BanStatus, error) {
	ban, err := g.ipBanRepository.GetBan(ctx, ip)
	if errors.Is(err, store.ErrBanNotFound) {
		return models.BanNone, nil
	}
	if err != nil {
		return models.BanNone, fmt.Errorf("get ban: %w", err)
	}

	return ban.Status(g.now()), nil
}

// RecordFailedAttempt increments the counter of ip. Reaching the threshold
// bans ip for BaseDuration * 2^offenses (capped) and restarts the counter.
// When two requests reach the threshold together only one escalates.
func (g *bruteForceGuard) RecordFailedAttempt(ctx context.Context, ip, reason string) (models.IPBan, error) {
	log := logger.FromContext(ctx)
	now := g.now()

	ban, err := g.ipBanRepository.UpsertBanOnFailure(ctx, ip, reason, now)
	if err != nil {
		log.Err(err).Str("func", "*bruteForceGuard.RecordFailedAttempt").Str("ip", ip).Msg("failed to record attempt")
		return models.IPBan{}, fmt.Errorf("record failed attempt: %w", err)
	}

	if g.policy.Threshold <= 0 || ban.FailedAttempts < g.policy.Threshold {
		return ban, nil
	}

	escalated, err := g.ipBanRepository.EscalateBan(ctx, ip, g.policy, now)
	if errors.Is(err, store.ErrNoEscalation) {
		return ban, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*bruteForceGuard.RecordFailedAttempt").Str("ip", ip).Msg("failed to escalate ban")
		return ban, fmt.Errorf("escalate ban: %w", err)
	}

	log.Warn().
		Str("ip", ip).
		Int("offense_count", escalated.OffenseCount).
		Time("banned_until", *escalated.BannedUntil).
		Msg("ip banned after repeated failures")
	if g.onBan != nil {
		g.onBan(escalated)
	}

	return escalated, nil
}

// ResetFailedAttempts zeroes the counter of ip. A ban in force stays.
func (g *bruteForceGuard) ResetFailedAttempts(ctx context.Context, ip string) error {
	if err := g.ipBanRepository.ResetBanCounter(ctx, ip); err != nil {
		return fmt.Errorf("reset failed attempts: %w", err)
	}
	return nil
}

func (g *bruteForceGuard) BanPermanently(ctx context.Context, ip, reason string) (models.IPBan, error) {
	ban, err := g.ipBanRepository.InsertManualBan(ctx, ip, reason, g.now())
	if err != nil {
		return models.IPBan{}, fmt.Errorf("insert manual ban: %w", err)
	}

	logger.FromContext(ctx).Warn().Str("ip", ip).Str("reason", reason).Msg("ip banned permanently")
	if g.onBan != nil {
		g.onBan(ban)
	}

	return ban, nil
}

func (g *bruteForceGuard) Unban(ctx context.Context, ip string) error {
	if err := g.ipBanRepository.DeleteBan(ctx, ip); err != nil {
		return fmt.Errorf("delete ban: %w", err)
	}
	return nil
}

func (g *bruteForceGuard) ListBans(ctx context.Context) ([]models.IPBan, error) {
	return g.ipBanRepository.ListBans(ctx)
}

// PurgeExpired removes non-permanent records whose ban has elapsed and whose
// last attempt is older than the retention window.
func (g *bruteForceGuard) PurgeExpired(ctx context.Context) (int64, error) {
	now := g.now()
	return g.ipBanRepository.DeleteExpiredBans(ctx, now, now.Add(-g.retention))
}
