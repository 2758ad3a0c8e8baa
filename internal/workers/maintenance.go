// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/metrics"
	"github.com/MKhiriev/go-kita-inventory/internal/service"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
)

// Purge kinds reported to metrics.MaintenancePurged.
const (
	PurgedBans           = "ip_bans"
	PurgedPasswordResets = "password_resets"
	PurgedSessions       = "sessions"
)

// Maintenance periodically removes expired bans, expired password-reset
// tokens and idle sessions.
type Maintenance struct {
	bans        service.BruteForceGuard
	tokens      service.TokenIssuer
	sessions    store.SessionStore
	interval    time.Duration
	idleTimeout time.Duration
	now         func() time.Time

	logger *logger.Logger
}

// NewMaintenance creates the worker. A non-positive interval disables it:
// Run then returns immediately.
func NewMaintenance(services *service.Services, sessions store.SessionStore, interval, idleTimeout time.Duration, logger *logger.Logger) *Maintenance {
	return &Maintenance{
		bans:        services.BruteForce,
		tokens:      services.Tokens,
		sessions:    sessions,
		interval:    interval,
		idleTimeout: idleTimeout,
		now:         time.Now,
		logger:      logger,
	}
}

func (m *Maintenance) Run(ctx context.Context) {
	if m.interval <= 0 {
		m.logger.Info().Str("func", "*Maintenance.Run").Msg("maintenance worker disabled")
		return
	}

	t := time.NewTicker(m.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single purge pass. Each step runs even if an earlier
// one failed.
func (m *Maintenance) RunOnce(ctx context.Context) {
	log := m.logger.With().Str("func", "*Maintenance.RunOnce").Logger()

	if n, err := m.bans.PurgeExpired(ctx); err != nil {
		log.Err(err).Msg("failed to purge expired bans")
	} else {
		m.count(PurgedBans, n)
	}

	if n, err := m.tokens.PurgeExpired(ctx); err != nil {
		log.Err(err).Msg("failed to purge expired password resets")
	} else {
		m.count(PurgedPasswordResets, n)
	}

	if m.sessions != nil && m.idleTimeout > 0 {
		n, err := m.sessions.DeleteIdle(ctx, m.now().Add(-m.idleTimeout))
		if err != nil {
			log.Err(err).Msg("failed to delete idle sessions")
		} else {
			m.count(PurgedSessions, int64(n))
		}
	}

	log.Debug().Msg("maintenance pass finished")
}

func (m *Maintenance) count(kind string, n int64) {
	if n > 0 {
		metrics.MaintenancePurged.WithLabelValues(kind).Add(float64(n))
		m.logger.Info().Str("kind", kind).Int64("purged", n).Msg("maintenance purged records")
	}
}
