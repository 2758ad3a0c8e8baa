package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-kita-inventory/internal/config"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
)

// Storages bundles every persistence collaborator of the server.
type Storages struct {
	Users          UserRepository
	PasswordResets PasswordResetRepository
	IPBans         IPBanRepository
	Changelog      ChangelogRepository
	Sessions       SessionStore

	db *DB
}

// NewStorages connects to PostgreSQL (running migrations) when a DSN is
// configured and falls back to in-memory repositories otherwise. Sessions go
// to BadgerDB when a directory or in-memory mode is configured.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	s := &Storages{}

	if cfg.Storage.DB.DSN != "" {
		db, err := NewConnectPostgres(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			_ = db.Close()
			return nil, err
		}

		s.db = db
		s.Users = NewUserRepository(db, log)
		s.PasswordResets = NewPasswordResetRepository(db, log)
		s.IPBans = NewIPBanRepository(db, log)
		s.Changelog = NewChangelogRepository(db, log)
	} else {
		log.Warn().Str("func", "NewStorages").Msg("no database configured, using in-memory repositories")
		s.Users = NewMemoryUserRepository()
		s.PasswordResets = NewMemoryPasswordResetRepository(s.Users)
		s.IPBans = NewMemoryIPBanRepository()
		s.Changelog = NewMemoryChangelogRepository()
	}

	if cfg.Storage.Sessions.Dir != "" || cfg.Storage.Sessions.InMemory {
		sessions, err := OpenBadgerSessionStore(cfg.Storage.Sessions, cfg.Session.Lifetime, log)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.Sessions = sessions
	} else {
		s.Sessions = NewMemorySessionStore()
	}

	return s, nil
}

// Close releases the database connection and the session store.
func (s *Storages) Close() error {
	var errs []error
	if s.Sessions != nil {
		if err := s.Sessions.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close session store: %w", err))
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}

	return errors.Join(errs...)
}
