package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-kita-inventory/internal/config"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/models"
	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const sessionKeyPrefix = "session:"

// BadgerSessionStore implements [SessionStore] on BadgerDB. Every write sets
// a TTL equal to the idle lifetime, so abandoned sessions disappear without
// a sweep.
type BadgerSessionStore struct {
	db     *badger.DB
	ttl    time.Duration
	logger *logger.Logger
}

// OpenBadgerSessionStore opens (or creates) the BadgerDB described by cfg.
func OpenBadgerSessionStore(cfg config.Sessions, ttl time.Duration, log *logger.Logger) (*BadgerSessionStore, error) {
	opts := badger.DefaultOptions(cfg.Dir).WithLogger(nil)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		log.Err(err).Str("func", "OpenBadgerSessionStore").Str("dir", cfg.Dir).Msg("error opening session store")
		return nil, fmt.Errorf("open badger: %w", err)
	}
	log.Info().Str("func", "OpenBadgerSessionStore").Bool("in_memory", cfg.InMemory).Msg("session store opened")

	return NewBadgerSessionStore(db, ttl, log), nil
}

// NewBadgerSessionStore wraps an already opened BadgerDB.
func NewBadgerSessionStore(db *badger.DB, ttl time.Duration, log *logger.Logger) *BadgerSessionStore {
	return &BadgerSessionStore{db: db, ttl: ttl, logger: log}
}

func (s *BadgerSessionStore) Load(_ context.Context, id string) (*models.SessionRecord, error) {
	var rec *models.SessionRecord

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}

		return item.Value(func(val []byte) error {
			rec, err = decodeSession(val)
			return err
		})
	})
	if err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *BadgerSessionStore) Save(_ context.Context, rec *models.SessionRecord) error {
	entry, err := s.entry(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(entry)
	})
}

// Rotate writes rec and replaces oldID in one transaction. With a positive
// grace oldID becomes an alias of rec.ID that expires after grace, otherwise
// it is deleted.
func (s *BadgerSessionStore) Rotate(_ context.Context, oldID string, rec *models.SessionRecord, grace time.Duration) error {
	entry, err := s.entry(rec)
	if err != nil {
		return err
	}

	var alias *badger.Entry
	if grace > 0 {
		data, err := json.Marshal(models.NewSessionAlias(oldID, rec.ID, rec.RotatedAt))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncodingSession, err)
		}
		alias = badger.NewEntry(sessionKey(oldID), data).WithTTL(grace)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if alias != nil {
			if err := txn.SetEntry(alias); err != nil {
				return fmt.Errorf("alias old session: %w", err)
			}
		} else if err := txn.Delete(sessionKey(oldID)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete old session: %w", err)
		}
		return txn.SetEntry(entry)
	})
}

func (s *BadgerSessionStore) Delete(_ context.Context, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(sessionKey(id)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete session: %w", err)
		}
		return nil
	})
}

// DeleteIdle removes sessions whose last activity is older than
// lastActivityBefore and runs value log garbage collection afterwards.
func (s *BadgerSessionStore) DeleteIdle(_ context.Context, lastActivityBefore time.Time) (int, error) {
	var idle [][]byte

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(sessionKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()

			var rec *models.SessionRecord
			if err := item.Value(func(val []byte) (err error) {
				rec, err = decodeSession(val)
				return err
			}); err != nil {
				// undecodable records are swept too
				idle = append(idle, item.KeyCopy(nil))
				continue
			}

			if rec.LastActivity.Before(lastActivityBefore) {
				idle = append(idle, item.KeyCopy(nil))
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan sessions: %w", err)
	}

	count := 0
	for _, key := range idle {
		if err := s.db.Update(func(txn *badger.Txn) error {
			return txn.Delete(key)
		}); err != nil {
			s.logger.Err(err).Str("func", "*BadgerSessionStore.DeleteIdle").Msg("failed to delete idle session")
			continue
		}
		count++
	}

	if !s.db.Opts().InMemory {
		// ErrNoRewrite just means there was nothing to collect.
		if err := s.db.RunValueLogGC(0.5); err != nil && !errors.Is(err, badger.ErrNoRewrite) {
			s.logger.Warn().Err(err).Str("func", "*BadgerSessionStore.DeleteIdle").Msg("value log gc failed")
		}
	}

	return count, nil
}

func (s *BadgerSessionStore) Close() error {
	return s.db.Close()
}

func (s *BadgerSessionStore) entry(rec *models.SessionRecord) (*badger.Entry, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}

	entry := badger.NewEntry(sessionKey(rec.ID), data)
	if s.ttl > 0 {
		entry = entry.WithTTL(s.ttl)
	}

	return entry, nil
}

func decodeSession(val []byte) (*models.SessionRecord, error) {
	var rec models.SessionRecord
	if err := json.Unmarshal(val, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}
	rec.Normalize()

	return &rec, nil
}

func sessionKey(id string) []byte {
	return []byte(sessionKeyPrefix + id)
}
