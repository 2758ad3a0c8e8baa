package session

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-kita-inventory/internal/utils"
	"github.com/MKhiriev/go-kita-inventory/models"
)

// Session is the per-request view of a stored session. Every mutation is
// written through to the store before the method returns.
type Session struct {
	mu      sync.Mutex
	manager *Manager
	rec     *models.SessionRecord
	active  bool

	w http.ResponseWriter
	r *http.Request
}

// ID returns the current session identifier.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rec.ID
}

// Active reports whether the session has not been destroyed.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active
}

// UserID returns the authenticated user id, or 0 for anonymous sessions.
func (s *Session) UserID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return 0
	}
	return s.rec.UserID
}

// User returns a copy of the identity snapshot, or nil.
func (s *Session) User() *models.UserSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || s.rec.User == nil {
		return nil
	}
	u := *s.rec.User
	return &u
}

func (s *Session) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.rec.Values[key]
	return v, ok
}

func (s *Session) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

func (s *Session) Set(ctx context.Context, key, value string) error {
	return s.mutate(ctx, func(rec *models.SessionRecord) {
		rec.Values[key] = value
	})
}

func (s *Session) Remove(ctx context.Context, key string) error {
	return s.mutate(ctx, func(rec *models.SessionRecord) {
		delete(rec.Values, key)
	})
}

// SetFlash stores a one-shot message under type, e.g. "error" or "success".
func (s *Session) SetFlash(ctx context.Context, typ, message string) error {
	return s.mutate(ctx, func(rec *models.SessionRecord) {
		rec.Flash[typ] = message
	})
}

// Flash returns all flash messages and clears them. The result is never nil.
func (s *Session) Flash(ctx context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return map[string]string{}, ErrInactive
	}

	flash := s.rec.Flash
	if len(flash) == 0 {
		return map[string]string{}, nil
	}

	s.rec.Flash = map[string]string{}
	if err := s.save(ctx); err != nil {
		return flash, err
	}

	return flash, nil
}

// SetOldInput replaces the remembered form input.
func (s *Session) SetOldInput(ctx context.Context, input map[string]string) error {
	return s.mutate(ctx, func(rec *models.SessionRecord) {
		rec.OldInput = make(map[string]string, len(input))
		for k, v := range input {
			rec.OldInput[k] = v
		}
	})
}

// OldInput returns the remembered value of a form field. Reading does not
// clear it.
func (s *Session) OldInput(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rec.OldInput[key]
}

func (s *Session) ClearOldInput(ctx context.Context) error {
	return s.mutate(ctx, func(rec *models.SessionRecord) {
		rec.OldInput = map[string]string{}
	})
}

// CSRFToken returns the session's CSRF token, creating it on first use and
// replacing it once it is older than the configured lifetime.
func (s *Session) CSRFToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return "", ErrInactive
	}

	now := s.manager.now()
	if s.rec.CSRFToken != "" && !s.csrfExpired() {
		return s.rec.CSRFToken, nil
	}

	token, err := utils.GenerateToken(s.manager.cfg.CSRFTokenLength)
	if err != nil {
		return "", err
	}
	s.rec.CSRFToken = token
	s.rec.CSRFIssuedAt = now

	if err = s.save(ctx); err != nil {
		return "", err
	}

	return token, nil
}

// VerifyCSRF compares candidate with the stored token in constant time.
// Empty, missing and expired tokens never verify.
func (s *Session) VerifyCSRF(candidate string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.rec.CSRFToken
	if !s.active || stored == "" || candidate == "" || s.csrfExpired() {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// Regenerate moves the session to a new identifier, keeping its data.
func (s *Session) Regenerate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrInactive
	}
	if err := s.rotate(ctx, 0); err != nil {
		return err
	}
	s.manager.writeCookie(s.w, s.r, s.rec.ID)

	return nil
}

// Authenticate binds user to the session under a fresh identifier. It is the
// only way to set the session identity.
func (s *Session) Authenticate(ctx context.Context, user models.UserSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrInactive
	}

	prevID, prevUser := s.rec.UserID, s.rec.User
	s.rec.UserID = user.UserID
	s.rec.User = &user
	if err := s.rotate(ctx, 0); err != nil {
		s.rec.UserID, s.rec.User = prevID, prevUser
		return err
	}
	s.manager.writeCookie(s.w, s.r, s.rec.ID)

	return nil
}

// Destroy deletes the session and expires its cookie. Further mutations
// return [ErrInactive].
func (s *Session) Destroy(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil
	}

	if err := s.manager.store.Delete(ctx, s.rec.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.active = false
	s.rec.UserID = 0
	s.rec.User = nil
	s.manager.expireCookie(s.w, s.r)

	return nil
}

func (s *Session) mutate(ctx context.Context, fn func(rec *models.SessionRecord)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrInactive
	}
	fn(s.rec)

	return s.save(ctx)
}

func (s *Session) save(ctx context.Context) error {
	if err := s.manager.store.Save(ctx, s.rec); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// rotate assigns a new identifier and renames the record in the store. The
// old identifier stays an alias for grace; privilege changes pass zero.
// Callers hold s.mu (or own s exclusively).
func (s *Session) rotate(ctx context.Context, grace time.Duration) error {
	id, err := utils.GenerateToken(sessionIDLength)
	if err != nil {
		return err
	}

	oldID := s.rec.ID
	s.rec.ID = id
	s.rec.RotatedAt = s.manager.now()

	if err = s.manager.store.Rotate(ctx, oldID, s.rec, grace); err != nil {
		s.rec.ID = oldID
		return fmt.Errorf("rotate session: %w", err)
	}
	if s.manager.onRotate != nil {
		s.manager.onRotate()
	}

	return nil
}

func (s *Session) csrfExpired() bool {
	lifetime := s.manager.cfg.CSRFTokenLifetime
	return lifetime > 0 && s.manager.now().Sub(s.rec.CSRFIssuedAt) >= lifetime
}
