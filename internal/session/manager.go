// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-kita-inventory/internal/config"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
	"github.com/MKhiriev/go-kita-inventory/internal/utils"
	"github.com/MKhiriev/go-kita-inventory/models"
)

const (
	sessionIDLength = 32

	// defaultRotationGrace is how long the identifier replaced by a periodic
	// rotation keeps resolving, so requests already in flight with the old
	// cookie land on the same session.
	defaultRotationGrace = time.Minute
)

// Manager creates, loads and persists sessions.
type Manager struct {
	store      store.SessionStore
	cfg        config.Session
	trustProxy bool
	grace      time.Duration
	onRotate   func()

	now    func() time.Time
	logger *logger.Logger
}

// Option customizes a [Manager].
type Option func(*Manager)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithTrustProxy makes X-Forwarded-Proto decide whether cookies are Secure.
func WithTrustProxy(trust bool) Option {
	return func(m *Manager) { m.trustProxy = trust }
}

// WithRotateHook registers fn to run after every identifier rotation.
func WithRotateHook(fn func()) Option {
	return func(m *Manager) { m.onRotate = fn }
}

// WithRotationGrace sets how long an identifier replaced by a periodic
// rotation still resolves to the session. Zero deletes it immediately.
func WithRotationGrace(d time.Duration) Option {
	return func(m *Manager) { m.grace = d }
}

// NewManager returns a Manager persisting sessions in s.
func NewManager(s store.SessionStore, cfg config.Session, log *logger.Logger, opts ...Option) *Manager {
	m := &Manager{
		store:  s,
		cfg:    cfg,
		grace:  defaultRotationGrace,
		now:    time.Now,
		logger: log,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.cfg.CookieName == "" {
		m.cfg.CookieName = "kita_session"
	}
	if m.cfg.CookiePath == "" {
		m.cfg.CookiePath = "/"
	}
	if m.cfg.CSRFTokenLength <= 0 {
		m.cfg.CSRFTokenLength = 32
	}

	log.Debug().Str("cookie", m.cfg.CookieName).Msg("session manager created")
	return m
}

// Start returns the session of the request, loading it from the cookie or
// creating a new one. A session already attached to the request context is
// returned as is.
//
// Idle sessions are destroyed and replaced by an empty one. Sessions whose
// identifier is older than the regenerate interval get a new identifier with
// their data kept; the old identifier follows the new one for a short grace
// period. The cookie is (re)written before Start returns.
func (m *Manager) Start(w http.ResponseWriter, r *http.Request) (*Session, error) {
	if s := FromContext(r.Context()); s != nil {
		return s, nil
	}

	ctx := r.Context()
	log := logger.FromRequest(r)
	now := m.now()

	rec, err := m.load(r)
	if err != nil {
		log.Err(err).Str("func", "*Manager.Start").Msg("failed to load session")
		return nil, err
	}

	if rec != nil && rec.IsIdle(now, m.cfg.Lifetime) {
		log.Debug().Str("func", "*Manager.Start").Msg("session idle, starting a fresh one")
		if err = m.store.Delete(ctx, rec.ID); err != nil {
			return nil, fmt.Errorf("delete idle session: %w", err)
		}
		rec = nil
	}

	s := &Session{manager: m, w: w, r: r, active: true}

	switch {
	case rec == nil:
		id, err := utils.GenerateToken(sessionIDLength)
		if err != nil {
			return nil, err
		}
		s.rec = models.NewSessionRecord(id, now)
		if err = m.store.Save(ctx, s.rec); err != nil {
			return nil, fmt.Errorf("save new session: %w", err)
		}
	case m.cfg.RegenerateInterval > 0 && now.Sub(rec.RotatedAt) >= m.cfg.RegenerateInterval:
		s.rec = rec
		s.rec.LastActivity = now
		if err = s.rotate(ctx, m.grace); err != nil {
			return nil, err
		}
	default:
		s.rec = rec
		s.rec.LastActivity = now
		if err = m.store.Save(ctx, s.rec); err != nil {
			return nil, fmt.Errorf("touch session: %w", err)
		}
	}

	m.writeCookie(w, r, s.rec.ID)
	return s, nil
}

// Middleware starts the session for every request and stores it in the
// request context.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := m.Start(w, r)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), s)))
	})
}

// Secure reports whether cookies set for r must carry the Secure flag.
func (m *Manager) Secure(r *http.Request) bool {
	if m.cfg.ForceSecure || r.TLS != nil {
		return true
	}

	return m.trustProxy && strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// SameSite returns the configured SameSite mode.
func (m *Manager) SameSite() http.SameSite {
	switch strings.ToLower(m.cfg.SameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// Cookie builds a cookie carrying the configured path, domain and flags.
// A negative maxAge expires the cookie.
func (m *Manager) Cookie(r *http.Request, name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     m.cfg.CookiePath,
		Domain:   m.cfg.CookieDomain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.Secure(r),
		SameSite: m.SameSite(),
	}
}

func (m *Manager) load(r *http.Request) (*models.SessionRecord, error) {
	cookie, err := r.Cookie(m.cfg.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	rec, err := m.lookup(r, cookie.Value)
	if err != nil || rec == nil || !rec.IsAlias() {
		return rec, err
	}

	// only one hop: an alias never points at another alias for long
	if m.grace <= 0 || m.now().Sub(rec.RotatedAt) >= m.grace {
		return nil, nil
	}
	rec, err = m.lookup(r, rec.MovedTo)
	if err != nil || rec == nil || rec.IsAlias() {
		return nil, err
	}
	logger.FromRequest(r).Debug().Str("func", "*Manager.load").Msg("followed rotated session identifier")

	return rec, nil
}

func (m *Manager) lookup(r *http.Request, id string) (*models.SessionRecord, error) {
	rec, err := m.store.Load(r.Context(), id)
	if errors.Is(err, store.ErrSessionNotFound) || errors.Is(err, store.ErrEncodingSession) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rec.Normalize()

	return rec, nil
}

func (m *Manager) writeCookie(w http.ResponseWriter, r *http.Request, id string) {
	// session cookie lives until the browser closes; idle expiry is server side
	http.SetCookie(w, m.Cookie(r, m.cfg.CookieName, id, 0))
}

func (m *Manager) expireCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, m.Cookie(r, m.cfg.CookieName, "", -1))
}
