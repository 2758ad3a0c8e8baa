// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-kita-inventory/internal/config"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/service"
	"github.com/MKhiriev/go-kita-inventory/internal/session"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
	"github.com/MKhiriev/go-kita-inventory/internal/utils"
)

// LoginPath is where anonymous requests to protected actions are sent.
const LoginPath = "/login"

// IntendedKey is the session key holding the URL a visitor wanted before
// being sent to the login page.
const IntendedKey = "auth.intended"

// Manager wires the credential verifier, token issuer and brute-force guard
// to the session layer. It is shared by all requests; per-request state
// lives in [Guard].
type Manager struct {
	credentials service.CredentialVerifier
	tokens      service.TokenIssuer
	bruteForce  service.BruteForceGuard

	userRepository      store.UserRepository
	changelogRepository store.ChangelogRepository

	sessions         *session.Manager
	rememberCookie   string
	rememberDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewManager returns a Manager using cfg for the remember-me cookie.
func NewManager(
	services *service.Services,
	storages *store.Storages,
	sessions *session.Manager,
	cfg config.Auth,
	logger *logger.Logger,
) *Manager {
	name := cfg.RememberCookieName
	if name == "" {
		name = "remember_me"
	}

	return &Manager{
		credentials:         services.Credentials,
		tokens:              services.Tokens,
		bruteForce:          services.BruteForce,
		userRepository:      storages.Users,
		changelogRepository: storages.Changelog,
		sessions:            sessions,
		rememberCookie:      name,
		rememberDuration:    cfg.RememberTokenDuration,
		now:                 time.Now,
		logger:              logger,
	}
}

// Guard returns the guard for the request. The session must already be
// started.
func (m *Manager) Guard(w http.ResponseWriter, r *http.Request) (*Guard, error) {
	if g := FromContext(r.Context()); g != nil {
		return g, nil
	}

	sess := session.FromContext(r.Context())
	if sess == nil {
		return nil, ErrNoSession
	}

	return &Guard{
		manager: m,
		session: sess,
		w:       w,
		r:       r,
		ip:      utils.ClientIP(r),
	}, nil
}

// Middleware resolves the identity of every request and stores the guard in
// the request context. The user id, when known, is also stored under
// [utils.UserIDCtxKey] and added to the request logger.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		g, err := m.Guard(w, r)
		if err != nil {
			log.Err(err).Str("func", "*Manager.Middleware").Msg("cannot build auth guard")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx := NewContext(r.Context(), g)
		ok, err := g.Check(ctx)
		if err != nil {
			log.Err(err).Str("func", "*Manager.Middleware").Msg("identity check failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if ok {
			userID := g.ID(ctx)
			ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)
			ctx = log.With().Int64("user_id", userID).Logger().WithContext(ctx)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth lets authenticated requests through. Anonymous visitors get a
// flash message and are redirected to the login page; the requested URL is
// remembered for after the login.
func (m *Manager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if g := FromContext(ctx); g != nil {
			if ok, err := g.Check(ctx); err == nil && ok {
				next.ServeHTTP(w, r)
				return
			}
		}

		if sess := session.FromContext(ctx); sess != nil {
			if r.Method == http.MethodGet {
				_ = sess.Set(ctx, IntendedKey, r.URL.RequestURI())
			}
			_ = sess.SetFlash(ctx, "error", "Please log in to continue.")
		}

		http.Redirect(w, r, LoginPath, http.StatusSeeOther)
	})
}

func (m *Manager) setRememberCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, m.sessions.Cookie(r, m.rememberCookie, token, int(m.rememberDuration.Seconds())))
}

func (m *Manager) clearRememberCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, m.sessions.Cookie(r, m.rememberCookie, "", -1))
}
