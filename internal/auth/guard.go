package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/metrics"
	"github.com/MKhiriev/go-kita-inventory/internal/service"
	"github.com/MKhiriev/go-kita-inventory/internal/session"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
	"github.com/MKhiriev/go-kita-inventory/models"
)

const (
	methodPassword = "password"
	methodRemember = "remember_token"

	reasonInvalidCredentials = "invalid credentials"
	reasonRememberToken      = "remember_token"
)

// Guard is the authentication state of one request. It memoizes the
// resolved user, so Check, User and ID cost at most one lookup per request.
// A Guard is not shared between requests.
type Guard struct {
	manager *Manager
	session *session.Session

	w  http.ResponseWriter
	r  *http.Request
	ip string

	checked bool
	user    *models.User
}

// IP returns the client address the guard attributes attempts to.
func (g *Guard) IP() string {
	return g.ip
}

// Check reports whether the request is authenticated. The session identity
// is tried first; without one, a remember-me cookie is redeemed and turned
// into a regular login.
func (g *Guard) Check(ctx context.Context) (bool, error) {
	if g.checked {
		return g.user != nil, nil
	}

	if userID := g.session.UserID(); userID != 0 {
		user, err := g.manager.userRepository.FindByID(ctx, userID)
		if errors.Is(err, store.ErrUserNotFound) {
			logger.FromContext(ctx).Warn().Int64("user_id", userID).Msg("session refers to a missing user")
			g.checked = true
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("load session user: %w", err)
		}

		g.checked = true
		g.user = &user
		return true, nil
	}

	ok, err := g.viaRemember(ctx)
	if err != nil {
		return false, err
	}
	g.checked = true

	return ok, nil
}

// User returns the authenticated user or nil.
func (g *Guard) User(ctx context.Context) *models.User {
	if ok, err := g.Check(ctx); err != nil || !ok {
		return nil
	}
	u := *g.user
	return &u
}

// ID returns the authenticated user id or 0.
func (g *Guard) ID(ctx context.Context) int64 {
	if u := g.User(ctx); u != nil {
		return u.UserID
	}
	return 0
}

// Attempt logs in with a password. Banned clients are turned away before
// the password is looked at; failures count towards a ban.
func (g *Guard) Attempt(ctx context.Context, login, password string, remember bool) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := g.ensureNotBanned(ctx, methodPassword); err != nil {
		return models.User{}, err
	}

	user, err := g.manager.credentials.Verify(ctx, login, password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		metrics.LoginAttempts.WithLabelValues(methodPassword, metrics.OutcomeFailure).Inc()
		if _, recErr := g.manager.bruteForce.RecordFailedAttempt(ctx, g.ip, reasonInvalidCredentials); recErr != nil {
			log.Err(recErr).Str("func", "*Guard.Attempt").Str("ip", g.ip).Msg("failed to record failed attempt")
		}
		log.Info().Str("ip", g.ip).Msg("login failed")
		return models.User{}, ErrAuthenticationFailed
	}
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(methodPassword, metrics.OutcomeError).Inc()
		return models.User{}, fmt.Errorf("verify credentials: %w", err)
	}

	if err = g.Login(ctx, user, remember); err != nil {
		metrics.LoginAttempts.WithLabelValues(methodPassword, metrics.OutcomeError).Inc()
		return models.User{}, err
	}
	if err = g.manager.bruteForce.ResetFailedAttempts(ctx, g.ip); err != nil {
		log.Err(err).Str("func", "*Guard.Attempt").Str("ip", g.ip).Msg("failed to reset failed attempts")
	}
	metrics.LoginAttempts.WithLabelValues(methodPassword, metrics.OutcomeSuccess).Inc()

	return user, nil
}

// Login binds user to the session under a new session identifier and, if
// remember is set, issues a remember-me cookie.
func (g *Guard) Login(ctx context.Context, user models.User, remember bool) error {
	if err := g.login(ctx, user, models.ActionLogin); err != nil {
		return err
	}

	if remember {
		token, err := g.manager.tokens.IssueRememberToken(ctx, user.UserID)
		if err != nil {
			return fmt.Errorf("issue remember token: %w", err)
		}
		g.manager.setRememberCookie(g.w, g.r, token)
	}

	return nil
}

// Logout revokes the remember token, destroys the session and forgets the
// memoized user.
func (g *Guard) Logout(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if user := g.User(ctx); user != nil {
		if err := g.manager.tokens.RevokeRememberToken(ctx, user.UserID); err != nil {
			log.Err(err).Str("func", "*Guard.Logout").Int64("user_id", user.UserID).Msg("failed to revoke remember token")
		}
		g.record(ctx, models.ChangelogEntry{UserID: user.UserID, Action: models.ActionLogout})
	}

	g.manager.clearRememberCookie(g.w, g.r)
	if err := g.session.Destroy(ctx); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}

	g.checked = true
	g.user = nil

	return nil
}

func (g *Guard) login(ctx context.Context, user models.User, action string) error {
	if err := g.session.Authenticate(ctx, user.Snapshot()); err != nil {
		return fmt.Errorf("authenticate session: %w", err)
	}

	now := g.manager.now()
	if err := g.manager.userRepository.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Guard.login").Int64("user_id", user.UserID).Msg("failed to stamp last login")
	} else {
		user.LastLoginAt = &now
	}

	g.record(ctx, models.ChangelogEntry{UserID: user.UserID, Action: action, Detail: "ip=" + g.ip})
	g.checked = true
	g.user = &user

	return nil
}

// viaRemember redeems the remember-me cookie, if any.
func (g *Guard) viaRemember(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	cookie, err := g.r.Cookie(g.manager.rememberCookie)
	if err != nil || cookie.Value == "" {
		return false, nil
	}

	if err = g.ensureNotBanned(ctx, methodRemember); err != nil {
		if errors.Is(err, ErrBanned) {
			g.manager.clearRememberCookie(g.w, g.r)
			return false, nil
		}
		return false, err
	}

	user, next, err := g.manager.tokens.RedeemRememberToken(ctx, cookie.Value)
	if errors.Is(err, service.ErrTokenInvalid) {
		metrics.LoginAttempts.WithLabelValues(methodRemember, metrics.OutcomeFailure).Inc()
		if _, recErr := g.manager.bruteForce.RecordFailedAttempt(ctx, g.ip, reasonRememberToken); recErr != nil {
			log.Err(recErr).Str("func", "*Guard.viaRemember").Str("ip", g.ip).Msg("failed to record failed attempt")
		}
		g.manager.clearRememberCookie(g.w, g.r)
		return false, nil
	}
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(methodRemember, metrics.OutcomeError).Inc()
		return false, fmt.Errorf("redeem remember token: %w", err)
	}

	if err = g.login(ctx, user, models.ActionRememberLogin); err != nil {
		return false, err
	}
	g.manager.setRememberCookie(g.w, g.r, next)
	metrics.LoginAttempts.WithLabelValues(methodRemember, metrics.OutcomeSuccess).Inc()

	return true, nil
}

func (g *Guard) ensureNotBanned(ctx context.Context, method string) error {
	status, err := g.manager.bruteForce.IsBanned(ctx, g.ip)
	if err != nil {
		return fmt.Errorf("check ban: %w", err)
	}
	if status != models.BanNone {
		metrics.BannedRequests.Inc()
		metrics.LoginAttempts.WithLabelValues(method, metrics.OutcomeBanned).Inc()
		logger.FromContext(ctx).Warn().Str("ip", g.ip).Str("status", status.String()).Msg("request from banned ip")
		return ErrBanned
	}
	return nil
}

// record writes an audit entry; failures are logged only.
func (g *Guard) record(ctx context.Context, entry models.ChangelogEntry) {
	entry.CreatedAt = g.manager.now()
	if err := g.manager.changelogRepository.Record(ctx, entry); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Guard.record").Str("action", entry.Action).Msg("failed to write changelog")
	}
}
