package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-kita-inventory/internal/config"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/service"
	"github.com/MKhiriev/go-kita-inventory/internal/session"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
	"github.com/MKhiriev/go-kita-inventory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	clientIP = "192.0.2.1" // httptest.NewRequest RemoteAddr
	password = "Bauklotz-42"
)

type testEnv struct {
	manager  *Manager
	sessions *session.Manager
	storages *store.Storages
	services *service.Services
	user     models.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := store.NewMemoryUserRepository()
	storages := &store.Storages{
		Users:          users,
		PasswordResets: store.NewMemoryPasswordResetRepository(users),
		IPBans:         store.NewMemoryIPBanRepository(),
		Changelog:      store.NewMemoryChangelogRepository(),
		Sessions:       store.NewMemorySessionStore(),
	}

	cfg := &config.StructuredConfig{}
	cfg.App.Version = "test"
	cfg.App.TokenHashKey = "test-key"
	cfg.Auth = config.Auth{
		BcryptCost:            bcrypt.MinCost,
		RememberCookieName:    "remember_me",
		RememberTokenDuration: 30 * 24 * time.Hour,
		PasswordResetDuration: time.Hour,
		BanThreshold:          5,
		BanBaseDuration:       15 * time.Minute,
		BanMaxDuration:        24 * time.Hour,
		BanRetention:          7 * 24 * time.Hour,
	}

	services, err := service.NewServices(storages, cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	hash, err := services.Credentials.HashPassword(password)
	require.NoError(t, err)
	user, err := storages.Users.CreateUser(context.Background(), models.User{
		Login: "anna", Email: "anna@kita.example", Name: "Anna", PasswordHash: hash,
	})
	require.NoError(t, err)

	sessions := session.NewManager(storages.Sessions, config.Session{
		CookieName:         "kita_session",
		Lifetime:           2 * time.Hour,
		RegenerateInterval: 30 * time.Minute,
		CSRFTokenLifetime:  2 * time.Hour,
	}, logger.Nop())

	return &testEnv{
		manager:  NewManager(services, storages, sessions, cfg.Auth, logger.Nop()),
		sessions: sessions,
		storages: storages,
		services: services,
		user:     user,
	}
}

// browser keeps cookies between requests like a user agent would.
type browser struct {
	cookies map[string]string
}

func newBrowser() *browser {
	return &browser{cookies: map[string]string{}}
}

// do runs fn inside the session and auth middleware for one request.
func (b *browser) do(t *testing.T, env *testEnv, fn func(ctx context.Context, g *Guard, s *session.Session)) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	for name, value := range b.cookies {
		r.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	w := httptest.NewRecorder()

	h := env.sessions.Middleware(env.manager.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fn(r.Context(), FromContext(r.Context()), session.FromContext(r.Context()))
	})))
	h.ServeHTTP(w, r)

	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c.Value
	}

	return w
}

func TestAttempt_SuccessRegeneratesSessionAndResetsCounter(t *testing.T) {
	env := newTestEnv(t)
	b := newBrowser()

	b.do(t, env, func(ctx context.Context, g *Guard, s *session.Session) {
		_, err := g.Attempt(ctx, "anna", "wrong", false)
		require.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	var before string
	b.do(t, env, func(ctx context.Context, g *Guard, s *session.Session) {
		before = s.ID()

		user, err := g.Attempt(ctx, "anna", password, false)
		require.NoError(t, err)
		assert.Equal(t, env.user.UserID, user.UserID)

		assert.NotEqual(t, before, s.ID())
		ok, err := g.Check(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, env.user.UserID, g.ID(ctx))
	})

	ban, err := env.storages.IPBans.GetBan(context.Background(), clientIP)
	require.NoError(t, err)
	assert.Zero(t, ban.FailedAttempts)

	assert.NotEqual(t, before, b.cookies["kita_session"])
	_, hasRemember := b.cookies["remember_me"]
	assert.False(t, hasRemember)

	b.do(t, env, func(ctx context.Context, g *Guard, s *session.Session) {
		ok, err := g.Check(ctx)
		require.NoError(t, err)
		assert.True(t, ok, "identity survives into the next request")
		assert.Equal(t, "anna", g.User(ctx).Login)
	})

	entries := env.storages.Changelog.(*store.MemoryChangelogRepository).Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, models.ActionLogin, entries[len(entries)-1].Action)
}

func TestAttempt_FiveFailuresBanTheSixth(t *testing.T) {
	env := newTestEnv(t)
	b := newBrowser()

	for i := 0; i < 5; i++ {
		b.do(t, env, func(ctx context.Context, g *Guard, s *session.Session) {
			_, err := g.Attempt(ctx, "anna", "wrong", false)
			assert.ErrorIs(t, err, ErrAuthenticationFailed)
		})
	}

	b.do(t, env, func(ctx context.Context, g *Guard, s *session.Session) {
		_, err := g.Attempt(ctx, "anna", password, false)
		assert.ErrorIs(t, err, ErrBanned, "even the right password is refused")

		ok, err := g.Check(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	status, err := env.services.BruteForce.IsBanned(context.Background(), clientIP)
	require.NoError(t, err)
	assert.Equal(t, models.BanTemporary, status)
}

func TestAttempt_UnknownUserCountsAsFailure(t *testing.T) {
	env := newTestEnv(t)

	newBrowser().do(t, env, func(ctx context.Context, g *Guard, s *session.Session) {
		_, err := g.Attempt(ctx, "ghost", password, false)
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	ban, err := env.storages.IPBans.GetBan(context.Background(), clientIP)
	require.NoError(t, err)
	assert.Equal(t, 1, ban.FailedAttempts)
}

func TestRememberToken_RedeemedOnceAndRotated(t *testing.T) {
	env := newTestEnv(t)
	first := newBrowser()

	first.do(t, env, func(ctx context.Context, g *Guard, s *session.Session) {
		_, err := g.Attempt(ctx, "anna", password, true)
		require.NoError(t, err)
	})
	original := first.cookies["remember_me"]
	require.NotEmpty(t, original)

	// a new browser session carrying only the remember cookie
	returning := newBrowser()
	returning.cookies["remember_me"] = original
	returning.do(t, env, func(ctx context.Context, g *Guard, s *session.Session) {
		ok, err := g.Check(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, env.user.UserID, s.UserID())
	})
	rotated := returning.cookies["remember_me"]
	assert.NotEmpty(t, rotated)
	assert.NotEqual(t, original, rotated)

	// replaying the original token fails, is counted and clears the cookie
	replay := newBrowser()
	replay.cookies["remember_me"] = original
	replay.do(t, env, func(ctx context.Context, g *Guard, s *session.Session) {
		ok, err := g.Check(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
	_, stillThere := replay.cookies["remember_me"]
	assert.False(t, stillThere)

	ban, err := env.storages.IPBans.GetBan(context.Background(), clientIP)
	require.NoError(t, err)
	assert.Equal(t, 1, ban.FailedAttempts)
	assert.Equal(t, "remember_token", ban.Reason)
}

func TestRememberToken_IgnoredWhileBanned(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	token, err := env.services.Tokens.IssueRememberToken(ctx, env.user.UserID)
	require.NoError(t, err)
	_, err = env.services.BruteForce.BanPermanently(ctx, clientIP, "manual")
	require.NoError(t, err)

	b := newBrowser()
	b.cookies["remember_me"] = token
	b.do(t, env, func(ctx context.Context, g *Guard, s *session.Session) {
		ok, err := g.Check(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	// the token was not consumed
	_, _, err = env.services.Tokens.RedeemRememberToken(ctx, token)
	assert.NoError(t, err)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	b := newBrowser()

	b.do(t, env, func(ctx context.Context, g *Guard, s *session.Session) {
		_, err := g.Attempt(ctx, "anna", password, true)
		require.NoError(t, err)
	})
	token := b.cookies["remember_me"]

	b.do(t, env, func(ctx context.Context, g *Guard, s *session.Session) {
		require.NoError(t, g.Logout(ctx))
		assert.False(t, s.Active())
		ok, err := g.Check(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
	assert.NotContains(t, b.cookies, "remember_me")
	assert.NotContains(t, b.cookies, "kita_session")

	_, _, err := env.services.Tokens.RedeemRememberToken(context.Background(), token)
	assert.ErrorIs(t, err, service.ErrTokenInvalid, "logout revokes the remember token")

	b.do(t, env, func(ctx context.Context, g *Guard, s *session.Session) {
		ok, err := g.Check(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRequireAuth(t *testing.T) {
	env := newTestEnv(t)
	protected := env.sessions.Middleware(env.manager.Middleware(env.manager.RequireAuth(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
	)))

	w := httptest.NewRecorder()
	protected.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/bans?page=2", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))

	var sid string
	for _, c := range w.Result().Cookies() {
		if c.Name == "kita_session" {
			sid = c.Value
		}
	}
	rec, err := env.storages.Sessions.Load(context.Background(), sid)
	require.NoError(t, err)
	assert.Equal(t, "/admin/bans?page=2", rec.Values[IntendedKey])
	assert.NotEmpty(t, rec.Flash["error"])
}

func TestGuard_RequiresSession(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.manager.Guard(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoSession)

	w := httptest.NewRecorder()
	env.manager.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
