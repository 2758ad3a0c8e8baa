package http

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-kita-inventory/internal/adapter"
	"github.com/MKhiriev/go-kita-inventory/internal/auth"
	"github.com/MKhiriev/go-kita-inventory/internal/config"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/service"
	"github.com/MKhiriev/go-kita-inventory/internal/session"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
	"github.com/MKhiriev/go-kita-inventory/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testPassword = "Bauklotz-42"
	testBaseURL  = "https://kita.example"
)

var csrfTokenRe = regexp.MustCompile(`name="_token" value="([^"]+)"`)

type testApp struct {
	server   *httptest.Server
	storages *store.Storages
	services *service.Services
	user     models.User
}

func newTestApp(t *testing.T, mailer adapter.Mailer) *testApp {
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
	cfg.App = config.App{Name: "Kita Inventar", Version: "test", TokenHashKey: "test-key"}
	cfg.Adapter = config.Adapter{BaseURL: testBaseURL + "/"}
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
	cfg.Session = config.Session{
		CookieName:         "kita_session",
		CookiePath:         "/",
		Lifetime:           2 * time.Hour,
		RegenerateInterval: 30 * time.Minute,
		CSRFTokenLength:    32,
		CSRFTokenLifetime:  2 * time.Hour,
	}

	services, err := service.NewServices(storages, cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	hash, err := services.Credentials.HashPassword(testPassword)
	require.NoError(t, err)
	user, err := storages.Users.CreateUser(context.Background(), models.User{
		Login: "anna", Email: "anna@kita.example", Name: "Anna", PasswordHash: hash,
	})
	require.NoError(t, err)

	sessions := session.NewManager(storages.Sessions, cfg.Session, logger.Nop())
	authManager := auth.NewManager(services, storages, sessions, cfg.Auth, logger.Nop())

	h, err := NewHandler(services, storages, sessions, authManager, mailer, cfg, logger.Nop())
	require.NoError(t, err)
	mux, err := h.Init()
	require.NoError(t, err)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &testApp{server: srv, storages: storages, services: services, user: user}
}

// browser is an http.Client with a cookie jar that does not follow redirects.
type browser struct {
	t      *testing.T
	app    *testApp
	client *http.Client
}

func (a *testApp) browser(t *testing.T) *browser {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &browser{
		t:   t,
		app: a,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

type page struct {
	status   int
	location string
	body     string
	header   http.Header
}

func (b *browser) do(req *http.Request) page {
	b.t.Helper()
	resp, err := b.client.Do(req)
	require.NoError(b.t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)

	return page{
		status:   resp.StatusCode,
		location: resp.Header.Get("Location"),
		body:     string(body),
		header:   resp.Header,
	}
}

func (b *browser) get(path string) page {
	b.t.Helper()
	req, err := http.NewRequest(http.MethodGet, b.app.server.URL+path, nil)
	require.NoError(b.t, err)
	return b.do(req)
}

func (b *browser) post(path string, form url.Values, headers ...string) page {
	b.t.Helper()
	req, err := http.NewRequest(http.MethodPost, b.app.server.URL+path, strings.NewReader(form.Encode()))
	require.NoError(b.t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return b.do(req)
}

// csrf loads path and returns the CSRF token embedded in its forms.
func (b *browser) csrf(path string) string {
	b.t.Helper()
	p := b.get(path)
	require.Equal(b.t, http.StatusOK, p.status, p.body)

	m := csrfTokenRe.FindStringSubmatch(p.body)
	require.Len(b.t, m, 2, "no csrf token on %s", path)
	return m[1]
}

// submit posts form to path with a CSRF token taken from tokenPage.
func (b *browser) submit(tokenPage, path string, form url.Values) page {
	b.t.Helper()
	if form == nil {
		form = url.Values{}
	}
	form.Set("_token", b.csrf(tokenPage))
	return b.post(path, form)
}

func (b *browser) login(password string) page {
	b.t.Helper()
	return b.submit("/login", "/login", url.Values{"login": {"anna"}, "password": {password}})
}
