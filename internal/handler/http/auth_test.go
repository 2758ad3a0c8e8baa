package http

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-kita-inventory/internal/store"
	"github.com/MKhiriev/go-kita-inventory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_RequiresLogin(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser(t)

	p := b.get("/")
	assert.Equal(t, http.StatusSeeOther, p.status)
	assert.Equal(t, "/login", p.location)

	p = b.get("/login")
	assert.Equal(t, http.StatusOK, p.status)
	assert.Contains(t, p.body, "Please log in to continue.")
}

func TestLogin_SuccessRedirectsToIntendedPage(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser(t)

	require.Equal(t, http.StatusSeeOther, b.get("/admin/bans").status)

	p := b.login(testPassword)
	assert.Equal(t, http.StatusSeeOther, p.status)
	assert.Equal(t, "/admin/bans", p.location)

	p = b.get("/")
	assert.Equal(t, http.StatusOK, p.status)
	assert.Contains(t, p.body, "Signed in as Anna (anna)")

	p = b.get("/login")
	assert.Equal(t, http.StatusSeeOther, p.status, "logged in users skip the login form")
	assert.Equal(t, "/", p.location)
}

func TestLogin_FailureKeepsInputAndShowsGenericMessage(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser(t)

	p := b.login("wrong")
	assert.Equal(t, http.StatusSeeOther, p.status)
	assert.Equal(t, "/login", p.location)

	p = b.get("/login")
	assert.Contains(t, p.body, msgLoginFailed)
	assert.Contains(t, p.body, `value="anna"`)

	p = b.submit("/login", "/login", url.Values{"login": {"ghost"}, "password": {"whatever"}})
	assert.Equal(t, "/login", p.location)
	assert.Contains(t, b.get("/login").body, msgLoginFailed, "unknown accounts get the same answer")
}

func TestLogin_InvalidFormIsSentBack(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser(t)

	p := b.submit("/login", "/login", url.Values{"login": {"anna"}})
	assert.Equal(t, http.StatusSeeOther, p.status)
	assert.Equal(t, "/login", p.location)
	assert.Contains(t, b.get("/login").body, "password is required")

	_, err := app.storages.IPBans.GetBan(context.Background(), "127.0.0.1")
	assert.ErrorIs(t, err, store.ErrBanNotFound, "validation failures do not count as attempts")
}

func TestLogin_BanAfterFiveFailures(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser(t)

	for i := 0; i < 5; i++ {
		require.Equal(t, "/login", b.login("wrong").location)
	}

	p := b.login(testPassword)
	assert.Equal(t, "/login", p.location)
	assert.Contains(t, b.get("/login").body, msgBanned)

	assert.Equal(t, "/login", b.get("/").location, "still anonymous")
}

func TestLogin_CSRFMismatch(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser(t)
	b.csrf("/login")

	t.Run("form post is sent back", func(t *testing.T) {
		p := b.post("/login", url.Values{"login": {"anna"}, "password": {testPassword}, "_token": {"forged"}})
		assert.Equal(t, http.StatusSeeOther, p.status)
		assert.Equal(t, "/", p.location)
	})

	t.Run("ajax gets 403 json", func(t *testing.T) {
		p := b.post("/login", url.Values{"login": {"anna"}, "password": {testPassword}}, "X-Requested-With", "XMLHttpRequest")
		assert.Equal(t, http.StatusForbidden, p.status)
		assert.Contains(t, p.header.Get("Content-Type"), "application/json")
		assert.JSONEq(t, `{"error":"csrf token mismatch"}`, p.body)
	})

	t.Run("header token is accepted", func(t *testing.T) {
		token := b.csrf("/login")
		p := b.post("/login", url.Values{"login": {"anna"}, "password": {testPassword}}, "X-CSRF-Token", token)
		assert.Equal(t, http.StatusSeeOther, p.status)
		assert.Equal(t, "/", p.location)
	})
}

func TestLogout(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser(t)

	require.Equal(t, "/", b.login(testPassword).location)

	p := b.submit("/", "/logout", nil)
	assert.Equal(t, http.StatusSeeOther, p.status)
	assert.Equal(t, "/login", p.location)

	assert.Equal(t, "/login", b.get("/").location)

	entries := app.storages.Changelog.(*store.MemoryChangelogRepository).Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, models.ActionLogout, entries[len(entries)-1].Action)
}

func TestRememberMe_SurvivesSessionLoss(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser(t)

	p := b.submit("/login", "/login", url.Values{"login": {"anna"}, "password": {testPassword}, "remember": {"1"}})
	require.Equal(t, "/", p.location)

	u, err := url.Parse(app.server.URL)
	require.NoError(t, err)

	var remember *http.Cookie
	for _, c := range b.client.Jar.Cookies(u) {
		if c.Name == "remember_me" {
			remember = c
		}
	}
	require.NotNil(t, remember)

	// a fresh browser that only carries the remember cookie
	other := app.browser(t)
	other.client.Jar.SetCookies(u, []*http.Cookie{{Name: "remember_me", Value: remember.Value, Path: "/"}})

	p = other.get("/")
	assert.Equal(t, http.StatusOK, p.status)
	assert.Contains(t, p.body, "Signed in as Anna")

	replay := app.browser(t)
	replay.client.Jar.SetCookies(u, []*http.Cookie{{Name: "remember_me", Value: remember.Value, Path: "/"}})
	assert.Equal(t, "/login", replay.get("/").location, "a rotated token cannot be replayed")
}
