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

func TestBans_CreateListAndLift(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser(t)
	require.Equal(t, "/", b.login(testPassword).location)

	p := b.submit("/admin/bans", "/admin/bans", url.Values{"ip": {"203.0.113.9"}, "reason": {"scraper"}})
	assert.Equal(t, http.StatusSeeOther, p.status)
	assert.Equal(t, "/admin/bans", p.location)

	p = b.get("/admin/bans")
	require.Equal(t, http.StatusOK, p.status)
	assert.Contains(t, p.body, "203.0.113.9 is banned.")
	assert.Contains(t, p.body, "<td>203.0.113.9</td>")
	assert.Contains(t, p.body, "<td>permanent</td>")
	assert.Contains(t, p.body, "<td>scraper</td>")

	status, err := app.services.BruteForce.IsBanned(context.Background(), "203.0.113.9")
	require.NoError(t, err)
	assert.Equal(t, models.BanPermanent, status)

	p = b.submit("/admin/bans", "/admin/bans/203.0.113.9/delete", nil)
	assert.Equal(t, "/admin/bans", p.location)
	assert.Contains(t, b.get("/admin/bans").body, "The ban on 203.0.113.9 was lifted.")

	_, err = app.storages.IPBans.GetBan(context.Background(), "203.0.113.9")
	assert.ErrorIs(t, err, store.ErrBanNotFound)

	entries := app.storages.Changelog.(*store.MemoryChangelogRepository).Entries()
	var actions []string
	for _, e := range entries {
		actions = append(actions, e.Action)
	}
	assert.Contains(t, actions, models.ActionBanCreated)
	assert.Contains(t, actions, models.ActionBanLifted)
}

func TestBans_Rejections(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser(t)
	require.Equal(t, "/", b.login(testPassword).location)

	tests := []struct {
		name    string
		path    string
		form    url.Values
		message string
	}{
		{name: "invalid ip", path: "/admin/bans", form: url.Values{"ip": {"999.1.1.1"}}, message: "ip must be a valid IP address"},
		{name: "own address", path: "/admin/bans", form: url.Values{"ip": {"127.0.0.1"}}, message: "You cannot ban the address you are connected from."},
		{name: "lift unknown", path: "/admin/bans/198.51.100.1/delete", message: "There is no record for 198.51.100.1."},
		{name: "lift garbage", path: "/admin/bans/nope/delete", message: "Invalid IP address."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := b.submit("/admin/bans", tt.path, tt.form)
			assert.Equal(t, http.StatusSeeOther, p.status)
			assert.Equal(t, "/admin/bans", p.location)
			assert.Contains(t, b.get("/admin/bans").body, tt.message)
		})
	}

	bans, err := app.services.BruteForce.ListBans(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bans)
}

func TestBans_RequireLogin(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser(t)

	token := b.csrf("/login")
	p := b.post("/admin/bans", url.Values{"ip": {"203.0.113.9"}, "_token": {token}})
	assert.Equal(t, http.StatusSeeOther, p.status)
	assert.Equal(t, "/login", p.location)

	bans, err := app.services.BruteForce.ListBans(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bans)
}
