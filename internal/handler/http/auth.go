package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-kita-inventory/internal/auth"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/router"
	"github.com/MKhiriev/go-kita-inventory/internal/session"
	"github.com/MKhiriev/go-kita-inventory/internal/utils"
	"github.com/MKhiriev/go-kita-inventory/models"
)

const (
	msgLoginFailed = "These credentials do not match our records."
	msgBanned      = "Too many failed login attempts. Please try again later."
)

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request, _ router.Params) {
	ctx := r.Context()
	if g := auth.FromContext(ctx); g != nil && g.User(ctx) != nil {
		router.RedirectTo(w, r, "/")
		return
	}

	h.render(w, r, viewLogin, http.StatusOK, "Log in", nil)
}

func (h *Handler) loginSubmit(w http.ResponseWriter, r *http.Request, _ router.Params) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	form := models.LoginForm{
		Login:    strings.TrimSpace(r.PostFormValue("login")),
		Password: r.PostFormValue("password"),
		Remember: r.PostFormValue("remember") != "",
	}
	old := map[string]string{"login": form.Login}

	if err := h.validator.Validate(ctx, form); err != nil {
		if !rejectForm(w, r, err, old, auth.LoginPath) {
			h.renderError(w, r, err)
		}
		return
	}

	g := auth.FromContext(ctx)
	if g == nil {
		h.renderError(w, r, auth.ErrNoSession)
		return
	}

	user, err := g.Attempt(ctx, form.Login, form.Password, form.Remember)
	switch {
	case errors.Is(err, auth.ErrBanned):
		h.keepOldInput(r, old)
		flash(r, "error", msgBanned)
		router.RedirectTo(w, r, auth.LoginPath)
		return
	case errors.Is(err, auth.ErrAuthenticationFailed):
		h.keepOldInput(r, old)
		flash(r, "error", msgLoginFailed)
		router.RedirectTo(w, r, auth.LoginPath)
		return
	case err != nil:
		h.renderError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.UserID).Bool("remember", form.Remember).Msg("user logged in")

	clearOldInput(r)
	target := "/"
	if sess := session.FromContext(ctx); sess != nil {
		if intended, ok := sess.Get(auth.IntendedKey); ok && intended != "" {
			target = intended
			_ = sess.Remove(ctx, auth.IntendedKey)
		}
	}
	router.RedirectTo(w, r, target)
}

func (h *Handler) keepOldInput(r *http.Request, old map[string]string) {
	ctx := r.Context()
	if sess := session.FromContext(ctx); sess != nil {
		if err := sess.SetOldInput(ctx, old); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.keepOldInput").Msg("cannot store old input")
		}
	}
}

// logout destroys the session; the login page is rendered with a fresh one.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request, _ router.Params) {
	ctx := r.Context()

	if g := auth.FromContext(ctx); g != nil {
		if err := g.Logout(ctx); err != nil {
			h.renderError(w, r, err)
			return
		}
	}

	router.RedirectTo(w, r, auth.LoginPath)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request, _ router.Params) {
	h.render(w, r, viewDashboard, http.StatusOK, "Inventory", nil)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	_, _ = utils.WriteJSON(w, map[string]string{
		"status":  "ok",
		"name":    h.services.AppInfo.GetAppName(ctx),
		"version": h.services.AppInfo.GetAppVersion(ctx),
	}, http.StatusOK)
}
