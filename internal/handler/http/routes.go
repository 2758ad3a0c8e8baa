package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-kita-inventory/internal/router"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Action names bound in the route table.
const (
	actionDashboard            = "dashboard"
	actionLoginForm            = "login.form"
	actionLoginSubmit          = "login.submit"
	actionLogout               = "logout"
	actionPasswordForgotForm   = "password.forgot.form"
	actionPasswordForgotSubmit = "password.forgot.submit"
	actionPasswordResetForm    = "password.reset.form"
	actionPasswordResetSubmit  = "password.reset.submit"
	actionBansIndex            = "bans.index"
	actionBansCreate           = "bans.create"
	actionBansDelete           = "bans.delete"
)

// Routes is the route table of the server, in match order.
func Routes() []router.Route {
	return []router.Route{
		{Method: http.MethodGet, Pattern: "/", Action: actionDashboard},
		{Method: http.MethodGet, Pattern: "/login", Action: actionLoginForm},
		{Method: http.MethodPost, Pattern: "/login", Action: actionLoginSubmit},
		{Method: http.MethodPost, Pattern: "/logout", Action: actionLogout},
		{Method: http.MethodGet, Pattern: "/forgot-password", Action: actionPasswordForgotForm},
		{Method: http.MethodPost, Pattern: "/forgot-password", Action: actionPasswordForgotSubmit},
		{Method: http.MethodGet, Pattern: "/reset-password/{token}", Action: actionPasswordResetForm},
		{Method: http.MethodPost, Pattern: "/reset-password/{token}", Action: actionPasswordResetSubmit},
		{Method: http.MethodGet, Pattern: "/admin/bans", Action: actionBansIndex},
		{Method: http.MethodPost, Pattern: "/admin/bans", Action: actionBansCreate},
		{Method: http.MethodPost, Pattern: "/admin/bans/{ip}/delete", Action: actionBansDelete},
	}
}

func (h *Handler) actions() map[string]router.HandlerFunc {
	return map[string]router.HandlerFunc{
		actionDashboard:            h.requireAuth(h.dashboard),
		actionLoginForm:            h.loginForm,
		actionLoginSubmit:          h.loginSubmit,
		actionLogout:               h.logout,
		actionPasswordForgotForm:   h.forgotPasswordForm,
		actionPasswordForgotSubmit: h.forgotPasswordSubmit,
		actionPasswordResetForm:    h.resetPasswordForm,
		actionPasswordResetSubmit:  h.resetPasswordSubmit,
		actionBansIndex:            h.requireAuth(h.bansIndex),
		actionBansCreate:           h.requireAuth(h.bansCreate),
		actionBansDelete:           h.requireAuth(h.bansDelete),
	}
}

// requireAuth adapts auth.Manager.RequireAuth to a routed action.
func (h *Handler) requireAuth(action router.HandlerFunc) router.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params router.Params) {
		h.auth.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			action(w, r, params)
		})).ServeHTTP(w, r)
	}
}

// Init builds the chi mux. Metrics and health checks bypass sessions; every
// other request goes through the session, identity and CSRF middlewares
// before the route table is consulted.
func (h *Handler) Init() (*chi.Mux, error) {
	rt := router.New(h.logger, router.WithNotFound(http.HandlerFunc(h.notFound)))
	if err := rt.Load(Routes(), h.actions()); err != nil {
		return nil, fmt.Errorf("load routes: %w", err)
	}

	mux := chi.NewRouter()
	mux.Use(middleware.Recoverer)
	if h.cfg.Server.TrustProxy {
		mux.Use(middleware.RealIP)
	}
	mux.Use(h.withTraceID)
	mux.Use(withLogging)
	if h.cfg.Server.RequestTimeout > 0 {
		mux.Use(middleware.Timeout(h.cfg.Server.RequestTimeout))
	}

	mux.Handle("/metrics", promhttp.Handler())
	mux.Get("/healthz", h.healthz)

	mux.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5, "text/html", "application/json"))
		r.Use(h.sessions.Middleware)
		r.Use(h.auth.Middleware)
		r.Use(h.verifyCSRF)
		r.Handle("/*", rt)
	})

	return mux, nil
}
