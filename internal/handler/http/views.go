package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/MKhiriev/go-kita-inventory/internal/auth"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/session"
	"github.com/MKhiriev/go-kita-inventory/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	viewLogin          = "login"
	viewForgotPassword = "forgot_password"
	viewResetPassword  = "reset_password"
	viewDashboard      = "dashboard"
	viewBans           = "bans"
	viewError          = "error"
)

var viewNames = []string{viewLogin, viewForgotPassword, viewResetPassword, viewDashboard, viewBans, viewError}

// views holds one template set per page, each combined with the layout.
type views struct {
	pages map[string]*template.Template
}

func parseViews() (*views, error) {
	v := &views{pages: make(map[string]*template.Template, len(viewNames))}
	for _, name := range viewNames {
		t, err := template.New(name).ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		v.pages[name] = t
	}
	return v, nil
}

func (v *views) execute(w io.Writer, name string, data viewData) error {
	t, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownView, name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// viewData is what every page template receives.
type viewData struct {
	AppName   string
	Title     string
	CSRFToken string
	Flash     map[string]string
	User      *models.User
	Data      any

	session *session.Session
}

// Old returns the previously submitted value of a form field.
func (d viewData) Old(key string) string {
	if d.session == nil {
		return ""
	}
	return d.session.OldInput(key)
}

// render writes the page with status. Reading the flash consumes it.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, status int, title string, data any) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	vd := viewData{
		AppName: h.services.AppInfo.GetAppName(ctx),
		Title:   title,
		Flash:   map[string]string{},
		Data:    data,
	}

	if sess := session.FromContext(ctx); sess != nil && sess.Active() {
		token, err := sess.CSRFToken(ctx)
		if err != nil {
			log.Err(err).Str("func", "*Handler.render").Msg("cannot issue csrf token")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		flash, err := sess.Flash(ctx)
		if err != nil {
			log.Err(err).Str("func", "*Handler.render").Msg("cannot read flash")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		vd.CSRFToken = token
		vd.Flash = flash
		vd.session = sess
	}
	if g := auth.FromContext(ctx); g != nil {
		vd.User = g.User(ctx)
	}

	var buf bytes.Buffer
	if err := h.views.execute(&buf, name, vd); err != nil {
		log.Err(err).Str("func", "*Handler.render").Str("view", name).Msg("cannot render view")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

type errorPage struct {
	Status  int
	Message string
}

// renderError maps err to a status and renders the generic error page. The
// error itself is only logged.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("uri", r.RequestURI).Int("status", status).Msg("request rejected")
	}

	h.render(w, r, viewError, status, http.StatusText(status), errorPage{
		Status:  status,
		Message: http.StatusText(status),
	})
}

// notFound is installed as the router's not-found handler.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, viewError, http.StatusNotFound, http.StatusText(http.StatusNotFound), errorPage{
		Status:  http.StatusNotFound,
		Message: "The page you are looking for does not exist.",
	})
}
