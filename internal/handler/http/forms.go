package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/router"
	"github.com/MKhiriev/go-kita-inventory/internal/session"
	"github.com/MKhiriev/go-kita-inventory/internal/validators"
)

// back redirects to the referring page, or to fallback when the browser sent
// no Referer.
func back(w http.ResponseWriter, r *http.Request, fallback string) {
	if r.Referer() == "" {
		router.RedirectTo(w, r, fallback)
		return
	}
	router.RedirectBack(w, r)
}

// flash stores a message for the next page. Failures are logged only.
func flash(r *http.Request, typ, message string) {
	ctx := r.Context()
	if sess := session.FromContext(ctx); sess != nil {
		if err := sess.SetFlash(ctx, typ, message); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "flash").Msg("cannot store flash message")
		}
	}
}

// rejectForm keeps old input and the first validation message for the next
// page and sends the visitor back. It reports false if err is not a form
// validation error, leaving the response untouched.
func rejectForm(w http.ResponseWriter, r *http.Request, err error, old map[string]string, fallback string) bool {
	var formErr *validators.FormError
	if !errors.As(err, &formErr) {
		return false
	}

	ctx := r.Context()
	if sess := session.FromContext(ctx); sess != nil {
		if err = sess.SetOldInput(ctx, old); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "rejectForm").Msg("cannot store old input")
		}
	}
	flash(r, "error", formErr.First())
	back(w, r, fallback)

	return true
}

// clearOldInput forgets the input of a successfully handled form.
func clearOldInput(r *http.Request) {
	ctx := r.Context()
	if sess := session.FromContext(ctx); sess != nil {
		if err := sess.ClearOldInput(ctx); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "clearOldInput").Msg("cannot clear old input")
		}
	}
}
