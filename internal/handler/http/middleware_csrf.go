package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/metrics"
	"github.com/MKhiriev/go-kita-inventory/internal/router"
	"github.com/MKhiriev/go-kita-inventory/internal/session"
	"github.com/MKhiriev/go-kita-inventory/internal/utils"
)

const (
	csrfFormField = "_token"
	csrfHeader    = "X-CSRF-Token"
)

// verifyCSRF rejects state-changing requests whose token does not match the
// session. AJAX callers get a 403 JSON body, form posts are sent back with a
// flash message.
func (h *Handler) verifyCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isSafeMethod(r.Method) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		sess := session.FromContext(ctx)

		candidate := r.Header.Get(csrfHeader)
		if candidate == "" {
			candidate = r.PostFormValue(csrfFormField)
		}
		if sess != nil && sess.VerifyCSRF(candidate) {
			next.ServeHTTP(w, r)
			return
		}

		metrics.CSRFFailures.Inc()
		logger.FromRequest(r).Warn().
			Str("func", "*Handler.verifyCSRF").
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("ip", utils.ClientIP(r)).
			Err(session.ErrCSRFMismatch).
			Msg("csrf verification failed")

		if wantsJSON(r) {
			_, _ = utils.WriteJSON(w, map[string]string{"error": "csrf token mismatch"}, http.StatusForbidden)
			return
		}

		if sess != nil {
			_ = sess.SetFlash(ctx, "error", "Your session has expired. Please try again.")
		}
		router.RedirectBack(w, r)
	})
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}

func wantsJSON(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "XMLHttpRequest" ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}
