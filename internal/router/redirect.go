package router

import (
	"net/http"
	"net/url"
	"strings"
)

// RedirectTo answers with 303 See Other to target. Targets pointing to
// another host or using a scheme other than http(s) are replaced by "/".
func RedirectTo(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, SafeTarget(r, target), http.StatusSeeOther)
}

// RedirectBack redirects to the Referer when it is same-origin, else to "/".
func RedirectBack(w http.ResponseWriter, r *http.Request) {
	RedirectTo(w, r, r.Referer())
}

// SafeTarget returns target when it stays on the host of r, and "/" otherwise.
func SafeTarget(r *http.Request, target string) string {
	target = strings.TrimSpace(target)
	if target == "" || strings.ContainsAny(target, "\\\r\n") {
		return "/"
	}

	u, err := url.Parse(target)
	if err != nil {
		return "/"
	}

	// relative path: "/boxes" or "boxes?x=1"
	if u.Scheme == "" && u.Host == "" && !strings.HasPrefix(target, "//") {
		if u.Opaque != "" {
			return "/"
		}
		return target
	}

	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return "/"
	}
	if !strings.EqualFold(u.Host, r.Host) {
		return "/"
	}

	return target
}
