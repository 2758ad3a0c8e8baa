// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/metrics"
)

// HandlerFunc is the signature of a routed action.
type HandlerFunc func(w http.ResponseWriter, r *http.Request, params Params)

// Route is one entry of the route table.
type Route struct {
	Method  string
	Pattern string
	// Action names the handler in the action registry passed to Load.
	Action string
}

// Match is the result of a successful lookup.
type Match struct {
	Route  Route
	Params Params
}

type exactKey struct {
	method string
	path   string
}

type patternRoute struct {
	route Route
	re    *regexp.Regexp
	names []string
}

// Router dispatches requests to actions. Build it with New and Load.
type Router struct {
	exact    map[exactKey]Route
	patterns []patternRoute
	actions  map[string]HandlerFunc

	notFound http.Handler
	logger   *logger.Logger
}

// Option customizes a Router.
type Option func(*Router)

// WithNotFound replaces the default 404 responder.
func WithNotFound(h http.Handler) Option {
	return func(rt *Router) { rt.notFound = h }
}

func New(logger *logger.Logger, opts ...Option) *Router {
	rt := &Router{
		exact:    make(map[exactKey]Route),
		actions:  make(map[string]HandlerFunc),
		notFound: http.NotFoundHandler(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

var placeholderRe = regexp.MustCompile(`\{([^{}]*)\}`)

var placeholderNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Load compiles routes and binds them to actions. Routes whose action is
// missing from actions are still loaded; dispatching to them answers 404.
func (rt *Router) Load(routes []Route, actions map[string]HandlerFunc) error {
	for _, route := range routes {
		route.Method = strings.ToUpper(strings.TrimSpace(route.Method))
		if route.Method == "" || strings.TrimSpace(route.Pattern) == "" {
			return fmt.Errorf("%w: empty method or pattern in %+v", ErrInvalidRoute, route)
		}

		if !strings.Contains(route.Pattern, "{") && !strings.Contains(route.Pattern, "}") {
			key := exactKey{method: route.Method, path: normalizePath(route.Pattern)}
			if _, ok := rt.exact[key]; ok {
				return fmt.Errorf("%w: %s %s", ErrDuplicateRoute, route.Method, route.Pattern)
			}
			rt.exact[key] = route
			continue
		}

		compiled, err := compilePattern(route)
		if err != nil {
			return err
		}
		rt.patterns = append(rt.patterns, compiled)
	}

	for name, action := range actions {
		rt.actions[name] = action
	}

	rt.logger.Debug().Int("exact", len(rt.exact)).Int("patterns", len(rt.patterns)).Msg("routes loaded")
	return nil
}

func compilePattern(route Route) (patternRoute, error) {
	pattern := normalizePath(route.Pattern)
	locs := placeholderRe.FindAllStringSubmatchIndex(pattern, -1)

	var (
		b     strings.Builder
		names []string
		seen  = map[string]bool{}
		last  int
	)
	b.WriteString("^")
	for _, loc := range locs {
		literal := pattern[last:loc[0]]
		if strings.ContainsAny(literal, "{}") {
			return patternRoute{}, fmt.Errorf("%w: unbalanced braces in %q", ErrInvalidRoute, route.Pattern)
		}
		b.WriteString(regexp.QuoteMeta(literal))

		name := pattern[loc[2]:loc[3]]
		if !placeholderNameRe.MatchString(name) {
			return patternRoute{}, fmt.Errorf("%w: bad placeholder %q in %q", ErrInvalidRoute, name, route.Pattern)
		}
		if seen[name] {
			return patternRoute{}, fmt.Errorf("%w: placeholder %q repeated in %q", ErrInvalidRoute, name, route.Pattern)
		}
		seen[name] = true
		names = append(names, name)

		b.WriteString("([^/]+)")
		last = loc[1]
	}
	tail := pattern[last:]
	if strings.ContainsAny(tail, "{}") {
		return patternRoute{}, fmt.Errorf("%w: unbalanced braces in %q", ErrInvalidRoute, route.Pattern)
	}
	b.WriteString(regexp.QuoteMeta(tail))
	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return patternRoute{}, fmt.Errorf("%w: %w", ErrInvalidRoute, err)
	}

	return patternRoute{route: route, re: re, names: names}, nil
}

// Match finds the route for method and rawPath. Exact routes win over
// patterns; HEAD falls back to GET.
func (rt *Router) Match(method, rawPath string) (Match, error) {
	method = strings.ToUpper(method)
	path := normalizePath(rawPath)

	if m, ok := rt.match(method, path); ok {
		return m, nil
	}
	if method == http.MethodHead {
		if m, ok := rt.match(http.MethodGet, path); ok {
			return m, nil
		}
	}

	return Match{}, ErrNotFound
}

func (rt *Router) match(method, path string) (Match, bool) {
	if route, ok := rt.exact[exactKey{method: method, path: path}]; ok {
		return Match{Route: route}, true
	}

	for _, p := range rt.patterns {
		if p.route.Method != method {
			continue
		}
		sub := p.re.FindStringSubmatch(path)
		if sub == nil {
			continue
		}

		params := make(Params, len(p.names))
		for i, name := range p.names {
			value, err := url.PathUnescape(sub[i+1])
			if err != nil {
				value = sub[i+1]
			}
			params[i] = Param{Name: name, Value: value}
		}
		return Match{Route: p.route, Params: params}, true
	}

	return Match{}, false
}

// Dispatch runs the action of the matching route. Unknown paths and routes
// bound to a missing action are answered with the not-found handler.
func (rt *Router) Dispatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	path := r.URL.EscapedPath()
	m, err := rt.Match(r.Method, path)
	if errors.Is(err, ErrNotFound) {
		metrics.RouteNotFound.WithLabelValues("unmatched").Inc()
		rt.notFound.ServeHTTP(w, r)
		return
	}

	action := rt.actions[m.Route.Action]
	if action == nil {
		metrics.RouteNotFound.WithLabelValues("unbound").Inc()
		log.Error().
			Str("func", "*Router.Dispatch").
			Str("method", m.Route.Method).
			Str("pattern", m.Route.Pattern).
			Str("action", m.Route.Action).
			Msg("route bound to unknown action")
		rt.notFound.ServeHTTP(w, r)
		return
	}

	ctx := context.WithValue(r.Context(), paramsCtxKey{}, m.Params)
	action(w, r.WithContext(ctx), m.Params)
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.Dispatch(w, r)
}

// normalizePath strips query and fragment, collapses leading slashes and
// trims trailing ones. The root is "/".
func normalizePath(raw string) string {
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.Trim(raw, "/")
	return "/" + raw
}
