package session

import "errors"

var (
	// ErrInactive is returned by mutating methods of a destroyed session.
	ErrInactive = errors.New("session is no longer active")

	// ErrCSRFMismatch signals a missing, stale or wrong CSRF token.
	ErrCSRFMismatch = errors.New("csrf token mismatch")

	// ErrNoSession is returned when the request context carries no session.
	ErrNoSession = errors.New("no session in request context")
)
