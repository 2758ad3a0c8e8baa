package auth

import "errors"

var (
	// ErrAuthenticationFailed is the single answer for unknown logins and
	// wrong passwords.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrBanned is returned while the client IP is banned.
	ErrBanned = errors.New("client ip is banned")

	// ErrNoSession means the auth middleware ran before the session middleware.
	ErrNoSession = errors.New("auth requires a started session")
)
